// Package scheduler runs the periodic auction sweep.
package scheduler

import (
	"context"
	"fmt"

	"art-market/utils"

	"github.com/robfig/cron/v3"
)

// Sweeper latches auctions whose deadline has passed
type Sweeper interface {
	SweepClosed() (open, closed int, err error)
}

// CronService runs the sweep on a cron schedule
type CronService struct {
	cron    *cron.Cron
	sweeper Sweeper
	entry   cron.EntryID
}

// NewCronService registers the sweep under spec, e.g. "@every 1m"
func NewCronService(spec string, sweeper Sweeper) (*CronService, error) {
	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger)))
	s := &CronService{cron: c, sweeper: sweeper}

	id, err := c.AddFunc(spec, s.RunOnce)
	if err != nil {
		return nil, fmt.Errorf("scheduler: invalid schedule %q: %w", spec, err)
	}
	s.entry = id
	return s, nil
}

// RunOnce performs a single sweep
func (s *CronService) RunOnce() {
	open, closed, err := s.sweeper.SweepClosed()
	if err != nil {
		utils.Error("auction sweep failed", map[string]any{"error": err.Error()})
		return
	}
	utils.Debug("auction sweep done", map[string]any{"open": open, "closed": closed})
}

// Start runs a sweep immediately and then on schedule
func (s *CronService) Start() {
	s.RunOnce()
	s.cron.Start()
	utils.Info("auction sweep scheduled", map[string]any{"next": s.cron.Entry(s.entry).Next})
}

// Stop halts the schedule and waits for a running sweep to finish or ctx
// to be done
func (s *CronService) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		utils.Warn("auction sweep still running at shutdown", nil)
	}
}
