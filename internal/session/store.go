// Package session owns the active principal: it restores it from the
// single-key store, logs in, signs up and logs out.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"art-market/internal/marketerrors"
	"art-market/internal/metrics"
	"art-market/internal/models"
	"art-market/internal/policy"
	"art-market/internal/storage"
	"art-market/utils"
)

// Navigator performs the navigations the store triggers as side effects
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// resetter is implemented by navigators that can drop a queued navigation
type resetter interface {
	Reset()
}

type discard struct{}

func (discard) Navigate(string) {}

// Options configures a Store
type Options struct {
	Credentials []Credential
	// DemoFallback turns unknown non-empty credentials into a fresh CUSTOMER
	DemoFallback bool
	Now          func() time.Time
	NewID        func() string
}

type state struct {
	mu        sync.RWMutex
	principal *models.Principal
	loading   bool
	// settled is set once login, signup or logout has decided the principal;
	// a restore finishing later must not overwrite it
	settled bool
}

// Store holds at most one active principal. Copies made by WithNavigator
// share the same state and storage.
type Store struct {
	state    *state
	storage  storage.Storage
	nav      Navigator
	creds    []Credential
	fallback bool
	now      func() time.Time
	newID    func() string
}

// NewStore creates a store in the loading state; call Restore to finish
// initialization.
func NewStore(st storage.Storage, nav Navigator, opts Options) *Store {
	if nav == nil {
		nav = discard{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = utils.GenerateID
	}
	return &Store{
		state:    &state{loading: true},
		storage:  st,
		nav:      nav,
		creds:    opts.Credentials,
		fallback: opts.DemoFallback,
		now:      opts.Now,
		newID:    opts.NewID,
	}
}

// WithNavigator returns a view of s whose side effects go to nav
func (s *Store) WithNavigator(nav Navigator) *Store {
	if nav == nil {
		nav = discard{}
	}
	cp := *s
	cp.nav = nav
	return &cp
}

// Session returns a snapshot of the current session
func (s *Store) Session() models.Session {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	sess := models.Session{Loading: s.state.loading}
	if s.state.principal != nil {
		p := *s.state.principal
		sess.Principal = &p
	}
	return sess
}

// Restore reads the persisted principal. Missing or malformed data leaves
// the session logged out; loading is over either way. An admin restored
// outside the admin route group is sent to the admin root. A principal
// settled by login, signup or logout while the read was in flight wins.
func (s *Store) Restore(ctx context.Context, currentPath string) (*models.Principal, bool) {
	p, err := s.load(ctx)

	s.state.mu.Lock()
	s.state.loading = false
	if s.state.settled {
		s.state.mu.Unlock()
		utils.Debug("session: restore finished after the session was settled", nil)
		return nil, false
	}
	s.state.principal = p
	s.state.mu.Unlock()

	if err != nil {
		if !errors.Is(err, storage.ErrEmpty) {
			utils.Warn("session: discarding persisted principal", map[string]any{"error": err.Error()})
		}
		return nil, false
	}

	if p.IsAdmin() && !policy.InAdminGroup(currentPath) {
		s.nav.Navigate(policy.AdminRootPath)
	}

	out := *p
	return &out, true
}

func (s *Store) load(ctx context.Context) (*models.Principal, error) {
	raw, err := s.storage.Load(ctx)
	if err != nil {
		return nil, err
	}

	var p models.Principal
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode principal: %w", err)
	}
	if p.ID == "" || p.Username == "" || !p.Role.Valid() {
		return nil, fmt.Errorf("decode principal: incomplete record (id=%q role=%q)", p.ID, p.Role)
	}
	return &p, nil
}

// Login checks the demo credential table, then the permissive fallback
func (s *Store) Login(ctx context.Context, identifier, secret string) (models.Principal, error) {
	now := s.now().UTC()

	for _, c := range s.creds {
		if !c.Matches(identifier, secret) {
			continue
		}
		p := models.Principal{
			ID:        "user-" + c.Username,
			Username:  c.Username,
			Name:      c.Name,
			Email:     c.Email,
			Role:      c.Role,
			CreatedAt: now,
		}
		s.activate(ctx, p)
		metrics.LoginsTotal.WithLabelValues("fixture").Inc()

		if p.Role == models.RoleAdmin {
			s.nav.Navigate(policy.AdminRootPath)
		}
		return p, nil
	}

	if !s.fallback || identifier == "" || secret == "" {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return models.Principal{}, fmt.Errorf("login %q: %w", identifier, marketerrors.ErrInvalidCredentials)
	}

	username, email := identifier, identifier+"@example.com"
	if local, _, ok := strings.Cut(identifier, "@"); ok {
		username, email = local, identifier
	}
	p := models.Principal{
		ID:        "user-" + utils.NameID(identifier),
		Username:  username,
		Email:     email,
		Role:      models.RoleCustomer,
		CreatedAt: now,
	}
	s.activate(ctx, p)
	metrics.LoginsTotal.WithLabelValues("fallback").Inc()
	utils.Info("session: demo fallback login", map[string]any{"user_id": p.ID, "username": p.Username})
	return p, nil
}

// Signup always creates a new CUSTOMER
func (s *Store) Signup(ctx context.Context, username, email, secret, name string) (models.Principal, error) {
	if username == "" || email == "" || secret == "" {
		return models.Principal{}, fmt.Errorf("signup: %w - username, email and password are required", marketerrors.ErrMissingFields)
	}

	p := models.Principal{
		ID:        "user-" + s.newID(),
		Username:  username,
		Name:      name,
		Email:     email,
		Role:      models.RoleCustomer,
		CreatedAt: s.now().UTC(),
	}
	s.activate(ctx, p)
	utils.Info("session: user signed up", map[string]any{"user_id": p.ID, "username": p.Username})
	return p, nil
}

// Logout clears the principal and its persisted copy, then goes to login
func (s *Store) Logout(ctx context.Context) {
	s.state.mu.Lock()
	s.state.principal = nil
	s.state.loading = false
	s.state.settled = true
	s.state.mu.Unlock()

	if err := s.storage.Clear(ctx); err != nil {
		utils.Warn("session: failed to clear persisted principal", map[string]any{"error": err.Error()})
	}
	s.nav.Navigate(policy.LoginPath)
}

// activate makes p the only active principal and persists it. A failed
// write keeps the in-memory session; the next restore simply misses it.
// Navigation queued for the previous principal is dropped.
func (s *Store) activate(ctx context.Context, p models.Principal) {
	s.state.mu.Lock()
	s.state.principal = &p
	s.state.loading = false
	s.state.settled = true
	s.state.mu.Unlock()

	if r, ok := s.nav.(resetter); ok {
		r.Reset()
	}

	raw, err := json.Marshal(p)
	if err == nil {
		err = s.storage.Save(ctx, raw)
	}
	if err != nil {
		utils.Warn("session: failed to persist principal", map[string]any{"user_id": p.ID, "error": err.Error()})
	}
}
