package repository

import (
	"fmt"
	"sort"

	"art-market/internal/marketerrors"
	model "art-market/internal/models"
)

// CreateApplication stores a new seller application. A user holds at most
// one pending application; the check and the insert share the write lock.
func (r *MemoryRepo) CreateApplication(app model.SellerApplication) error {
	if app.ID == "" {
		return fmt.Errorf("create application: %w - empty id", marketerrors.ErrInvalidApplication)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if app.Status == model.ApplicationPending {
		for _, existing := range r.applications {
			if existing.UserID == app.UserID && existing.Status == model.ApplicationPending {
				return fmt.Errorf("create application: %w - application %s is still pending", marketerrors.ErrInvalidApplication, existing.ID)
			}
		}
	}
	r.applications[app.ID] = app
	return nil
}

// GetApplication returns a seller application by id
func (r *MemoryRepo) GetApplication(id string) (model.SellerApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	app, ok := r.applications[id]
	if !ok {
		return model.SellerApplication{}, fmt.Errorf("get application %s: %w", id, marketerrors.ErrApplicationNotFound)
	}
	return app, nil
}

// ListApplications returns all applications in submission order
func (r *MemoryRepo) ListApplications() ([]model.SellerApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.SellerApplication, 0, len(r.applications))
	for _, app := range r.applications {
		out = append(out, app)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].SubmittedAt.Before(out[j].SubmittedAt)
	})
	return out, nil
}

// UpdateApplication applies fn under the write lock and stores its result
func (r *MemoryRepo) UpdateApplication(id string, fn func(model.SellerApplication) (model.SellerApplication, error)) (model.SellerApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.applications[id]
	if !ok {
		return model.SellerApplication{}, fmt.Errorf("update application %s: %w", id, marketerrors.ErrApplicationNotFound)
	}
	next, err := fn(current)
	if err != nil {
		return model.SellerApplication{}, err
	}
	next.ID = id
	r.applications[id] = next
	return next, nil
}
