package repository

import (
	"fmt"
	"sort"

	"art-market/internal/marketerrors"
	model "art-market/internal/models"
)

// CreateListing stores a new listing
func (r *MemoryRepo) CreateListing(listing model.Listing) error {
	if listing.ID == "" {
		return fmt.Errorf("create listing: %w - empty id", marketerrors.ErrInvalidListing)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listings[listing.ID] = listing
	return nil
}

// GetListing returns a listing by id
func (r *MemoryRepo) GetListing(id string) (model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.listings[id]
	if !ok {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", id, marketerrors.ErrListingNotFound)
	}
	return l, nil
}

// ListListings returns all listings, newest first
func (r *MemoryRepo) ListListings() ([]model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Listing, 0, len(r.listings))
	for _, l := range r.listings {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateListing applies fn under the write lock and stores its result
func (r *MemoryRepo) UpdateListing(id string, fn func(model.Listing) (model.Listing, error)) (model.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.listings[id]
	if !ok {
		return model.Listing{}, fmt.Errorf("update listing %s: %w", id, marketerrors.ErrListingNotFound)
	}
	next, err := fn(current)
	if err != nil {
		return model.Listing{}, err
	}
	next.ID = id
	r.listings[id] = next
	return next, nil
}
