package repository

import (
	"fmt"
	"sort"
	"sync"

	"art-market/internal/marketerrors"
	model "art-market/internal/models"
)

// AuctionDB defines the auction storage interface
type AuctionDB interface {
	CreateAuction(auction model.Auction) error
	GetAuction(listingID string) (model.Auction, error)
	ListAuctions() ([]model.Auction, error)
	// UpdateAuction replaces the stored auction with fn's result atomically.
	// Nothing is written when fn returns an error.
	UpdateAuction(listingID string, fn func(model.Auction) (model.Auction, error)) (model.Auction, error)
}

// ListingDB defines the seller listing storage interface
type ListingDB interface {
	CreateListing(listing model.Listing) error
	GetListing(id string) (model.Listing, error)
	ListListings() ([]model.Listing, error)
	UpdateListing(id string, fn func(model.Listing) (model.Listing, error)) (model.Listing, error)
}

// ApplicationDB defines the seller application storage interface
type ApplicationDB interface {
	// CreateApplication fails with ErrInvalidApplication when the user
	// already has a pending application.
	CreateApplication(app model.SellerApplication) error
	GetApplication(id string) (model.SellerApplication, error)
	ListApplications() ([]model.SellerApplication, error)
	UpdateApplication(id string, fn func(model.SellerApplication) (model.SellerApplication, error)) (model.SellerApplication, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of the storage interfaces
type MemoryRepo struct {
	mu           sync.RWMutex
	auctions     map[string]model.Auction           // key: listingID
	listings     map[string]model.Listing           // key: listingID
	applications map[string]model.SellerApplication // key: applicationID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions:     make(map[string]model.Auction),
		listings:     make(map[string]model.Listing),
		applications: make(map[string]model.SellerApplication),
	}
}

// CreateAuction stores a new auction, replacing any auction for the same listing
func (r *MemoryRepo) CreateAuction(auction model.Auction) error {
	if auction.ListingID == "" {
		return fmt.Errorf("create auction: %w - empty listing id", marketerrors.ErrInvalidListing)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[auction.ListingID] = auction.Clone()
	return nil
}

// GetAuction returns a copy of the auction for a listing
func (r *MemoryRepo) GetAuction(listingID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[listingID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", listingID, marketerrors.ErrAuctionNotFound)
	}
	return a.Clone(), nil
}

// ListAuctions returns all auctions ordered by closing time
func (r *MemoryRepo) ListAuctions() ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		out = append(out, a.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].EndsAt.Equal(out[j].EndsAt) {
			return out[i].ListingID < out[j].ListingID
		}
		return out[i].EndsAt.Before(out[j].EndsAt)
	})
	return out, nil
}

// UpdateAuction applies fn under the write lock and stores its result
func (r *MemoryRepo) UpdateAuction(listingID string, fn func(model.Auction) (model.Auction, error)) (model.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.auctions[listingID]
	if !ok {
		return model.Auction{}, fmt.Errorf("update auction %s: %w", listingID, marketerrors.ErrAuctionNotFound)
	}

	next, err := fn(current.Clone())
	if err != nil {
		return model.Auction{}, err
	}
	next.ListingID = listingID
	r.auctions[listingID] = next.Clone()
	return next, nil
}
