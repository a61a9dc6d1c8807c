package listing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"art-market/internal/marketerrors"
	"art-market/internal/models"
	"art-market/internal/repository"
	"art-market/utils"
)

// AuctionOpener starts the auction for an approved listing
type AuctionOpener interface {
	OpenFromListing(l models.Listing) (models.Auction, error)
}

// Draft holds the seller-editable fields of a listing
type Draft struct {
	Title         string
	Description   string
	Category      string
	AuctionType   string
	StartingPrice int64
	Increment     int64
	StartTime     time.Time
	EndTime       time.Time
}

// ListingService defines the business logic for seller listings
type ListingService struct {
	repo     repository.ListingDB
	auctions AuctionOpener
	now      func() time.Time
}

// NewListingService creates a new ListingService instance
func NewListingService(repo repository.ListingDB, auctions AuctionOpener) *ListingService {
	return &ListingService{
		repo:     repo,
		auctions: auctions,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the service clock
func (s *ListingService) WithClock(now func() time.Time) *ListingService {
	cp := *s
	cp.now = now
	return &cp
}

func (d Draft) validate() error {
	var missing []string
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(d.Description) == "" {
		missing = append(missing, "description")
	}
	if d.StartingPrice == 0 {
		missing = append(missing, "startingPrice")
	}
	if d.StartTime.IsZero() {
		missing = append(missing, "startTime")
	}
	if d.EndTime.IsZero() {
		missing = append(missing, "endTime")
	}
	if len(missing) > 0 {
		return fmt.Errorf("service: %w - %s", marketerrors.ErrMissingFields, strings.Join(missing, ", "))
	}

	if d.StartingPrice < 0 || d.Increment < 0 {
		return fmt.Errorf("service: %w - amounts must be positive", marketerrors.ErrInvalidListing)
	}
	if !d.EndTime.After(d.StartTime) {
		return fmt.Errorf("service: %w - end time must be after start time", marketerrors.ErrInvalidListing)
	}
	return nil
}

func (d Draft) applyTo(l models.Listing) models.Listing {
	l.Title = strings.TrimSpace(d.Title)
	l.Description = strings.TrimSpace(d.Description)
	l.Category = d.Category
	l.AuctionType = d.AuctionType
	l.StartingPrice = d.StartingPrice
	l.Increment = d.Increment
	l.StartTime = d.StartTime.UTC()
	l.EndTime = d.EndTime.UTC()
	return l
}

// Create stores a new PENDING listing owned by sellerID
func (s *ListingService) Create(sellerID string, d Draft) (models.Listing, error) {
	if sellerID == "" {
		return models.Listing{}, fmt.Errorf("service: %w - missing seller", marketerrors.ErrUnauthenticated)
	}
	if err := d.validate(); err != nil {
		return models.Listing{}, err
	}

	now := s.now()
	l := d.applyTo(models.Listing{
		ID:        utils.GenerateID(),
		SellerID:  sellerID,
		Status:    models.ListingPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err := s.repo.CreateListing(l); err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to create listing for seller %s: %w", sellerID, err)
	}

	utils.Info("listing created", map[string]any{"listing_id": l.ID, "seller_id": sellerID})
	return l, nil
}

// Get returns a listing by id
func (s *ListingService) Get(id string) (models.Listing, error) {
	if id == "" {
		return models.Listing{}, fmt.Errorf("service: %w - empty listing ID", marketerrors.ErrListingNotFound)
	}
	l, err := s.repo.GetListing(id)
	if err != nil {
		return models.Listing{}, fmt.Errorf("service: failed to get listing %s: %w", id, err)
	}
	return l, nil
}

// ListBySeller returns the seller's listings, newest first
func (s *ListingService) ListBySeller(sellerID string) ([]models.Listing, error) {
	return s.list(func(l models.Listing) bool { return l.SellerID == sellerID })
}

// ListByStatus returns every listing in the given status; an empty status
// returns all listings
func (s *ListingService) ListByStatus(status models.ListingStatus) ([]models.Listing, error) {
	return s.list(func(l models.Listing) bool { return status == "" || l.Status == status })
}

func (s *ListingService) list(keep func(models.Listing) bool) ([]models.Listing, error) {
	all, err := s.repo.ListListings()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list listings: %w", err)
	}
	out := make([]models.Listing, 0, len(all))
	for _, l := range all {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out, nil
}

// EditView returns the edit page state for the owner of a listing
func (s *ListingService) EditView(id, sellerID string) (EditView, error) {
	l, err := s.Get(id)
	if err != nil {
		return EditView{}, err
	}
	if l.SellerID != sellerID {
		return EditView{}, fmt.Errorf("service: %w - listing %s", marketerrors.ErrNotOwner, id)
	}
	return EditViewAt(l, s.now()), nil
}

// Update applies d to the seller's listing while the edit window is open
// and sends it back for approval. Listings with a running auction cannot
// be edited.
func (s *ListingService) Update(id, sellerID string, d Draft) (models.Listing, error) {
	if err := d.validate(); err != nil {
		return models.Listing{}, err
	}

	now := s.now()
	updated, err := s.repo.UpdateListing(id, func(l models.Listing) (models.Listing, error) {
		if l.SellerID != sellerID {
			return l, fmt.Errorf("service: %w - listing %s", marketerrors.ErrNotOwner, id)
		}
		if !IsEditable(l, now) {
			return l, fmt.Errorf("service: %w - listing %s was created at %s", marketerrors.ErrEditWindowClosed, id, l.CreatedAt.Format(time.RFC3339))
		}
		if l.Status == models.ListingApproved {
			return l, fmt.Errorf("service: %w - listing %s is already at auction", marketerrors.ErrInvalidTransition, id)
		}
		l = d.applyTo(l)
		l.Status = models.ListingPending
		l.UpdatedAt = now
		return l, nil
	})
	if err != nil {
		if isDomainError(err) {
			return models.Listing{}, err
		}
		return models.Listing{}, fmt.Errorf("service: failed to update listing %s: %w", id, err)
	}

	utils.Info("listing updated", map[string]any{"listing_id": id, "seller_id": sellerID})
	return updated, nil
}

// Approve moves a PENDING listing to APPROVED and opens its auction. If
// the auction cannot be opened the listing goes back to PENDING.
func (s *ListingService) Approve(id string) (models.Listing, models.Auction, error) {
	approved, err := s.transition(id, models.ListingApproved)
	if err != nil {
		return models.Listing{}, models.Auction{}, err
	}

	auction, err := s.auctions.OpenFromListing(approved)
	if err != nil {
		if _, rerr := s.repo.UpdateListing(id, func(l models.Listing) (models.Listing, error) {
			l.Status = models.ListingPending
			return l, nil
		}); rerr != nil {
			utils.Error("failed to revert listing approval", map[string]any{"listing_id": id, "error": rerr.Error()})
		}
		return models.Listing{}, models.Auction{}, fmt.Errorf("service: failed to open auction for listing %s: %w", id, err)
	}
	return approved, auction, nil
}

// Reject moves a PENDING listing to REJECTED
func (s *ListingService) Reject(id string) (models.Listing, error) {
	return s.transition(id, models.ListingRejected)
}

func (s *ListingService) transition(id string, to models.ListingStatus) (models.Listing, error) {
	now := s.now()
	updated, err := s.repo.UpdateListing(id, func(l models.Listing) (models.Listing, error) {
		if l.Status != models.ListingPending {
			return l, fmt.Errorf("service: %w - listing %s is %s", marketerrors.ErrInvalidTransition, id, l.Status)
		}
		l.Status = to
		l.UpdatedAt = now
		return l, nil
	})
	if err != nil {
		if isDomainError(err) {
			return models.Listing{}, err
		}
		return models.Listing{}, fmt.Errorf("service: failed to update listing %s: %w", id, err)
	}

	utils.Info("listing reviewed", map[string]any{"listing_id": id, "status": string(to)})
	return updated, nil
}

// isDomainError reports errors raised inside an update callback, which are
// already wrapped by this package
func isDomainError(err error) bool {
	return errors.Is(err, marketerrors.ErrNotOwner) ||
		errors.Is(err, marketerrors.ErrEditWindowClosed) ||
		errors.Is(err, marketerrors.ErrInvalidTransition)
}
