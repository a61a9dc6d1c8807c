package bidding

import (
	"errors"
	"fmt"
	"time"

	"art-market/internal/marketerrors"
	"art-market/internal/metrics"
	"art-market/internal/models"
	"art-market/internal/repository"
	"art-market/utils"
)

// BiddingService defines the business logic for auction bidding
type BiddingService struct {
	repo repository.AuctionDB
	now  func() time.Time
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB) *BiddingService {
	return &BiddingService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the service clock; used by tests and the seeder
func (s *BiddingService) WithClock(now func() time.Time) *BiddingService {
	cp := *s
	cp.now = now
	return &cp
}

// Now returns the service clock's current time
func (s *BiddingService) Now() time.Time {
	return s.now()
}

// GetAuction returns the bidding view of an auction
func (s *BiddingService) GetAuction(listingID string) (Quote, error) {
	if listingID == "" {
		return Quote{}, fmt.Errorf("service: %w - empty auction ID", marketerrors.ErrAuctionNotFound)
	}

	a, err := s.repo.GetAuction(listingID)
	if err != nil {
		return Quote{}, fmt.Errorf("service: failed to get auction %s: %w", listingID, err)
	}
	return QuoteAt(a, s.now()), nil
}

// ListAuctions returns the bidding view of every auction
func (s *BiddingService) ListAuctions() ([]Quote, error) {
	auctions, err := s.repo.ListAuctions()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}

	now := s.now()
	out := make([]Quote, 0, len(auctions))
	for _, a := range auctions {
		out = append(out, QuoteAt(a, now))
	}
	return out, nil
}

// SubmitBid validates and records a bid. When the deadline has passed the
// closed latch is persisted even though the bid is refused.
func (s *BiddingService) SubmitBid(listingID, userID, userName string, amount int64) (Quote, error) {
	now := s.now()

	var bidErr error
	updated, err := s.repo.UpdateAuction(listingID, func(a models.Auction) (models.Auction, error) {
		a = Observe(a, now)
		next, err := PlaceBid(a, userID, userName, amount, now)
		if err != nil {
			bidErr = err
			return a, nil
		}
		return next, nil
	})
	if err != nil {
		metrics.BidsTotal.WithLabelValues("invalid").Inc()
		return Quote{}, fmt.Errorf("service: failed to record bid for auction %s by user %s: %w", listingID, userID, err)
	}
	if bidErr != nil {
		metrics.BidsTotal.WithLabelValues(bidResult(bidErr)).Inc()
		return Quote{}, fmt.Errorf("service: %w", bidErr)
	}

	metrics.BidsTotal.WithLabelValues("accepted").Inc()
	return QuoteAt(updated, now), nil
}

func bidResult(err error) string {
	switch {
	case errors.Is(err, marketerrors.ErrAuctionClosed):
		return "closed"
	case errors.Is(err, marketerrors.ErrBelowMinimum):
		return "below_minimum"
	default:
		return "invalid"
	}
}

// SubmitMessage appends a chat message; blank messages are ignored
func (s *BiddingService) SubmitMessage(listingID, userID, userName, text string) (Quote, error) {
	now := s.now()

	updated, err := s.repo.UpdateAuction(listingID, func(a models.Auction) (models.Auction, error) {
		return PostMessage(a, userID, userName, text, now), nil
	})
	if err != nil {
		return Quote{}, fmt.Errorf("service: failed to post message to auction %s: %w", listingID, err)
	}
	return QuoteAt(updated, now), nil
}

// Countdown returns the time left on an auction
func (s *BiddingService) Countdown(listingID string) (Remaining, error) {
	a, err := s.repo.GetAuction(listingID)
	if err != nil {
		return Remaining{}, fmt.Errorf("service: failed to get auction %s: %w", listingID, err)
	}
	return TimeRemaining(a, s.now()), nil
}

// OpenFromListing starts the auction for an approved listing
func (s *BiddingService) OpenFromListing(l models.Listing) (models.Auction, error) {
	if l.ID == "" || l.StartingPrice <= 0 {
		return models.Auction{}, fmt.Errorf("service: %w - listing cannot open an auction", marketerrors.ErrInvalidListing)
	}

	a := models.Auction{
		ListingID:   l.ID,
		Title:       l.Title,
		SellerID:    l.SellerID,
		StartingBid: l.StartingPrice,
		CurrentBid:  l.StartingPrice,
		EndsAt:      l.EndTime.UTC(),
	}
	if err := s.repo.CreateAuction(a); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to open auction %s: %w", l.ID, err)
	}

	utils.Info("auction opened", map[string]any{
		"listing_id":   a.ListingID,
		"starting_bid": a.StartingBid,
		"ends_at":      a.EndsAt.Format(time.RFC3339),
	})
	return a, nil
}

// SweepClosed latches every auction whose deadline has passed and returns
// how many are still open and how many were closed by this sweep.
func (s *BiddingService) SweepClosed() (open, closed int, err error) {
	now := s.now()

	auctions, err := s.repo.ListAuctions()
	if err != nil {
		return 0, 0, fmt.Errorf("service: failed to list auctions: %w", err)
	}

	for _, a := range auctions {
		if a.Closed {
			continue
		}
		if !Ended(a, now) {
			open++
			continue
		}
		if _, err := s.repo.UpdateAuction(a.ListingID, func(cur models.Auction) (models.Auction, error) {
			return Observe(cur, now), nil
		}); err != nil {
			return open, closed, fmt.Errorf("service: failed to close auction %s: %w", a.ListingID, err)
		}
		closed++
		utils.Info("auction closed", map[string]any{
			"listing_id":  a.ListingID,
			"current_bid": a.CurrentBid,
			"bids":        len(a.Bids),
		})
	}

	metrics.OpenAuctions.Set(float64(open))
	metrics.AuctionsClosedTotal.Add(float64(closed))
	return open, closed, nil
}
