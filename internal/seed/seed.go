// Package seed fills the in-memory repositories with demo data.
package seed

import (
	"fmt"
	"time"

	application "art-market/internal/applicationService"
	bidding "art-market/internal/biddingService"
	listing "art-market/internal/listingService"
	"art-market/utils"
)

// Demo principal IDs, matching the demo credential logins
const (
	SellerID   = "user-seller"
	CustomerID = "user-customer"
)

// Services are the services the seeder writes through
type Services struct {
	Bidding      *bidding.BiddingService
	Listings     *listing.ListingService
	Applications *application.ApplicationService
}

type demoListing struct {
	draft   listing.Draft
	approve bool
	bids    []int64
}

// Run creates demo listings, opens auctions for the approved ones and
// files a pending seller application
func Run(svc Services, now time.Time) error {
	demo := []demoListing{
		{
			draft: listing.Draft{
				Title:         "Vintage Oil Painting",
				Description:   "Harbour scene, oil on canvas, 1962",
				Category:      "painting",
				AuctionType:   "english",
				StartingPrice: 1500,
				StartTime:     now,
				EndTime:       now.Add(3 * 24 * time.Hour),
			},
			approve: true,
			bids:    []int64{1575, 1700},
		},
		{
			draft: listing.Draft{
				Title:         "Bronze Figure",
				Description:   "Cast bronze, signed on base",
				Category:      "sculpture",
				AuctionType:   "english",
				StartingPrice: 800,
				StartTime:     now,
				EndTime:       now.Add(6 * time.Hour),
			},
			approve: true,
		},
		{
			draft: listing.Draft{
				Title:         "Watercolor Study",
				Description:   "Botanical study on cotton paper",
				Category:      "works-on-paper",
				AuctionType:   "english",
				StartingPrice: 250,
				StartTime:     now.Add(24 * time.Hour),
				EndTime:       now.Add(5 * 24 * time.Hour),
			},
		},
	}

	for _, d := range demo {
		l, err := svc.Listings.Create(SellerID, d.draft)
		if err != nil {
			return fmt.Errorf("seed: create listing %q: %w", d.draft.Title, err)
		}
		if !d.approve {
			continue
		}
		if _, _, err := svc.Listings.Approve(l.ID); err != nil {
			return fmt.Errorf("seed: approve listing %q: %w", d.draft.Title, err)
		}
		for _, amount := range d.bids {
			if _, err := svc.Bidding.SubmitBid(l.ID, CustomerID, "Customer User", amount); err != nil {
				return fmt.Errorf("seed: bid %d on %q: %w", amount, d.draft.Title, err)
			}
		}
	}

	if _, err := svc.Applications.Submit(CustomerID, application.Form{
		FullName: "Customer User",
		Email:    "customer@example.com",
		Phone:    "555-0142",
		Address:  "12 Easel Street",
		City:     "Portland",
		State:    "OR",
		ZipCode:  "97201",
	}); err != nil {
		return fmt.Errorf("seed: submit application: %w", err)
	}

	utils.Info("demo data seeded", map[string]any{"listings": len(demo)})
	return nil
}
