package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"art-market/internal/marketerrors"
	model "art-market/internal/models"

	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 3, 28, 10, 0, 0, 0, time.UTC)

// Helper to create a new Auction
func newAuction(listingID string, startingBid int64, endsAt time.Time) model.Auction {
	return model.Auction{
		ListingID:   listingID,
		Title:       fmt.Sprintf("%s title", listingID),
		SellerID:    "user-seller",
		StartingBid: startingBid,
		CurrentBid:  startingBid,
		EndsAt:      endsAt,
	}
}

// Test CreateAuction / GetAuction
func TestMemoryRepo_CreateAndGetAuction(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("a1", 100, base)))

	tests := []struct {
		name      string
		listingID string
		wantError error
	}{
		{name: "existing", listingID: "a1"},
		{name: "missing", listingID: "nope", wantError: marketerrors.ErrAuctionNotFound},
		{name: "empty_id", listingID: "", wantError: marketerrors.ErrAuctionNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := repo.GetAuction(tc.listingID)
			if tc.wantError != nil {
				require.ErrorIs(t, err, tc.wantError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, int64(100), got.CurrentBid)
		})
	}

	t.Run("empty_listing_id_rejected", func(t *testing.T) {
		t.Parallel()
		err := repo.CreateAuction(newAuction("", 10, base))
		require.ErrorIs(t, err, marketerrors.ErrInvalidListing)
	})
}

// returned auctions never alias stored slices
func TestMemoryRepo_GetAuctionReturnsCopy(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	a := newAuction("a1", 100, base)
	a.Bids = []model.Bid{{ID: "b1", Amount: 100}}
	require.NoError(t, repo.CreateAuction(a))

	got, err := repo.GetAuction("a1")
	require.NoError(t, err)
	got.Bids[0].Amount = 999
	got.Bids = append(got.Bids, model.Bid{ID: "b2"})

	again, err := repo.GetAuction("a1")
	require.NoError(t, err)
	require.Len(t, again.Bids, 1)
	require.Equal(t, int64(100), again.Bids[0].Amount)
}

func TestMemoryRepo_ListAuctionsOrdered(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("late", 1, base.Add(2*time.Hour))))
	require.NoError(t, repo.CreateAuction(newAuction("early", 1, base.Add(time.Hour))))
	require.NoError(t, repo.CreateAuction(newAuction("b-tie", 1, base.Add(3*time.Hour))))
	require.NoError(t, repo.CreateAuction(newAuction("a-tie", 1, base.Add(3*time.Hour))))

	got, err := repo.ListAuctions()
	require.NoError(t, err)
	ids := make([]string, 0, len(got))
	for _, a := range got {
		ids = append(ids, a.ListingID)
	}
	require.Equal(t, []string{"early", "late", "a-tie", "b-tie"}, ids)
}

func TestMemoryRepo_UpdateAuction(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("a1", 100, base)))

	t.Run("applies_result", func(t *testing.T) {
		got, err := repo.UpdateAuction("a1", func(a model.Auction) (model.Auction, error) {
			a.CurrentBid = 150
			return a, nil
		})
		require.NoError(t, err)
		require.Equal(t, int64(150), got.CurrentBid)

		stored, err := repo.GetAuction("a1")
		require.NoError(t, err)
		require.Equal(t, int64(150), stored.CurrentBid)
	})

	t.Run("error_writes_nothing", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := repo.UpdateAuction("a1", func(a model.Auction) (model.Auction, error) {
			a.CurrentBid = 1
			return a, boom
		})
		require.ErrorIs(t, err, boom)

		stored, err := repo.GetAuction("a1")
		require.NoError(t, err)
		require.Equal(t, int64(150), stored.CurrentBid)
	})

	t.Run("listing_id_is_pinned", func(t *testing.T) {
		got, err := repo.UpdateAuction("a1", func(a model.Auction) (model.Auction, error) {
			a.ListingID = "other"
			return a, nil
		})
		require.NoError(t, err)
		require.Equal(t, "a1", got.ListingID)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := repo.UpdateAuction("nope", func(a model.Auction) (model.Auction, error) { return a, nil })
		require.ErrorIs(t, err, marketerrors.ErrAuctionNotFound)
	})
}

// Test concurrent updates serialize under the lock
func TestMemoryRepo_ConcurrentUpdates(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateAuction(newAuction("a1", 0, base)))

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.UpdateAuction("a1", func(a model.Auction) (model.Auction, error) {
				a.CurrentBid++
				a.Bids = append(a.Bids, model.Bid{ID: fmt.Sprintf("b%d", i)})
				return a, nil
			})
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := repo.GetAuction("a1")
	require.NoError(t, err)
	require.Equal(t, int64(workers), got.CurrentBid)
	require.Len(t, got.Bids, workers)
}

func TestMemoryRepo_Listings(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	older := model.Listing{ID: "l1", SellerID: "s1", Title: "Old", CreatedAt: base}
	newer := model.Listing{ID: "l2", SellerID: "s1", Title: "New", CreatedAt: base.Add(time.Hour)}
	require.NoError(t, repo.CreateListing(older))
	require.NoError(t, repo.CreateListing(newer))
	require.ErrorIs(t, repo.CreateListing(model.Listing{}), marketerrors.ErrInvalidListing)

	all, err := repo.ListListings()
	require.NoError(t, err)
	require.Equal(t, []model.Listing{newer, older}, all)

	got, err := repo.GetListing("l1")
	require.NoError(t, err)
	require.Equal(t, older, got)

	_, err = repo.GetListing("missing")
	require.ErrorIs(t, err, marketerrors.ErrListingNotFound)

	updated, err := repo.UpdateListing("l1", func(l model.Listing) (model.Listing, error) {
		l.Title = "Renamed"
		return l, nil
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Title)

	_, err = repo.UpdateListing("missing", func(l model.Listing) (model.Listing, error) { return l, nil })
	require.ErrorIs(t, err, marketerrors.ErrListingNotFound)
}

func TestMemoryRepo_Applications(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	first := model.SellerApplication{ID: "app1", UserID: "u1", Status: model.ApplicationPending, SubmittedAt: base}
	second := model.SellerApplication{ID: "app2", UserID: "u2", Status: model.ApplicationPending, SubmittedAt: base.Add(time.Minute)}
	require.NoError(t, repo.CreateApplication(second))
	require.NoError(t, repo.CreateApplication(first))
	require.ErrorIs(t, repo.CreateApplication(model.SellerApplication{}), marketerrors.ErrInvalidApplication)

	duplicate := model.SellerApplication{ID: "app3", UserID: "u1", Status: model.ApplicationPending, SubmittedAt: base.Add(time.Hour)}
	require.ErrorIs(t, repo.CreateApplication(duplicate), marketerrors.ErrInvalidApplication)

	all, err := repo.ListApplications()
	require.NoError(t, err)
	require.Equal(t, []model.SellerApplication{first, second}, all)

	updated, err := repo.UpdateApplication("app1", func(a model.SellerApplication) (model.SellerApplication, error) {
		a.Status = model.ApplicationApproved
		return a, nil
	})
	require.NoError(t, err)
	require.Equal(t, model.ApplicationApproved, updated.Status)

	_, err = repo.GetApplication("missing")
	require.ErrorIs(t, err, marketerrors.ErrApplicationNotFound)
	_, err = repo.UpdateApplication("missing", func(a model.SellerApplication) (model.SellerApplication, error) { return a, nil })
	require.ErrorIs(t, err, marketerrors.ErrApplicationNotFound)
}
