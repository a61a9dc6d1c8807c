package bidding

import (
	"errors"
	"testing"
	"time"

	"art-market/internal/marketerrors"
	model "art-market/internal/models"
	"art-market/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// applyTo returns a DoAndReturn stub that runs the update fn against seed
func applyTo(seed model.Auction, stored *model.Auction) func(string, func(model.Auction) (model.Auction, error)) (model.Auction, error) {
	return func(_ string, fn func(model.Auction) (model.Auction, error)) (model.Auction, error) {
		next, err := fn(seed.Clone())
		if err != nil {
			return model.Auction{}, err
		}
		if stored != nil {
			*stored = next
		}
		return next, nil
	}
}

// Tests SubmitBid
func TestBiddingService_SubmitBid(t *testing.T) {
	now := deadline.Add(-time.Hour)

	tests := []struct {
		name          string
		listingID     string
		userID        string
		amount        int64
		clock         time.Time
		mockSetup     func(m *repository.MockAuctionDB, stored *model.Auction)
		expectedError error
		wantStored    func(t *testing.T, stored model.Auction)
	}{
		{
			name:      "valid_bid",
			listingID: "art-1",
			userID:    "user1",
			amount:    110,
			clock:     now,
			mockSetup: func(m *repository.MockAuctionDB, stored *model.Auction) {
				m.EXPECT().UpdateAuction("art-1", gomock.Any()).DoAndReturn(applyTo(auctionAt(100), stored))
			},
			wantStored: func(t *testing.T, stored model.Auction) {
				require.Equal(t, int64(110), stored.CurrentBid)
				require.Len(t, stored.Bids, 1)
				_, err := uuid.Parse(stored.Bids[0].ID)
				require.NoError(t, err, "bid ID should be a valid UUID")
			},
		},
		{
			name:      "below_minimum",
			listingID: "art-1",
			userID:    "user1",
			amount:    104,
			clock:     now,
			mockSetup: func(m *repository.MockAuctionDB, stored *model.Auction) {
				m.EXPECT().UpdateAuction("art-1", gomock.Any()).DoAndReturn(applyTo(auctionAt(100), stored))
			},
			expectedError: marketerrors.ErrBelowMinimum,
			wantStored: func(t *testing.T, stored model.Auction) {
				require.Equal(t, int64(100), stored.CurrentBid)
				require.Empty(t, stored.Bids)
				require.False(t, stored.Closed)
			},
		},
		{
			name:      "closed_persists_latch",
			listingID: "art-1",
			userID:    "user1",
			amount:    5000,
			clock:     deadline,
			mockSetup: func(m *repository.MockAuctionDB, stored *model.Auction) {
				m.EXPECT().UpdateAuction("art-1", gomock.Any()).DoAndReturn(applyTo(auctionAt(100), stored))
			},
			expectedError: marketerrors.ErrAuctionClosed,
			wantStored: func(t *testing.T, stored model.Auction) {
				require.True(t, stored.Closed)
				require.Empty(t, stored.Bids)
			},
		},
		{
			name:      "auction_not_found",
			listingID: "missing",
			userID:    "user1",
			amount:    100,
			clock:     now,
			mockSetup: func(m *repository.MockAuctionDB, _ *model.Auction) {
				m.EXPECT().UpdateAuction("missing", gomock.Any()).Return(model.Auction{}, marketerrors.ErrAuctionNotFound)
			},
			expectedError: marketerrors.ErrAuctionNotFound,
		},
		{
			name:      "repo_fails",
			listingID: "art-1",
			userID:    "user1",
			amount:    120,
			clock:     now,
			mockSetup: func(m *repository.MockAuctionDB, _ *model.Auction) {
				m.EXPECT().UpdateAuction("art-1", gomock.Any()).Return(model.Auction{}, errors.New("repo write failed"))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := repository.NewMockAuctionDB(ctrl)
			service := NewBiddingService(mockRepo).WithClock(func() time.Time { return tc.clock })

			var stored model.Auction
			tc.mockSetup(mockRepo, &stored)

			quote, err := service.SubmitBid(tc.listingID, tc.userID, "User", tc.amount)
			if tc.expectedError != nil || tc.name == "repo_fails" {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.amount, quote.Auction.CurrentBid)
				require.Equal(t, MinimumNextBid(quote.Auction), quote.MinimumNextBid)
			}
			if tc.wantStored != nil {
				tc.wantStored(t, stored)
			}
		})
	}
}

// Tests GetAuction
func TestBiddingService_GetAuction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewBiddingService(mockRepo).WithClock(func() time.Time { return deadline.Add(-time.Minute) })

	mockRepo.EXPECT().GetAuction("art-1").Return(auctionAt(100), nil)
	q, err := service.GetAuction("art-1")
	require.NoError(t, err)
	require.True(t, q.Open)
	require.Equal(t, int64(105), q.MinimumNextBid)

	mockRepo.EXPECT().GetAuction("missing").Return(model.Auction{}, marketerrors.ErrAuctionNotFound)
	_, err = service.GetAuction("missing")
	require.ErrorIs(t, err, marketerrors.ErrAuctionNotFound)

	_, err = service.GetAuction("")
	require.ErrorIs(t, err, marketerrors.ErrAuctionNotFound)
}

// Tests SubmitMessage
func TestBiddingService_SubmitMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewBiddingService(mockRepo).WithClock(func() time.Time { return deadline.Add(-time.Minute) })

	var stored model.Auction
	mockRepo.EXPECT().UpdateAuction("art-1", gomock.Any()).DoAndReturn(applyTo(auctionAt(100), &stored))
	q, err := service.SubmitMessage("art-1", "u1", "Ada", "hello")
	require.NoError(t, err)
	require.Len(t, q.Auction.Chat, 1)
	require.Equal(t, "hello", stored.Chat[0].Text)

	mockRepo.EXPECT().UpdateAuction("art-1", gomock.Any()).DoAndReturn(applyTo(auctionAt(100), &stored))
	q, err = service.SubmitMessage("art-1", "u1", "Ada", "   ")
	require.NoError(t, err)
	require.Empty(t, q.Auction.Chat)

	mockRepo.EXPECT().UpdateAuction("nope", gomock.Any()).Return(model.Auction{}, marketerrors.ErrAuctionNotFound)
	_, err = service.SubmitMessage("nope", "u1", "Ada", "hi")
	require.ErrorIs(t, err, marketerrors.ErrAuctionNotFound)
}

// Tests OpenFromListing
func TestBiddingService_OpenFromListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewBiddingService(mockRepo)

	listing := model.Listing{ID: "l1", SellerID: "s1", Title: "Seascape", StartingPrice: 1500, EndTime: deadline}
	mockRepo.EXPECT().CreateAuction(gomock.Any()).DoAndReturn(func(a model.Auction) error {
		require.Equal(t, int64(1500), a.StartingBid)
		require.Equal(t, int64(1500), a.CurrentBid)
		require.Equal(t, deadline, a.EndsAt)
		return nil
	})
	a, err := service.OpenFromListing(listing)
	require.NoError(t, err)
	require.Equal(t, "l1", a.ListingID)

	_, err = service.OpenFromListing(model.Listing{ID: "l2"})
	require.ErrorIs(t, err, marketerrors.ErrInvalidListing)
}

// Tests SweepClosed against the real in-memory repository
func TestBiddingService_SweepClosed(t *testing.T) {
	repo := repository.NewMemoryRepo()
	now := deadline

	open := auctionAt(100)
	open.ListingID = "open"
	open.EndsAt = now.Add(time.Hour)
	ended := auctionAt(100)
	ended.ListingID = "ended"
	already := auctionAt(100)
	already.ListingID = "already"
	already.Closed = true
	for _, a := range []model.Auction{open, ended, already} {
		require.NoError(t, repo.CreateAuction(a))
	}

	service := NewBiddingService(repo).WithClock(func() time.Time { return now })
	openCount, closedCount, err := service.SweepClosed()
	require.NoError(t, err)
	require.Equal(t, 1, openCount)
	require.Equal(t, 1, closedCount)

	got, err := repo.GetAuction("ended")
	require.NoError(t, err)
	require.True(t, got.Closed)

	// a clock that jumps backwards does not reopen the swept auction
	rewound := service.WithClock(func() time.Time { return now.Add(-48 * time.Hour) })
	_, err = rewound.SubmitBid("ended", "u1", "Ada", 1000)
	require.ErrorIs(t, err, marketerrors.ErrAuctionClosed)

	// the open one still takes bids
	_, err = rewound.SubmitBid("open", "u1", "Ada", 1000)
	require.NoError(t, err)
}

func TestBiddingService_Countdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewBiddingService(mockRepo).WithClock(func() time.Time { return deadline.Add(-61 * time.Second) })

	mockRepo.EXPECT().GetAuction("art-1").Return(auctionAt(100), nil)
	rem, err := service.Countdown("art-1")
	require.NoError(t, err)
	require.Equal(t, "0d 0h 1m 1s", rem.String())
}
