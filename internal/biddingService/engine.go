package bidding

import (
	"fmt"
	"strings"
	"time"

	"art-market/internal/marketerrors"
	"art-market/internal/models"
	"art-market/utils"
)

// Bid increments, in percent of the current bid
const (
	MinIncrementPercent = 5
	quickPickStep1      = 10
	quickPickStep2      = 20
)

// ceilPercent returns ceil(v * pct / 100) without overflowing for large v
func ceilPercent(v, pct int64) int64 {
	if v <= 0 {
		return 0
	}
	q, r := v/100, v%100
	return q*pct + (r*pct+99)/100
}

// MinimumNextBid is the floor for the next accepted bid: the current bid
// plus 5% of it, rounded up. It is always above the current bid.
func MinimumNextBid(a models.Auction) int64 {
	inc := ceilPercent(a.CurrentBid, MinIncrementPercent)
	if inc < 1 {
		inc = 1
	}
	return a.CurrentBid + inc
}

// QuickPicks are the suggested amounts offered next to the bid input. They
// are shortcuts only; validation uses MinimumNextBid.
func QuickPicks(a models.Auction) []int64 {
	floor := MinimumNextBid(a)
	return []int64{
		floor,
		floor + ceilPercent(a.CurrentBid, quickPickStep1),
		floor + ceilPercent(a.CurrentBid, quickPickStep2),
	}
}

// Ended reports whether bidding is over at now. Once the closed latch is
// set this stays true whatever now is.
func Ended(a models.Auction, now time.Time) bool {
	return a.Closed || !now.Before(a.EndsAt)
}

// Observe latches the auction closed once its deadline has passed
func Observe(a models.Auction, now time.Time) models.Auction {
	if a.Closed || now.Before(a.EndsAt) {
		return a
	}
	out := a.Clone()
	out.Closed = true
	return out
}

// PlaceBid validates amount against a and returns the auction with the bid
// appended. a itself is left untouched.
func PlaceBid(a models.Auction, userID, userName string, amount int64, now time.Time) (models.Auction, error) {
	if Ended(a, now) {
		return models.Auction{}, fmt.Errorf("bid on %s: %w", a.ListingID, marketerrors.ErrAuctionClosed)
	}
	if userID == "" {
		return models.Auction{}, fmt.Errorf("bid on %s: %w - missing user", a.ListingID, marketerrors.ErrInvalidBid)
	}
	if floor := MinimumNextBid(a); amount < floor {
		return models.Auction{}, fmt.Errorf("bid on %s: %w - minimum is %d", a.ListingID, marketerrors.ErrBelowMinimum, floor)
	}

	out := a.Clone()
	out.Bids = append(out.Bids, models.Bid{
		ID:        utils.GenerateID(),
		UserID:    userID,
		UserName:  userName,
		Amount:    amount,
		Timestamp: now,
	})
	out.CurrentBid = amount
	return out, nil
}

// PostMessage appends a chat message. Blank text leaves the auction as is.
func PostMessage(a models.Auction, userID, userName, text string, now time.Time) models.Auction {
	text = strings.TrimSpace(text)
	if text == "" {
		return a
	}
	out := a.Clone()
	out.Chat = append(out.Chat, models.ChatMessage{
		ID:        utils.GenerateID(),
		UserID:    userID,
		UserName:  userName,
		Text:      text,
		Timestamp: now,
	})
	return out
}

// Remaining is the time left on an auction, broken down for display
type Remaining struct {
	Duration time.Duration `json:"duration_ns"`
	Ended    bool          `json:"ended"`
	Days     int64         `json:"days"`
	Hours    int64         `json:"hours"`
	Minutes  int64         `json:"minutes"`
	Seconds  int64         `json:"seconds"`
}

// String renders the countdown the way the storefront shows it
func (r Remaining) String() string {
	if r.Ended {
		return "Auction ended"
	}
	return fmt.Sprintf("%dd %dh %dm %ds", r.Days, r.Hours, r.Minutes, r.Seconds)
}

// TimeRemaining derives the countdown from the deadline. It never changes
// the auction.
func TimeRemaining(a models.Auction, now time.Time) Remaining {
	if Ended(a, now) {
		return Remaining{Ended: true}
	}
	d := a.EndsAt.Sub(now)
	secs := int64(d / time.Second)
	return Remaining{
		Duration: d,
		Days:     secs / 86400,
		Hours:    secs % 86400 / 3600,
		Minutes:  secs % 3600 / 60,
		Seconds:  secs % 60,
	}
}

// Quote is everything a bidding view needs about an auction at a moment
type Quote struct {
	Auction        models.Auction `json:"auction"`
	Open           bool           `json:"open"`
	MinimumNextBid int64          `json:"minimum_next_bid"`
	QuickPicks     []int64        `json:"quick_picks"`
	Remaining      Remaining      `json:"remaining"`
	Countdown      string         `json:"countdown"`
}

// QuoteAt builds the bidding view of a at now
func QuoteAt(a models.Auction, now time.Time) Quote {
	a = Observe(a, now)
	rem := TimeRemaining(a, now)
	return Quote{
		Auction:        a,
		Open:           !rem.Ended,
		MinimumNextBid: MinimumNextBid(a),
		QuickPicks:     QuickPicks(a),
		Remaining:      rem,
		Countdown:      rem.String(),
	}
}
