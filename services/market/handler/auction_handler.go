package handler

import (
	"io"
	"net/http"
	"time"

	bidding "art-market/internal/biddingService"
	"art-market/services/market/helpers"
	"art-market/utils"

	"github.com/gin-gonic/gin"
)

type BiddingServiceInterface interface {
	GetAuction(listingID string) (bidding.Quote, error)
	ListAuctions() ([]bidding.Quote, error)
	SubmitBid(listingID, userID, userName string, amount int64) (bidding.Quote, error)
	SubmitMessage(listingID, userID, userName, text string) (bidding.Quote, error)
	Countdown(listingID string) (bidding.Remaining, error)
}

type AuctionHandler struct {
	service BiddingServiceInterface
	tick    time.Duration
}

func NewAuctionHandler(service BiddingServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service, tick: time.Second}
}

// WithTick sets the countdown stream interval
func (h *AuctionHandler) WithTick(d time.Duration) *AuctionHandler {
	cp := *h
	cp.tick = d
	return &cp
}

// ListAuctionsHandler handles GET /api/auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	quotes, err := h.service.ListAuctions()
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", "error listing auctions", err, nil)
		return
	}
	if quotes == nil {
		quotes = []bidding.Quote{}
	}

	utils.JSONResponse(c, http.StatusOK, quotes, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{"count": len(quotes)})
}

// GetAuctionHandler handles GET /api/auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	quote, err := h.service.GetAuction(auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", "error retrieving auction", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, quote, "auction retrieved successfully")
}

// PlaceBidHandler handles POST /api/auctions/:auction_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	p := helpers.PrincipalFrom(c)
	quote, err := h.service.SubmitBid(auctionID, p.ID, helpers.DisplayName(p), req.Amount)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", "failed to record bid", err, map[string]any{
			"auction_id": auctionID,
			"user_id":    p.ID,
			"amount":     req.Amount,
		})
		return
	}

	bids := quote.Auction.Bids
	bid := bids[len(bids)-1]
	resp := helpers.BidResponse{
		BidID:          bid.ID,
		ListingID:      quote.Auction.ListingID,
		UserID:         bid.UserID,
		Amount:         bid.Amount,
		CreatedAt:      bid.Timestamp.UTC().Format(time.RFC3339),
		MinimumNextBid: quote.MinimumNextBid,
		QuickPicks:     quote.QuickPicks,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.ID,
		"auction_id": auctionID,
		"user_id":    p.ID,
		"amount":     bid.Amount,
	})
}

// PostMessageHandler handles POST /api/auctions/:auction_id/messages
func (h *AuctionHandler) PostMessageHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PostMessageHandler", err)
		return
	}

	p := helpers.PrincipalFrom(c)
	quote, err := h.service.SubmitMessage(auctionID, p.ID, helpers.DisplayName(p), req.Text)
	if err != nil {
		helpers.RespondError(c, "PostMessageHandler", "failed to post message", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, quote.Auction.Chat, "message posted successfully")
}

// CountdownHandler handles GET /api/auctions/:auction_id/countdown as a
// server-sent event stream that ends when the auction does
func (h *AuctionHandler) CountdownHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	first, err := h.service.Countdown(auctionID)
	if err != nil {
		helpers.RespondError(c, "CountdownHandler", "error starting countdown", err, map[string]any{"auction_id": auctionID})
		return
	}

	ticker := time.NewTicker(h.tick)
	defer ticker.Stop()

	next := &first
	c.Stream(func(w io.Writer) bool {
		rem := *next
		c.SSEvent("countdown", gin.H{"remaining": rem, "countdown": rem.String()})
		if rem.Ended {
			return false
		}

		select {
		case <-c.Request.Context().Done():
			return false
		case <-ticker.C:
		}

		r, err := h.service.Countdown(auctionID)
		if err != nil {
			c.SSEvent("error", err.Error())
			return false
		}
		next = &r
		return true
	})
}
