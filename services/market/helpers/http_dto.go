package helpers

import (
	"time"

	application "art-market/internal/applicationService"
	listing "art-market/internal/listingService"
)

// Request/Response DTOs
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type PlaceBidRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

type PostMessageRequest struct {
	Text string `json:"text"`
}

type BidResponse struct {
	BidID          string  `json:"bid_id"`
	ListingID      string  `json:"listing_id"`
	UserID         string  `json:"user_id"`
	Amount         int64   `json:"amount"`
	CreatedAt      string  `json:"created_at"`
	MinimumNextBid int64   `json:"minimum_next_bid"`
	QuickPicks     []int64 `json:"quick_picks"`
}

type ListingRequest struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	AuctionType   string    `json:"auction_type"`
	StartingPrice int64     `json:"starting_price"`
	Increment     int64     `json:"increment"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
}

// Draft converts the request into the listing service's input
func (r ListingRequest) Draft() listing.Draft {
	return listing.Draft{
		Title:         r.Title,
		Description:   r.Description,
		Category:      r.Category,
		AuctionType:   r.AuctionType,
		StartingPrice: r.StartingPrice,
		Increment:     r.Increment,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
	}
}

type ApplicationRequest struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	BusinessName string `json:"business_name"`
	BusinessType string `json:"business_type"`
	Website      string `json:"website"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

// Form converts the request into the application service's input
func (r ApplicationRequest) Form() application.Form {
	return application.Form{
		FullName:     r.FullName,
		Email:        r.Email,
		Phone:        r.Phone,
		BusinessName: r.BusinessName,
		BusinessType: r.BusinessType,
		Website:      r.Website,
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		ZipCode:      r.ZipCode,
	}
}
