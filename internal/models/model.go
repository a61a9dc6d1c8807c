package models

import "time"

// Role is the privilege level carried by a principal
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleSeller   Role = "SELLER"
	RoleAdmin    Role = "ADMIN"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// Principal is the authenticated identity driving authorization decisions
type Principal struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether the principal holds the ADMIN role
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// IsSeller reports whether the principal may manage listings
func (p *Principal) IsSeller() bool {
	return p != nil && (p.Role == RoleSeller || p.Role == RoleAdmin)
}

// Session wraps the optional active principal. Loading is true only while
// the persisted principal is being restored.
type Session struct {
	Principal *Principal `json:"principal"`
	Loading   bool       `json:"loading"`
}

// Authenticated reports whether a principal is active
func (s Session) Authenticated() bool {
	return s.Principal != nil
}

// Bid represents an accepted bid on an auction
type Bid struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Amount    int64     `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatMessage is a single message posted to an auction's chat
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Auction is the bidding aggregate over an approved listing
type Auction struct {
	ListingID   string        `json:"listing_id"`
	Title       string        `json:"title"`
	SellerID    string        `json:"seller_id"`
	StartingBid int64         `json:"starting_bid"`
	CurrentBid  int64         `json:"current_bid"`
	EndsAt      time.Time     `json:"auction_ends_at"`
	Closed      bool          `json:"closed"`
	Bids        []Bid         `json:"bids"`
	Chat        []ChatMessage `json:"chat"`
}

// Clone returns a copy that shares no slices with a
func (a Auction) Clone() Auction {
	out := a
	out.Bids = append([]Bid(nil), a.Bids...)
	out.Chat = append([]ChatMessage(nil), a.Chat...)
	return out
}

// ListingStatus tracks the approval state of a listing
type ListingStatus string

const (
	ListingPending  ListingStatus = "PENDING"
	ListingApproved ListingStatus = "APPROVED"
	ListingRejected ListingStatus = "REJECTED"
)

// Listing is a seller-owned item submitted for auction
type Listing struct {
	ID            string        `json:"id"`
	SellerID      string        `json:"seller_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Category      string        `json:"category"`
	AuctionType   string        `json:"auction_type"`
	StartingPrice int64         `json:"starting_price"`
	Increment     int64         `json:"increment"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	Status        ListingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// ApplicationStatus tracks the review state of a seller application
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// SellerApplication is a customer's request to become a seller
type SellerApplication struct {
	ID           string            `json:"id"`
	UserID       string            `json:"user_id"`
	FullName     string            `json:"full_name"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	BusinessName string            `json:"business_name,omitempty"`
	BusinessType string            `json:"business_type,omitempty"`
	Website      string            `json:"website,omitempty"`
	Address      string            `json:"address"`
	City         string            `json:"city"`
	State        string            `json:"state"`
	ZipCode      string            `json:"zip_code"`
	Status       ApplicationStatus `json:"status"`
	SubmittedAt  time.Time         `json:"submitted_at"`
	ReviewedAt   *time.Time        `json:"reviewed_at,omitempty"`
}
