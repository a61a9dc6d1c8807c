package marketerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound     = errors.New("auction not found")
	ErrListingNotFound     = errors.New("listing not found")
	ErrApplicationNotFound = errors.New("seller application not found")
)

// authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("missing required fields")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("forbidden")
)

// bidding errors
var (
	ErrAuctionClosed = errors.New("auction closed")
	ErrBelowMinimum  = errors.New("bid below minimum")
	ErrInvalidBid    = errors.New("invalid bid")
)

// listing and onboarding errors
var (
	ErrEditWindowClosed   = errors.New("listing edit window closed")
	ErrInvalidListing     = errors.New("invalid listing")
	ErrInvalidApplication = errors.New("invalid seller application")
	ErrNotOwner           = errors.New("listing belongs to another seller")
	ErrInvalidTransition  = errors.New("status transition not allowed")
)
