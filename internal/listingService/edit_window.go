package listing

import (
	"time"

	"art-market/internal/models"
	"art-market/internal/policy"
)

// EditWindow is how long after creation a seller may still change a listing
const EditWindow = 24 * time.Hour

// IsEditable reports whether l can still be edited at now
func IsEditable(l models.Listing, now time.Time) bool {
	return now.Sub(l.CreatedAt) <= EditWindow
}

// Edit view states
const (
	ViewEditable      = "editable"
	ViewEditingClosed = "editing-closed"
)

// EditView is what the seller's edit page renders. A closed view carries
// no listing fields, only the way back to the seller's listings.
type EditView struct {
	State   string          `json:"state"`
	Listing *models.Listing `json:"listing,omitempty"`
	// ClosesAt is only set while the listing is editable
	ClosesAt *time.Time `json:"closes_at,omitempty"`
	Escape   string     `json:"escape,omitempty"`
	Message  string     `json:"message,omitempty"`
}

// EditViewAt builds the edit view of l at now
func EditViewAt(l models.Listing, now time.Time) EditView {
	if !IsEditable(l, now) {
		return EditView{
			State:   ViewEditingClosed,
			Escape:  policy.SellerHome,
			Message: "Editing is closed for this listing",
		}
	}
	closes := l.CreatedAt.Add(EditWindow)
	return EditView{
		State:    ViewEditable,
		Listing:  &l,
		ClosesAt: &closes,
	}
}
