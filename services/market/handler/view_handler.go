package handler

import (
	"errors"
	"net/http"

	"art-market/internal/marketerrors"
	model "art-market/internal/models"
	"art-market/internal/policy"
	"art-market/services/market/helpers"
	"art-market/utils"

	"github.com/gin-gonic/gin"
)

// View is the rendered page model for a navigable path
type View struct {
	Name      string           `json:"view"`
	Path      string           `json:"path"`
	Principal *model.Principal `json:"principal"`
	Nav       []policy.NavLink `json:"nav"`
	Data      any              `json:"data,omitempty"`
}

type ViewHandler struct {
	auctions     BiddingServiceInterface
	listings     ListingServiceInterface
	applications ApplicationServiceInterface
}

func NewViewHandler(auctions BiddingServiceInterface, listings ListingServiceInterface, applications ApplicationServiceInterface) *ViewHandler {
	return &ViewHandler{auctions: auctions, listings: listings, applications: applications}
}

func render(c *gin.Context, status int, name string, data any) {
	p := helpers.PrincipalFrom(c)
	utils.JSONResponse(c, status, View{
		Name:      name,
		Path:      c.Request.URL.Path,
		Principal: p,
		Nav:       policy.NavFor(p),
		Data:      data,
	}, name)
}

// Static renders a view that carries no data
func (h *ViewHandler) Static(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, name, nil)
	}
}

// LoginView renders the sign-in form, keeping the path to return to
func (h *ViewHandler) LoginView(c *gin.Context) {
	var data gin.H
	if from := c.Query("from"); from != "" {
		data = gin.H{"from": from}
	}
	render(c, http.StatusOK, "login", data)
}

// AuctionsView renders the auction listing at / and /auctions
func (h *ViewHandler) AuctionsView(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		quotes, err := h.auctions.ListAuctions()
		if err != nil {
			helpers.RespondError(c, "AuctionsView", "error listing auctions", err, nil)
			return
		}
		render(c, http.StatusOK, name, quotes)
	}
}

// ArtworkView renders /artwork/:id with its bidding state
func (h *ViewHandler) ArtworkView(c *gin.Context) {
	id := c.Param("id")
	quote, err := h.auctions.GetAuction(id)
	if errors.Is(err, marketerrors.ErrAuctionNotFound) {
		render(c, http.StatusNotFound, "not-found", nil)
		return
	}
	if err != nil {
		helpers.RespondError(c, "ArtworkView", "error retrieving auction", err, map[string]any{"auction_id": id})
		return
	}
	render(c, http.StatusOK, "artwork", quote)
}

// ProfileView renders /profile with the user's seller applications
func (h *ViewHandler) ProfileView(c *gin.Context) {
	h.applicationsView(c, "profile")
}

// SellerApplicationView renders /seller-application
func (h *ViewHandler) SellerApplicationView(c *gin.Context) {
	h.applicationsView(c, "seller-application")
}

func (h *ViewHandler) applicationsView(c *gin.Context, name string) {
	p := helpers.PrincipalFrom(c)
	apps, err := h.applications.ListByUser(p.ID)
	if err != nil {
		helpers.RespondError(c, "ApplicationsView", "error listing applications", err, map[string]any{"user_id": p.ID})
		return
	}
	render(c, http.StatusOK, name, gin.H{"applications": apps})
}

// SellerDashboardView renders /seller/dashboard
func (h *ViewHandler) SellerDashboardView(c *gin.Context) {
	p := helpers.PrincipalFrom(c)
	listings, err := h.listings.ListBySeller(p.ID)
	if err != nil {
		helpers.RespondError(c, "SellerDashboardView", "error listing listings", err, map[string]any{"seller_id": p.ID})
		return
	}
	render(c, http.StatusOK, "seller-dashboard", gin.H{"listings": listings})
}

// EditListingView renders /seller/listings/:listing_id/edit. Once the edit
// window has passed only the editing-closed view is shown.
func (h *ViewHandler) EditListingView(c *gin.Context) {
	listingID := c.Param("listing_id")
	p := helpers.PrincipalFrom(c)
	view, err := h.listings.EditView(listingID, p.ID)
	if errors.Is(err, marketerrors.ErrListingNotFound) {
		render(c, http.StatusNotFound, "not-found", nil)
		return
	}
	if err != nil {
		helpers.RespondError(c, "EditListingView", "error preparing edit view", err, map[string]any{"listing_id": listingID})
		return
	}
	render(c, http.StatusOK, view.State, view)
}

// AdminDashboardView renders /admin/dashboard with the review queues
func (h *ViewHandler) AdminDashboardView(c *gin.Context) {
	apps, err := h.applications.List(model.ApplicationPending)
	if err != nil {
		helpers.RespondError(c, "AdminDashboardView", "error listing applications", err, nil)
		return
	}
	listings, err := h.listings.ListByStatus(model.ListingPending)
	if err != nil {
		helpers.RespondError(c, "AdminDashboardView", "error listing listings", err, nil)
		return
	}
	render(c, http.StatusOK, "admin-dashboard", gin.H{
		"pending_applications": len(apps),
		"pending_listings":     len(listings),
	})
}

// AdminApplicationsView renders /admin/applications
func (h *ViewHandler) AdminApplicationsView(c *gin.Context) {
	apps, err := h.applications.List(model.ApplicationStatus(c.Query("status")))
	if err != nil {
		helpers.RespondError(c, "AdminApplicationsView", "error listing applications", err, nil)
		return
	}
	render(c, http.StatusOK, "admin-applications", gin.H{"applications": apps})
}

// AdminListingsView renders /admin/listings
func (h *ViewHandler) AdminListingsView(c *gin.Context) {
	listings, err := h.listings.ListByStatus(model.ListingStatus(c.Query("status")))
	if err != nil {
		helpers.RespondError(c, "AdminListingsView", "error listing listings", err, nil)
		return
	}
	render(c, http.StatusOK, "admin-listings", gin.H{"listings": listings})
}

// NotFoundView renders the not-found view for any unmatched path
func (h *ViewHandler) NotFoundView(c *gin.Context) {
	render(c, http.StatusNotFound, "not-found", nil)
}
