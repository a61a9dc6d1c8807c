package handler

import (
	"net/http"

	application "art-market/internal/applicationService"
	listing "art-market/internal/listingService"
	model "art-market/internal/models"
	"art-market/services/market/helpers"
	"art-market/utils"

	"github.com/gin-gonic/gin"
)

type ListingServiceInterface interface {
	Create(sellerID string, d listing.Draft) (model.Listing, error)
	ListBySeller(sellerID string) ([]model.Listing, error)
	ListByStatus(status model.ListingStatus) ([]model.Listing, error)
	EditView(id, sellerID string) (listing.EditView, error)
	Update(id, sellerID string, d listing.Draft) (model.Listing, error)
	Approve(id string) (model.Listing, model.Auction, error)
	Reject(id string) (model.Listing, error)
}

type ApplicationServiceInterface interface {
	Submit(userID string, f application.Form) (model.SellerApplication, error)
	List(status model.ApplicationStatus) ([]model.SellerApplication, error)
	ListByUser(userID string) ([]model.SellerApplication, error)
	Approve(id string) (model.SellerApplication, error)
	Reject(id string) (model.SellerApplication, error)
}

type SellerHandler struct {
	listings     ListingServiceInterface
	applications ApplicationServiceInterface
}

func NewSellerHandler(listings ListingServiceInterface, applications ApplicationServiceInterface) *SellerHandler {
	return &SellerHandler{listings: listings, applications: applications}
}

// CreateListingHandler handles POST /api/seller/listings
func (h *SellerHandler) CreateListingHandler(c *gin.Context) {
	var req helpers.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	p := helpers.PrincipalFrom(c)
	l, err := h.listings.Create(p.ID, req.Draft())
	if err != nil {
		helpers.RespondError(c, "CreateListingHandler", "failed to create listing", err, map[string]any{"seller_id": p.ID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, l, "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"listing_id": l.ID,
		"seller_id":  p.ID,
	})
}

// ListListingsHandler handles GET /api/seller/listings
func (h *SellerHandler) ListListingsHandler(c *gin.Context) {
	p := helpers.PrincipalFrom(c)
	listings, err := h.listings.ListBySeller(p.ID)
	if err != nil {
		helpers.RespondError(c, "ListListingsHandler", "error listing listings", err, map[string]any{"seller_id": p.ID})
		return
	}
	if listings == nil {
		listings = []model.Listing{}
	}

	utils.JSONResponse(c, http.StatusOK, listings, "listings retrieved successfully")
}

// UpdateListingHandler handles PUT /api/seller/listings/:listing_id
func (h *SellerHandler) UpdateListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	var req helpers.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateListingHandler", err)
		return
	}

	p := helpers.PrincipalFrom(c)
	l, err := h.listings.Update(listingID, p.ID, req.Draft())
	if err != nil {
		helpers.RespondError(c, "UpdateListingHandler", "failed to update listing", err, map[string]any{
			"listing_id": listingID,
			"seller_id":  p.ID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, l, "listing updated successfully")
	helpers.LogSuccess("UpdateListingHandler", "listing updated successfully", map[string]any{"listing_id": l.ID})
}

// SubmitApplicationHandler handles POST /api/seller/applications
func (h *SellerHandler) SubmitApplicationHandler(c *gin.Context) {
	var req helpers.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitApplicationHandler", err)
		return
	}

	p := helpers.PrincipalFrom(c)
	app, err := h.applications.Submit(p.ID, req.Form())
	if err != nil {
		helpers.RespondError(c, "SubmitApplicationHandler", "failed to submit application", err, map[string]any{"user_id": p.ID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, app, "application submitted successfully")
	helpers.LogSuccess("SubmitApplicationHandler", "application submitted successfully", map[string]any{
		"application_id": app.ID,
		"user_id":        p.ID,
	})
}
