package handler

import (
	"net/http"

	model "art-market/internal/models"
	"art-market/services/market/helpers"
	"art-market/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	listings     ListingServiceInterface
	applications ApplicationServiceInterface
}

func NewAdminHandler(listings ListingServiceInterface, applications ApplicationServiceInterface) *AdminHandler {
	return &AdminHandler{listings: listings, applications: applications}
}

// ListApplicationsHandler handles GET /api/admin/applications?status=
func (h *AdminHandler) ListApplicationsHandler(c *gin.Context) {
	status := model.ApplicationStatus(c.Query("status"))
	apps, err := h.applications.List(status)
	if err != nil {
		helpers.RespondError(c, "ListApplicationsHandler", "error listing applications", err, nil)
		return
	}
	if apps == nil {
		apps = []model.SellerApplication{}
	}

	utils.JSONResponse(c, http.StatusOK, apps, "applications retrieved successfully")
}

// ApproveApplicationHandler handles POST /api/admin/applications/:application_id/approve
func (h *AdminHandler) ApproveApplicationHandler(c *gin.Context) {
	h.reviewApplication(c, "ApproveApplicationHandler", h.applications.Approve)
}

// RejectApplicationHandler handles POST /api/admin/applications/:application_id/reject
func (h *AdminHandler) RejectApplicationHandler(c *gin.Context) {
	h.reviewApplication(c, "RejectApplicationHandler", h.applications.Reject)
}

func (h *AdminHandler) reviewApplication(c *gin.Context, handlerName string, review func(string) (model.SellerApplication, error)) {
	appID := c.Param("application_id")
	app, err := review(appID)
	if err != nil {
		helpers.RespondError(c, handlerName, "failed to review application", err, map[string]any{"application_id": appID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, app, "application "+string(app.Status))
	helpers.LogSuccess(handlerName, "application reviewed", map[string]any{
		"application_id": appID,
		"status":         string(app.Status),
		"reviewer_id":    helpers.PrincipalFrom(c).ID,
	})
}

// ListListingsHandler handles GET /api/admin/listings?status=
func (h *AdminHandler) ListListingsHandler(c *gin.Context) {
	status := model.ListingStatus(c.Query("status"))
	listings, err := h.listings.ListByStatus(status)
	if err != nil {
		helpers.RespondError(c, "AdminListListingsHandler", "error listing listings", err, nil)
		return
	}
	if listings == nil {
		listings = []model.Listing{}
	}

	utils.JSONResponse(c, http.StatusOK, listings, "listings retrieved successfully")
}

// ApproveListingHandler handles POST /api/admin/listings/:listing_id/approve
func (h *AdminHandler) ApproveListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	l, auction, err := h.listings.Approve(listingID)
	if err != nil {
		helpers.RespondError(c, "ApproveListingHandler", "failed to approve listing", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"listing": l, "auction": auction}, "listing approved")
	helpers.LogSuccess("ApproveListingHandler", "listing approved", map[string]any{
		"listing_id":  listingID,
		"ends_at":     auction.EndsAt,
		"reviewer_id": helpers.PrincipalFrom(c).ID,
	})
}

// RejectListingHandler handles POST /api/admin/listings/:listing_id/reject
func (h *AdminHandler) RejectListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	l, err := h.listings.Reject(listingID)
	if err != nil {
		helpers.RespondError(c, "RejectListingHandler", "failed to reject listing", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, l, "listing rejected")
	helpers.LogSuccess("RejectListingHandler", "listing rejected", map[string]any{"listing_id": listingID})
}
