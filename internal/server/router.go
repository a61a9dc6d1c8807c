package server

import (
	"errors"
	"net/http"
	"strings"

	application "art-market/internal/applicationService"
	bidding "art-market/internal/biddingService"
	listing "art-market/internal/listingService"
	"art-market/internal/metrics"
	handler "art-market/services/market/handler"
	"art-market/utils"

	"github.com/gin-gonic/gin"
)

var errNoRoute = errors.New("no such API route")

// Services are the domain services the router exposes
type Services struct {
	Bidding      *bidding.BiddingService
	Listings     *listing.ListingService
	Applications *application.ApplicationService
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(sessions SessionProvider, svc Services) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(MetricsMiddleware)

	router.GET("/healthz", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"ok": true}, "healthy")
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	sessionHandler := handler.NewSessionHandler()
	auctionHandler := handler.NewAuctionHandler(svc.Bidding)
	sellerHandler := handler.NewSellerHandler(svc.Listings, svc.Applications)
	adminHandler := handler.NewAdminHandler(svc.Listings, svc.Applications)
	viewHandler := handler.NewViewHandler(svc.Bidding, svc.Listings, svc.Applications)

	withSession := SessionMiddleware(sessions)

	api := router.Group("/api", withSession)
	{
		sess := api.Group("/session")
		sess.GET("", sessionHandler.GetSessionHandler)
		sess.POST("/login", sessionHandler.LoginHandler)
		sess.POST("/signup", sessionHandler.SignupHandler)
		sess.POST("/logout", sessionHandler.LogoutHandler)

		auctions := api.Group("/auctions")
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.GET("/:auction_id/countdown", auctionHandler.CountdownHandler)
		auctions.POST("/:auction_id/bids", handler.RequirePrincipal, auctionHandler.PlaceBidHandler)
		auctions.POST("/:auction_id/messages", handler.RequirePrincipal, auctionHandler.PostMessageHandler)

		seller := api.Group("/seller", handler.RequirePrincipal)
		seller.POST("/applications", sellerHandler.SubmitApplicationHandler)
		seller.POST("/listings", handler.RequireSeller, sellerHandler.CreateListingHandler)
		seller.GET("/listings", handler.RequireSeller, sellerHandler.ListListingsHandler)
		seller.PUT("/listings/:listing_id", handler.RequireSeller, sellerHandler.UpdateListingHandler)

		admin := api.Group("/admin", handler.RequirePrincipal, handler.RequireAdmin)
		admin.GET("/applications", adminHandler.ListApplicationsHandler)
		admin.POST("/applications/:application_id/approve", adminHandler.ApproveApplicationHandler)
		admin.POST("/applications/:application_id/reject", adminHandler.RejectApplicationHandler)
		admin.GET("/listings", adminHandler.ListListingsHandler)
		admin.POST("/listings/:listing_id/approve", adminHandler.ApproveListingHandler)
		admin.POST("/listings/:listing_id/reject", adminHandler.RejectListingHandler)
	}

	views := router.Group("", withSession, GuardMiddleware)
	{
		views.GET("/", viewHandler.AuctionsView("home"))
		views.GET("/login", viewHandler.LoginView)
		views.GET("/signup", viewHandler.Static("signup"))
		views.GET("/forgot-password", viewHandler.Static("forgot-password"))
		views.GET("/reset-password", viewHandler.Static("reset-password"))
		views.GET("/auctions", viewHandler.AuctionsView("auctions"))
		views.GET("/artwork/:id", viewHandler.ArtworkView)
		views.GET("/artists", viewHandler.Static("artists"))
		views.GET("/artist/:id", viewHandler.Static("artist"))
		views.GET("/about", viewHandler.Static("about"))

		views.GET("/profile", viewHandler.ProfileView)
		views.GET("/seller-application", viewHandler.SellerApplicationView)
		views.GET("/seller/dashboard", viewHandler.SellerDashboardView)
		views.GET("/seller/listings/new", viewHandler.Static("new-listing"))
		views.GET("/seller/listings/:listing_id/edit", viewHandler.EditListingView)

		views.GET("/admin/dashboard", viewHandler.AdminDashboardView)
		views.GET("/admin/applications", viewHandler.AdminApplicationsView)
		views.GET("/admin/listings", viewHandler.AdminListingsView)
	}

	// unmatched paths still pass the guard so protected subtrees redirect
	// before the not-found view renders
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			utils.JSONError(c, http.StatusNotFound, errNoRoute, "route not found")
			c.Abort()
		}
	}, withSession, GuardMiddleware, viewHandler.NotFoundView)

	return router
}
