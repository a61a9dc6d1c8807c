package integrationtests

import (
	"net/http"
	"testing"
	"time"

	"art-market/internal/policy"

	"github.com/stretchr/testify/require"
)

func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response has no data object: %v", resp)
	return d
}

// createApprovedAuction has the seller list an artwork and the admin approve
// it, returning the listing ID
func createApprovedAuction(t *testing.T, app *TestApp, price int64, duration time.Duration) string {
	t.Helper()

	seller := app.NewClient()
	seller.Login(t, "seller", "seller123")
	now := app.Clock.Now()
	resp, w := seller.DoAndParse(t, http.MethodPost, "/api/seller/listings", map[string]any{
		"title":          "Harbour at Dusk",
		"description":    "Oil on canvas",
		"starting_price": price,
		"start_time":     now,
		"end_time":       now.Add(duration),
	})
	require.Equal(t, http.StatusCreated, w.Code, "create listing: %v", resp)
	listingID := data(t, resp)["id"].(string)

	admin := app.NewClient()
	admin.Login(t, "admin", "admin123")
	resp, w = admin.DoAndParse(t, http.MethodPost, "/api/admin/listings/"+listingID+"/approve", nil)
	require.Equal(t, http.StatusOK, w.Code, "approve listing: %v", resp)

	return listingID
}

func TestLoginRedirects(t *testing.T) {
	app := SetupTestApp(t, false)

	admin := app.NewClient()
	resp := admin.Login(t, "admin", "admin123")
	require.Equal(t, policy.AdminRootPath, resp["redirect"])
	require.Equal(t, "ADMIN", data(t, resp)["role"])

	w := admin.Do(t, http.MethodGet, "/auctions", nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, policy.AdminRootPath, w.Header().Get("Location"))

	_, w = admin.DoAndParse(t, http.MethodGet, "/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, w = admin.DoAndParse(t, http.MethodPost, "/api/session/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = admin.Do(t, http.MethodGet, "/admin/dashboard", nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login?from=%2Fadmin%2Fdashboard", w.Header().Get("Location"))
}

func TestLoginRejectedWithoutFallback(t *testing.T) {
	app := SetupTestApp(t, false)
	client := app.NewClient()

	resp, w := client.DoAndParse(t, http.MethodPost, "/api/session/login", map[string]string{
		"identifier": "admin",
		"password":   "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "invalid credentials", resp["message"])

	w = client.Do(t, http.MethodGet, "/profile", nil)
	require.Equal(t, http.StatusFound, w.Code)
}

func TestFallbackLoginIsCustomer(t *testing.T) {
	app := SetupTestApp(t, true)
	client := app.NewClient()

	resp := client.Login(t, "ada@example.com", "anything")
	require.Equal(t, "CUSTOMER", data(t, resp)["role"])
	require.Nil(t, resp["redirect"])

	_, w := client.DoAndParse(t, http.MethodGet, "/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = client.Do(t, http.MethodGet, "/seller/dashboard", nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, policy.RootPath, w.Header().Get("Location"))
}

func TestTamperedCookieIsLoggedOut(t *testing.T) {
	app := SetupTestApp(t, false)
	client := app.NewClient()
	client.Login(t, "customer", "customer123")

	for name, ck := range client.cookies {
		ck.Value += "x"
		client.cookies[name] = ck
	}

	w := client.Do(t, http.MethodGet, "/profile", nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login?from=%2Fprofile", w.Header().Get("Location"))
}

func TestBidding(t *testing.T) {
	app := SetupTestApp(t, false)
	listingID := createApprovedAuction(t, app, 100, time.Hour)

	anonymous := app.NewClient()
	resp, w := anonymous.DoAndParse(t, http.MethodPost, "/api/auctions/"+listingID+"/bids", map[string]int64{"amount": 200})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "authentication required", resp["message"])

	resp, w = anonymous.DoAndParse(t, http.MethodGet, "/api/auctions/"+listingID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 105.0, data(t, resp)["minimum_next_bid"])

	customer := app.NewClient()
	customer.Login(t, "customer", "customer123")

	resp, w = customer.DoAndParse(t, http.MethodPost, "/api/auctions/"+listingID+"/bids", map[string]int64{"amount": 104})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "bid is below the minimum", resp["message"])

	resp, w = customer.DoAndParse(t, http.MethodPost, "/api/auctions/"+listingID+"/bids", map[string]int64{"amount": 105})
	require.Equal(t, http.StatusCreated, w.Code)
	bid := data(t, resp)
	require.Equal(t, 105.0, bid["amount"])
	require.Equal(t, "user-customer", bid["user_id"])
	require.Equal(t, 111.0, bid["minimum_next_bid"])

	resp, w = customer.DoAndParse(t, http.MethodPost, "/api/auctions/"+listingID+"/messages", map[string]string{"text": "lovely piece"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"], 1)

	app.Clock.Advance(time.Hour)

	resp, w = customer.DoAndParse(t, http.MethodPost, "/api/auctions/"+listingID+"/bids", map[string]int64{"amount": 500})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "auction has ended", resp["message"])

	resp, w = anonymous.DoAndParse(t, http.MethodGet, "/api/auctions/"+listingID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	quote := data(t, resp)
	require.Equal(t, false, quote["open"])
	require.Equal(t, "Auction ended", quote["countdown"])
	require.Equal(t, 105.0, quote["auction"].(map[string]any)["current_bid"])

	// rewinding the clock does not reopen a closed auction
	app.Clock.Advance(-2 * time.Hour)
	resp, w = customer.DoAndParse(t, http.MethodPost, "/api/auctions/"+listingID+"/bids", map[string]int64{"amount": 500})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "auction has ended", resp["message"])
}

func TestListingEditWindow(t *testing.T) {
	app := SetupTestApp(t, false)

	seller := app.NewClient()
	seller.Login(t, "seller", "seller123")
	now := app.Clock.Now()
	draft := map[string]any{
		"title":          "Quiet Field",
		"description":    "Pastel on paper",
		"starting_price": 300,
		"start_time":     now.Add(48 * time.Hour),
		"end_time":       now.Add(96 * time.Hour),
	}
	resp, w := seller.DoAndParse(t, http.MethodPost, "/api/seller/listings", draft)
	require.Equal(t, http.StatusCreated, w.Code)
	listingID := data(t, resp)["id"].(string)
	editPath := "/seller/listings/" + listingID + "/edit"

	resp, w = seller.DoAndParse(t, http.MethodGet, editPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "editable", data(t, resp)["view"])

	app.Clock.Advance(24 * time.Hour)
	draft["title"] = "Quiet Field II"
	resp, w = seller.DoAndParse(t, http.MethodPut, "/api/seller/listings/"+listingID, draft)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Quiet Field II", data(t, resp)["title"])

	app.Clock.Advance(time.Second)
	resp, w = seller.DoAndParse(t, http.MethodGet, editPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "editing-closed", data(t, resp)["view"])

	resp, w = seller.DoAndParse(t, http.MethodPut, "/api/seller/listings/"+listingID, draft)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "editing is closed for this listing", resp["message"])

	other := app.NewClient()
	other.Login(t, "admin", "admin123")
	resp, w = other.DoAndParse(t, http.MethodPut, "/api/seller/listings/"+listingID, draft)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "listing belongs to another seller", resp["message"])
}

func TestSellerApplicationReview(t *testing.T) {
	app := SetupTestApp(t, true)

	applicant := app.NewClient()
	applicant.Login(t, "ada@example.com", "pw")
	form := map[string]string{
		"full_name": "Ada Painter",
		"email":     "ada@example.com",
		"phone":     "555-0100",
		"address":   "1 Studio Lane",
		"city":      "Portland",
		"state":     "OR",
		"zip_code":  "97201",
	}
	resp, w := applicant.DoAndParse(t, http.MethodPost, "/api/seller/applications", form)
	require.Equal(t, http.StatusCreated, w.Code)
	appID := data(t, resp)["id"].(string)

	_, w = applicant.DoAndParse(t, http.MethodPost, "/api/seller/applications", form)
	require.Equal(t, http.StatusBadRequest, w.Code)

	_, w = applicant.DoAndParse(t, http.MethodPost, "/api/admin/applications/"+appID+"/approve", nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	admin := app.NewClient()
	admin.Login(t, "admin", "admin123")

	resp, w = admin.DoAndParse(t, http.MethodGet, "/api/admin/applications?status=pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"], 2)

	resp, w = admin.DoAndParse(t, http.MethodPost, "/api/admin/applications/"+appID+"/approve", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "approved", data(t, resp)["status"])

	_, w = admin.DoAndParse(t, http.MethodPost, "/api/admin/applications/"+appID+"/reject", nil)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestSeededStorefront(t *testing.T) {
	app := SetupTestApp(t, false)
	client := app.NewClient()

	resp, w := client.DoAndParse(t, http.MethodGet, "/api/auctions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp["data"], 2)

	resp, w = client.DoAndParse(t, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "home", data(t, resp)["view"])

	_, w = client.DoAndParse(t, http.MethodGet, "/artwork/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
