package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	application "art-market/internal/applicationService"
	bidding "art-market/internal/biddingService"
	listing "art-market/internal/listingService"
	"art-market/internal/repository"
	"art-market/internal/seed"
	"art-market/internal/server"
	"art-market/internal/session"
	"art-market/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Clock is a settable time source shared by every service under test
type Clock struct {
	now time.Time
}

func (c *Clock) Now() time.Time          { return c.now }
func (c *Clock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// TestApp is a seeded router plus the services behind it
type TestApp struct {
	Router   *gin.Engine
	Clock    *Clock
	Services server.Services
}

// SetupTestApp initializes the router over cookie sessions and seeded
// in-memory repositories for integration testing.
func SetupTestApp(t *testing.T, fallback bool) *TestApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := &Clock{now: time.Date(2025, 3, 28, 10, 0, 0, 0, time.UTC)}
	repo := repository.NewMemoryRepo()
	auctions := bidding.NewBiddingService(repo).WithClock(clock.Now)
	svc := server.Services{
		Bidding:      auctions,
		Listings:     listing.NewListingService(repo, auctions).WithClock(clock.Now),
		Applications: application.NewApplicationService(repo).WithClock(clock.Now),
	}
	require.NoError(t, seed.Run(seed.Services{
		Bidding:      svc.Bidding,
		Listings:     svc.Listings,
		Applications: svc.Applications,
	}, clock.Now()))

	creds, err := session.DemoCredentials()
	require.NoError(t, err)

	router := server.SetupRouter(server.CookieSessions{
		Codec:   storage.CookieCodec{Name: "user", Secret: []byte("integration-secret"), TTL: time.Hour},
		Options: session.Options{Credentials: creds, DemoFallback: fallback, Now: clock.Now},
	}, svc)

	return &TestApp{Router: router, Clock: clock, Services: svc}
}

// Client carries the session cookie between requests like a browser would
type Client struct {
	app     *TestApp
	cookies map[string]*http.Cookie
}

func (a *TestApp) NewClient() *Client {
	return &Client{app: a, cookies: map[string]*http.Cookie{}}
}

// Do executes an HTTP request and returns the response recorder.
func (c *Client) Do(t *testing.T, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	c.app.Router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(c.cookies, ck.Name)
			continue
		}
		c.cookies[ck.Name] = ck
	}
	return w
}

// DoAndParse executes a request and decodes the JSON envelope
func (c *Client) DoAndParse(t *testing.T, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	w := c.Do(t, method, url, body)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	}
	return resp, w
}

// Login signs the client in and fails the test if it is refused
func (c *Client) Login(t *testing.T, identifier, password string) map[string]any {
	t.Helper()
	resp, w := c.DoAndParse(t, http.MethodPost, "/api/session/login", map[string]string{
		"identifier": identifier,
		"password":   password,
	})
	require.Equal(t, http.StatusOK, w.Code, "login %s: %v", identifier, resp)
	return resp
}
