package helpers

import (
	"context"
	"sync"

	"art-market/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	sessionKey    = "market.session"
	navigationKey = "market.navigation"
)

// SessionStore is the part of the session store handlers use
type SessionStore interface {
	Session() models.Session
	Login(ctx context.Context, identifier, secret string) (models.Principal, error)
	Signup(ctx context.Context, username, email, secret, name string) (models.Principal, error)
	Logout(ctx context.Context)
}

// Navigation records where the session sent the client during a request.
// The last navigation wins.
type Navigation struct {
	mu     sync.Mutex
	target string
}

func (n *Navigation) Navigate(path string) {
	n.mu.Lock()
	n.target = path
	n.mu.Unlock()
}

// Reset drops any navigation recorded so far
func (n *Navigation) Reset() {
	n.mu.Lock()
	n.target = ""
	n.mu.Unlock()
}

// Target returns the last navigation, or "" if none happened
func (n *Navigation) Target() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.target
}

// SetSession binds the request's session store and navigation recorder
func SetSession(c *gin.Context, store SessionStore, nav *Navigation) {
	c.Set(sessionKey, store)
	c.Set(navigationKey, nav)
}

// SessionFrom returns the store bound to the request
func SessionFrom(c *gin.Context) (SessionStore, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	store, ok := v.(SessionStore)
	return store, ok
}

// PrincipalFrom returns the active principal of the request, if any
func PrincipalFrom(c *gin.Context) *models.Principal {
	store, ok := SessionFrom(c)
	if !ok {
		return nil
	}
	return store.Session().Principal
}

// NavigationFrom returns the navigation target recorded for the request
func NavigationFrom(c *gin.Context) string {
	v, ok := c.Get(navigationKey)
	if !ok {
		return ""
	}
	nav, ok := v.(*Navigation)
	if !ok {
		return ""
	}
	return nav.Target()
}

// DisplayName is how a principal appears next to their bids and messages
func DisplayName(p *models.Principal) string {
	if p == nil {
		return ""
	}
	if p.Name != "" {
		return p.Name
	}
	return p.Username
}
