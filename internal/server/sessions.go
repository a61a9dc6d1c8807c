package server

import (
	"art-market/internal/session"
	"art-market/internal/storage"
	"art-market/services/market/helpers"

	"github.com/gin-gonic/gin"
)

// SessionProvider hands each request the session store it acts on. The
// navigation recorder receives the store's side effects for that request.
type SessionProvider interface {
	For(c *gin.Context, nav *helpers.Navigation) *session.Store
}

// CookieSessions keeps one principal per client in a signed cookie. Each
// request restores its own store from the cookie before anything runs, so
// the restore navigation lands on that request's recorder.
type CookieSessions struct {
	Codec   storage.CookieCodec
	Options session.Options
}

func (p CookieSessions) For(c *gin.Context, nav *helpers.Navigation) *session.Store {
	store := session.NewStore(p.Codec.Bind(c.Writer, c.Request), nav, p.Options)
	store.Restore(c.Request.Context(), c.Request.URL.Path)
	return store
}

// SharedSessions serves one process-wide store backed by a single key.
// Requests see the loading state until the store has been restored.
type SharedSessions struct {
	Store *session.Store
}

func (p SharedSessions) For(_ *gin.Context, nav *helpers.Navigation) *session.Store {
	return p.Store.WithNavigator(nav)
}
