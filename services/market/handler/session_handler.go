package handler

import (
	"fmt"
	"net/http"

	"art-market/internal/marketerrors"
	"art-market/services/market/helpers"
	"art-market/utils"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

func sessionOrAbort(c *gin.Context, handlerName string) (helpers.SessionStore, bool) {
	store, ok := helpers.SessionFrom(c)
	if !ok {
		helpers.RespondError(c, handlerName, "no session bound to request", fmt.Errorf("handler: session middleware missing"), nil)
		return nil, false
	}
	return store, true
}

// GetSessionHandler handles GET /api/session
func (h *SessionHandler) GetSessionHandler(c *gin.Context) {
	store, ok := sessionOrAbort(c, "GetSessionHandler")
	if !ok {
		return
	}
	utils.JSONResponse(c, http.StatusOK, store.Session(), "session retrieved successfully")
}

// LoginHandler handles POST /api/session/login
func (h *SessionHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}
	store, ok := sessionOrAbort(c, "LoginHandler")
	if !ok {
		return
	}

	p, err := store.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		helpers.RespondError(c, "LoginHandler", "login failed", err, map[string]any{"identifier": req.Identifier})
		return
	}

	utils.JSONRedirect(c, http.StatusOK, p, "logged in successfully", helpers.NavigationFrom(c))
	helpers.LogSuccess("LoginHandler", "logged in successfully", map[string]any{
		"user_id": p.ID,
		"role":    string(p.Role),
	})
}

// SignupHandler handles POST /api/session/signup
func (h *SessionHandler) SignupHandler(c *gin.Context) {
	var req helpers.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SignupHandler", err)
		return
	}
	store, ok := sessionOrAbort(c, "SignupHandler")
	if !ok {
		return
	}

	p, err := store.Signup(c.Request.Context(), req.Username, req.Email, req.Password, req.Name)
	if err != nil {
		helpers.RespondError(c, "SignupHandler", "signup failed", err, map[string]any{"username": req.Username})
		return
	}

	utils.JSONRedirect(c, http.StatusCreated, p, "signed up successfully", helpers.NavigationFrom(c))
	helpers.LogSuccess("SignupHandler", "signed up successfully", map[string]any{"user_id": p.ID})
}

// LogoutHandler handles POST /api/session/logout
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	store, ok := sessionOrAbort(c, "LogoutHandler")
	if !ok {
		return
	}
	p := store.Session().Principal
	store.Logout(c.Request.Context())

	utils.JSONRedirect(c, http.StatusOK, nil, "logged out successfully", helpers.NavigationFrom(c))
	if p != nil {
		helpers.LogSuccess("LogoutHandler", "logged out successfully", map[string]any{"user_id": p.ID})
	}
}

// RequirePrincipal rejects API calls without an active principal. A session
// still being restored answers 503 so the client retries.
func RequirePrincipal(c *gin.Context) {
	store, ok := helpers.SessionFrom(c)
	if !ok {
		helpers.RespondError(c, "RequirePrincipal", "no session bound to request", fmt.Errorf("handler: session middleware missing"), nil)
		c.Abort()
		return
	}
	sess := store.Session()
	if sess.Loading {
		c.Header("Retry-After", "1")
		utils.JSONError(c, http.StatusServiceUnavailable, fmt.Errorf("session is loading"), "session is loading")
		c.Abort()
		return
	}
	if !sess.Authenticated() {
		helpers.RespondError(c, "RequirePrincipal", "rejected anonymous request", fmt.Errorf("%s %s: %w", c.Request.Method, c.Request.URL.Path, marketerrors.ErrUnauthenticated), nil)
		c.Abort()
		return
	}
	c.Next()
}

// RequireSeller lets SELLER and ADMIN principals through
func RequireSeller(c *gin.Context) {
	if p := helpers.PrincipalFrom(c); !p.IsSeller() {
		helpers.RespondError(c, "RequireSeller", "rejected non-seller", fmt.Errorf("%s %s: %w", c.Request.Method, c.Request.URL.Path, marketerrors.ErrForbidden), nil)
		c.Abort()
		return
	}
	c.Next()
}

// RequireAdmin lets only ADMIN principals through
func RequireAdmin(c *gin.Context) {
	if p := helpers.PrincipalFrom(c); !p.IsAdmin() {
		helpers.RespondError(c, "RequireAdmin", "rejected non-admin", fmt.Errorf("%s %s: %w", c.Request.Method, c.Request.URL.Path, marketerrors.ErrForbidden), nil)
		c.Abort()
		return
	}
	c.Next()
}
