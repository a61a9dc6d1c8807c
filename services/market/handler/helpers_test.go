package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	model "art-market/internal/models"
	"art-market/services/market/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var (
	customer = &model.Principal{ID: "user-customer", Username: "customer", Name: "Customer User", Role: model.RoleCustomer}
	seller   = &model.Principal{ID: "user-seller", Username: "seller", Role: model.RoleSeller}
	admin    = &model.Principal{ID: "user-admin", Username: "admin", Name: "Admin User", Role: model.RoleAdmin}
)

// fixedSession is a SessionStore with a preset principal
type fixedSession struct {
	sess model.Session
}

func (f *fixedSession) Session() model.Session { return f.sess }

func (f *fixedSession) Login(context.Context, string, string) (model.Principal, error) {
	panic("not used")
}

func (f *fixedSession) Signup(context.Context, string, string, string, string) (model.Principal, error) {
	panic("not used")
}

func (f *fixedSession) Logout(context.Context) { f.sess.Principal = nil }

// as binds a fixed session for p (nil means anonymous)
func as(p *model.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		helpers.SetSession(c, &fixedSession{sess: model.Session{Principal: p}}, &helpers.Navigation{})
		c.Next()
	}
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") != "text/event-stream" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

// closeNotifyRecorder lets gin's streaming helpers run against a recorder
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newCloseNotifyRecorder() *closeNotifyRecorder {
	return &closeNotifyRecorder{httptest.NewRecorder(), make(chan bool, 1)}
}

func (r *closeNotifyRecorder) CloseNotify() <-chan bool { return r.closed }

var _ http.CloseNotifier = (*closeNotifyRecorder)(nil)
