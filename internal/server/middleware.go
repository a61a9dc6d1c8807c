package server

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"art-market/internal/guard"
	"art-market/internal/metrics"
	"art-market/internal/policy"
	"art-market/services/market/helpers"
	"art-market/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// MetricsMiddleware records request latency by matched route
func MetricsMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	metrics.RequestLatency.
		WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
		Observe(time.Since(start).Seconds())
}

// SessionMiddleware binds the request's session store
func SessionMiddleware(provider SessionProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		nav := &helpers.Navigation{}
		helpers.SetSession(c, provider.For(c, nav), nav)
		c.Next()
	}
}

// GuardMiddleware runs the route guard for the requested view on every
// request, so each navigation is judged against the current session
func GuardMiddleware(c *gin.Context) {
	store, ok := helpers.SessionFrom(c)
	if !ok {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	path := c.Request.URL.Path
	d := guard.Evaluate(store.Session(), path)
	switch d.State {
	case guard.Loading:
		c.Header("Retry-After", "1")
		utils.JSONResponse(c, http.StatusServiceUnavailable, gin.H{"view": "loading", "path": path}, "loading")
		c.Abort()
	case guard.Redirecting:
		metrics.GuardRedirectsTotal.WithLabelValues(d.Redirect.Target).Inc()
		c.Redirect(http.StatusFound, redirectURL(d))
		c.Abort()
	default:
		c.Next()
	}
}

func redirectURL(d guard.Decision) string {
	if d.Redirect.Target != policy.LoginPath || d.Redirect.From == "" {
		return d.Redirect.Target
	}
	return d.Redirect.Target + "?" + url.Values{"from": {d.Redirect.From}}.Encode()
}
