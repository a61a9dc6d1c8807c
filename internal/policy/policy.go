// Package policy decides which navigable paths a principal may see and
// where to send them otherwise. Everything here is pure.
package policy

import (
	"strings"

	"art-market/internal/models"
)

// RouteClass classifies a path by the privilege it requires
type RouteClass int

const (
	Public RouteClass = iota
	Protected
	AdminOnly
)

func (c RouteClass) String() string {
	switch c {
	case Protected:
		return "protected"
	case AdminOnly:
		return "admin-only"
	default:
		return "public"
	}
}

// Well-known navigation targets
const (
	RootPath      = "/"
	LoginPath     = "/login"
	AdminRootPath = "/admin/dashboard"
	SellerHome    = "/seller/dashboard"
	adminPrefix   = "/admin"
)

type route struct {
	pattern string
	class   RouteClass
}

// routes is the navigable route table. Patterns are exact, contain
// ":param" segments, or end in "/*" to match a whole subtree.
var routes = []route{
	{"/", Public},
	{"/login", Public},
	{"/signup", Public},
	{"/forgot-password", Public},
	{"/reset-password", Public},
	{"/auctions", Public},
	{"/artwork/:id", Public},
	{"/artists", Public},
	{"/artist/:id", Public},
	{"/about", Public},

	{"/profile", Protected},
	{"/seller-application", Protected},
	{"/seller/*", Protected},

	{"/admin/*", AdminOnly},
}

// authPaths stay reachable for admins so they can sign out and back in
var authPaths = map[string]struct{}{
	"/login":           {},
	"/forgot-password": {},
	"/reset-password":  {},
}

// Redirect is a navigation decided by the policy
type Redirect struct {
	Target string
	// From is the originally requested path, kept for post-login return
	From string
}

// Classify returns the class of path. Paths missing from the route table
// are public and render the not-found view.
func Classify(path string) RouteClass {
	path = normalize(path)
	for _, r := range routes {
		if match(r.pattern, path) {
			return r.class
		}
	}
	return Public
}

// Known reports whether path is in the route table
func Known(path string) bool {
	path = normalize(path)
	for _, r := range routes {
		if match(r.pattern, path) {
			return true
		}
	}
	return false
}

// InAdminGroup reports whether path belongs to the admin route group
func InAdminGroup(path string) bool {
	path = normalize(path)
	return path == adminPrefix || strings.HasPrefix(path, adminPrefix+"/")
}

// IsAuthPath reports whether path is a sign-in or password-reset view
func IsAuthPath(path string) bool {
	_, ok := authPaths[normalize(path)]
	return ok
}

// RedirectFor decides where principal must be sent when navigating to path.
// The boolean is false when the path may render as requested.
func RedirectFor(principal *models.Principal, path string) (Redirect, bool) {
	path = normalize(path)
	class := Classify(path)

	if principal == nil {
		if class == Protected || class == AdminOnly {
			return Redirect{Target: LoginPath, From: path}, true
		}
		return Redirect{}, false
	}

	if principal.Role == models.RoleAdmin {
		if InAdminGroup(path) || IsAuthPath(path) {
			return Redirect{}, false
		}
		return Redirect{Target: AdminRootPath}, true
	}

	if class == AdminOnly {
		return Redirect{Target: RootPath}, true
	}
	return Redirect{}, false
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return "/"
		}
	}
	return path
}

func match(pattern, path string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "/*"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	if !strings.Contains(pattern, ":") {
		return pattern == path
	}

	want := strings.Split(pattern, "/")
	got := strings.Split(path, "/")
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if strings.HasPrefix(want[i], ":") {
			if got[i] == "" {
				return false
			}
			continue
		}
		if want[i] != got[i] {
			return false
		}
	}
	return true
}
