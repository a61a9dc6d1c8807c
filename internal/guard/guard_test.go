package guard

import (
	"testing"

	"art-market/internal/models"
	"art-market/internal/policy"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	customer := &models.Principal{ID: "u1", Username: "c", Role: models.RoleCustomer}
	admin := &models.Principal{ID: "u2", Username: "a", Role: models.RoleAdmin}

	tests := []struct {
		name    string
		session models.Session
		path    string
		want    Decision
	}{
		{
			name:    "loading_blocks_everything",
			session: models.Session{Loading: true, Principal: customer},
			path:    "/profile",
			want:    Decision{State: Loading},
		},
		{
			name:    "loading_public",
			session: models.Session{Loading: true},
			path:    "/",
			want:    Decision{State: Loading},
		},
		{
			name:    "anonymous_protected",
			session: models.Session{},
			path:    "/profile",
			want:    Decision{State: Redirecting, Redirect: policy.Redirect{Target: "/login", From: "/profile"}},
		},
		{
			name:    "customer_profile",
			session: models.Session{Principal: customer},
			path:    "/profile",
			want:    Decision{State: Rendering},
		},
		{
			name:    "customer_admin",
			session: models.Session{Principal: customer},
			path:    "/admin/users",
			want:    Decision{State: Redirecting, Redirect: policy.Redirect{Target: "/"}},
		},
		{
			name:    "admin_auctions",
			session: models.Session{Principal: admin},
			path:    "/auctions",
			want:    Decision{State: Redirecting, Redirect: policy.Redirect{Target: "/admin/dashboard"}},
		},
		{
			name:    "admin_dashboard",
			session: models.Session{Principal: admin},
			path:    "/admin/dashboard",
			want:    Decision{State: Rendering},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Evaluate(tc.session, tc.path))
		})
	}
}

// following the redirect target yields Rendering on the next evaluation
func TestEvaluate_RedirectSettles(t *testing.T) {
	t.Parallel()

	sessions := []models.Session{
		{},
		{Principal: &models.Principal{ID: "c", Role: models.RoleCustomer}},
		{Principal: &models.Principal{ID: "s", Role: models.RoleSeller}},
		{Principal: &models.Principal{ID: "a", Role: models.RoleAdmin}},
	}
	paths := []string{"/", "/profile", "/seller/dashboard", "/admin/users", "/auctions"}

	for _, s := range sessions {
		for _, p := range paths {
			d := Evaluate(s, p)
			if d.State != Redirecting {
				continue
			}
			next := Evaluate(s, d.Redirect.Target)
			require.Equal(t, Rendering, next.State, "session %+v path %s -> %s", s.Principal, p, d.Redirect.Target)
		}
	}
}
