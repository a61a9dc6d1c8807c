package session

import (
	"sync"

	"art-market/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// Credential is a demo account matched by exact username-or-email and secret
type Credential struct {
	Username   string
	Email      string
	Name       string
	Role       models.Role
	SecretHash []byte
}

// Matches reports whether identifier and secret both match c exactly
func (c Credential) Matches(identifier, secret string) bool {
	if identifier != c.Username && identifier != c.Email {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.SecretHash, []byte(secret)) == nil
}

// NewCredential hashes secret for a demo account
func NewCredential(username, email, name string, role models.Role, secret string) (Credential, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return Credential{}, err
	}
	return Credential{
		Username:   username,
		Email:      email,
		Name:       name,
		Role:       role,
		SecretHash: hash,
	}, nil
}

var demoCredentials = sync.OnceValues(func() ([]Credential, error) {
	fixtures := []struct {
		username, email, name, secret string
		role                          models.Role
	}{
		{"admin", "admin@example.com", "Admin User", "admin123", models.RoleAdmin},
		{"seller", "seller@example.com", "Seller User", "seller123", models.RoleSeller},
		{"customer", "customer@example.com", "Customer User", "customer123", models.RoleCustomer},
	}

	out := make([]Credential, 0, len(fixtures))
	for _, f := range fixtures {
		c, err := NewCredential(f.username, f.email, f.name, f.role, f.secret)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
})

// DemoCredentials returns the fixed demo accounts (admin, seller, customer)
func DemoCredentials() ([]Credential, error) {
	return demoCredentials()
}
