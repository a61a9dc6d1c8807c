package utils

import (
	"github.com/google/uuid"
)

// principalNamespace scopes name-based principal IDs
var principalNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("art-market/principals"))

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// NameID returns a stable identifier derived from name. Equal names always
// produce equal IDs.
func NameID(name string) string {
	return uuid.NewSHA1(principalNamespace, []byte(name)).String()
}
