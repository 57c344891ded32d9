// Package auth is the authorization gate for write endpoints. The
// single mechanism is a shared admin credential presented as a bearer
// token and compared against a bcrypt hash from configuration.
package auth

import "golang.org/x/crypto/bcrypt"

// Decision is the outcome of assessing a credential. Verification never
// fails with an error; anything that cannot be verified is simply not
// Valid.
type Decision struct {
	Valid bool   `json:"valid"`
	Admin bool   `json:"admin"`
	Name  string `json:"name,omitempty"`
}

// Authorizer assesses an opaque credential string.
type Authorizer interface {
	Authorize(credential string) Decision
}

// SecretAuthorizer grants admin to callers presenting the shared admin
// credential. Only the bcrypt hash of the credential is held in memory.
type SecretAuthorizer struct {
	hash []byte
	name string
}

// NewSecretAuthorizer builds an authorizer from a bcrypt hash and the
// display name reported for the admin identity. An empty hash denies
// everything.
func NewSecretAuthorizer(bcryptHash, adminName string) *SecretAuthorizer {
	return &SecretAuthorizer{hash: []byte(bcryptHash), name: adminName}
}

func (a *SecretAuthorizer) Authorize(credential string) Decision {
	if credential == "" || len(a.hash) == 0 {
		return Decision{}
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(credential)); err != nil {
		return Decision{}
	}
	return Decision{Valid: true, Admin: true, Name: a.name}
}

// Static returns a fixed decision regardless of credential. It stands
// in for the real gate in tests.
type Static struct {
	Decision Decision
}

func (s Static) Authorize(string) Decision {
	return s.Decision
}

var _ Authorizer = (*SecretAuthorizer)(nil)
var _ Authorizer = Static{}
