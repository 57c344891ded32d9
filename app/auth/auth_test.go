package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestSecretAuthorizer(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	authorizer := NewSecretAuthorizer(string(hash), "admin")

	t.Run("accepts the shared credential", func(t *testing.T) {
		decision := authorizer.Authorize("hunter2")
		assert.Equal(t, Decision{Valid: true, Admin: true, Name: "admin"}, decision)
	})

	t.Run("rejects a wrong credential", func(t *testing.T) {
		assert.Equal(t, Decision{}, authorizer.Authorize("hunter3"))
	})

	t.Run("rejects an empty credential", func(t *testing.T) {
		assert.Equal(t, Decision{}, authorizer.Authorize(""))
	})
}

func TestSecretAuthorizerEmptyHash(t *testing.T) {
	// Without a configured hash every credential is denied, including
	// the empty string bcrypt would otherwise happily compare.
	authorizer := NewSecretAuthorizer("", "admin")
	assert.Equal(t, Decision{}, authorizer.Authorize("anything"))
	assert.Equal(t, Decision{}, authorizer.Authorize(""))
}

func TestStatic(t *testing.T) {
	fake := Static{Decision: Decision{Valid: true, Name: "visitor"}}
	decision := fake.Authorize("ignored")
	assert.True(t, decision.Valid)
	assert.False(t, decision.Admin)
	assert.Equal(t, "visitor", decision.Name)
}
