package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	token, err := GenerateAdminToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "admin", claims.Subject)
}

func TestParseAdminToken_Garbage(t *testing.T) {
	_, err := ParseAdminToken("not.a.token")
	assert.Error(t, err)
}
