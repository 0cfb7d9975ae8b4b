package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword_SetAndMatches(t *testing.T) {
	var p password

	require.NoError(t, p.Set("correct horse battery staple"))
	require.NotEmpty(t, p.Hash)

	match, err := p.Matches("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, match)

	match, err = p.Matches("wrong password")
	require.NoError(t, err)
	assert.False(t, match)
}

func TestPassword_HashIsNotPlaintext(t *testing.T) {
	var p password

	require.NoError(t, p.Set("s3cret-passw0rd"))

	assert.NotContains(t, string(p.Hash), "s3cret-passw0rd")
}
