package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasherRoundTrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("longenough")
	require.NoError(t, err)
	require.NotEqual(t, "longenough", digest)

	assert.True(t, h.Verify("longenough", digest))
	assert.False(t, h.Verify("wrongpassword", digest))
}

func TestHasherBadCostFallsBack(t *testing.T) {
	h := NewHasher(99)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
