package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssuer() *TokenIssuer {
	return NewTokenIssuer("test-secret", "hotel_california", 30, 4320)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	issuer := testIssuer()

	token, err := issuer.AccessToken("bob@example.com")
	require.NoError(t, err)

	claims, err := issuer.Decode(token, "")
	require.NoError(t, err)

	sub, err := Subject(claims)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", sub)

	iss, err := claims.GetIssuer()
	require.NoError(t, err)
	assert.Equal(t, "hotel_california", iss)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	iat, err := claims.GetIssuedAt()
	require.NoError(t, err)
	assert.Equal(t, 30*60.0, exp.Sub(iat.Time).Seconds())
}

func TestRefreshTokenCarriesAudience(t *testing.T) {
	issuer := testIssuer()

	token, err := issuer.RefreshToken("bob@example.com")
	require.NoError(t, err)

	claims, err := issuer.Decode(token, RefreshAudience)
	require.NoError(t, err)

	aud, err := claims.GetAudience()
	require.NoError(t, err)
	require.Len(t, aud, 1)
	assert.Equal(t, RefreshAudience, aud[0])
}

func TestRefreshTokenRejectedAsAccessToken(t *testing.T) {
	issuer := testIssuer()

	token, err := issuer.RefreshToken("bob@example.com")
	require.NoError(t, err)

	_, err = issuer.Decode(token, "")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAccessTokenRejectedOnRefreshPath(t *testing.T) {
	issuer := testIssuer()

	token, err := issuer.AccessToken("bob@example.com")
	require.NoError(t, err)

	_, err = issuer.Decode(token, RefreshAudience)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	token, err := testIssuer().AccessToken("bob@example.com")
	require.NoError(t, err)

	other := NewTokenIssuer("another-secret", "hotel_california", 30, 4320)
	_, err = other.Decode(token, "")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecodeRejectsExpired(t *testing.T) {
	expired := NewTokenIssuer("test-secret", "hotel_california", -1, -1)

	token, err := expired.AccessToken("bob@example.com")
	require.NoError(t, err)

	_, err = testIssuer().Decode(token, "")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := testIssuer().Decode("not.a.token", "")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
