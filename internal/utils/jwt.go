package utils // token issuing and verification helpers

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RefreshAudience is the audience claim stamped into refresh tokens. Decoding
// with this audience is required on the refresh endpoint and rejected
// everywhere else, so a refresh token cannot be replayed as an access token.
const RefreshAudience = "/v1/auth/refresh"

// ErrTokenInvalid covers every verification failure: bad signature, expired
// token, wrong audience, malformed claims. Callers treat it as an
// authentication error and never retry.
var ErrTokenInvalid = errors.New("invalid or expired token")

// TokenIssuer signs and verifies HS256 JWTs. The issuer claim carries the
// application name and the subject carries the user's email. All settings
// come from the configuration at construction time; there is no package
// level state.
type TokenIssuer struct {
	secret     []byte
	appName    string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenIssuer builds an issuer. TTLs are given in minutes to match the
// configuration variables.
func NewTokenIssuer(secret, appName string, accessTTLMin, refreshTTLMin int) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		appName:    appName,
		accessTTL:  time.Duration(accessTTLMin) * time.Minute,
		refreshTTL: time.Duration(refreshTTLMin) * time.Minute,
	}
}

// AccessToken signs a short-lived token with iss, sub, iat and exp claims.
func (i *TokenIssuer) AccessToken(email string) (string, error) {
	return i.sign(email, i.accessTTL, "")
}

// RefreshToken signs a long-lived token that additionally carries the
// refresh audience claim.
func (i *TokenIssuer) RefreshToken(email string) (string, error) {
	return i.sign(email, i.refreshTTL, RefreshAudience)
}

func (i *TokenIssuer) sign(email string, ttl time.Duration, audience string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"iss": i.appName,
		"sub": email,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	if audience != "" {
		claims["aud"] = audience
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Decode verifies a token and returns its claims. When audience is non-empty
// the token must carry exactly that audience; when it is empty the token
// must carry none, which keeps refresh tokens off the access paths.
func (i *TokenIssuer) Decode(token, audience string) (jwt.MapClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, opts...)
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}
	if audience == "" {
		if aud, _ := claims.GetAudience(); len(aud) > 0 {
			return nil, fmt.Errorf("%w: refresh token used as access token", ErrTokenInvalid)
		}
	}
	return claims, nil
}

// Subject extracts the sub claim (the user's email) from decoded claims.
func Subject(claims jwt.MapClaims) (string, error) {
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrTokenInvalid
	}
	return sub, nil
}
