package model

// MinPasswordLen is the minimum length of a plaintext password before hashing.
const MinPasswordLen = 8

// RefreshToken is the single refresh token a user may hold. The value is an
// opaque signed token payload. Issuing a new token overwrites the previous
// one, which is what gives refresh tokens their single-use semantics: the
// old value simply stops being the stored one.
type RefreshToken struct {
	Value string
}

// User is an application account. Email is the natural identifier and must
// be unique across all users. Password holds the bcrypt digest, never the
// plaintext. Token is nil until the user logs in.
type User struct {
	Name     string
	Email    string
	Password string
	IsAdmin  bool
	Token    *RefreshToken
}
