package utils

import "golang.org/x/crypto/bcrypt"

// Hasher wraps bcrypt with an explicit cost taken from the configuration.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher. A cost outside bcrypt's valid range falls back
// to the library default.
func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Hasher{cost: cost}
}

// Hash returns the bcrypt digest of a plaintext password.
func (h Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify safely compares a plaintext password against a stored digest.
func (h Hasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
