package hotel

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/iliyamo/hotel-california/internal/model"
)

// TokenSource issues signed tokens for a user. Implemented by utils.TokenIssuer.
type TokenSource interface {
	AccessToken(email string) (string, error)
	RefreshToken(email string) (string, error)
}

// PasswordHasher hashes plaintext passwords and verifies them against a
// stored digest. Implemented by utils.Hasher.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

// TokenPair is an access/refresh token pair returned on login and refresh.
type TokenPair struct {
	Access  string
	Refresh string
}

// UserManager is the aggregate over all users, keyed by normalized email.
// Hashing and token signing are delegated to collaborators so the manager
// stays pure validation logic.
type UserManager struct {
	users  map[string]model.User
	tokens TokenSource
	hasher PasswordHasher
}

// NewUserManager builds the aggregate from a snapshot of all users.
func NewUserManager(users []model.User, tokens TokenSource, hasher PasswordHasher) *UserManager {
	m := &UserManager{
		users:  make(map[string]model.User, len(users)),
		tokens: tokens,
		hasher: hasher,
	}
	for _, u := range users {
		m.users[u.Email] = u
	}
	return m
}

// NormalizeEmail lower-cases and trims an email address. Every lookup and
// insert goes through it so that uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create validates email uniqueness and form plus the pre-hash password
// length, hashes the password and registers the user in the snapshot. The
// caller persists the returned user.
func (m *UserManager) Create(name, email, password string, isAdmin bool) (model.User, error) {
	email = NormalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return model.User{}, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	if _, ok := m.users[email]; ok {
		return model.User{}, fmt.Errorf("%w: %s", ErrNonUniqEmail, email)
	}
	if len(password) < model.MinPasswordLen {
		return model.User{}, ErrWeakPassword
	}
	hash, err := m.hasher.Hash(password)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}
	u := model.User{Name: name, Email: email, Password: hash, IsAdmin: isAdmin}
	m.users[email] = u
	return u, nil
}

// GetByEmail returns the user with the given email.
func (m *UserManager) GetByEmail(email string) (model.User, error) {
	u, ok := m.users[NormalizeEmail(email)]
	if !ok {
		return model.User{}, fmt.Errorf("%w: %s", ErrNotFoundEmail, email)
	}
	return u, nil
}

// Login verifies the password against the stored digest.
func (m *UserManager) Login(email, password string) (model.User, error) {
	u, err := m.GetByEmail(email)
	if err != nil {
		return model.User{}, err
	}
	if !m.hasher.Verify(password, u.Password) {
		return model.User{}, fmt.Errorf("%w: %s", ErrInvalidPassword, u.Email)
	}
	return u, nil
}

// CheckAdmin reports whether the user is an administrator. A known
// non-admin user is an error, not a false return, so callers cannot
// accidentally ignore the check.
func (m *UserManager) CheckAdmin(email string) (bool, error) {
	u, err := m.GetByEmail(email)
	if err != nil {
		return false, err
	}
	if !u.IsAdmin {
		return false, fmt.Errorf("%w: %s", ErrUserNotAdmin, u.Email)
	}
	return true, nil
}

// AccessToken issues a short-lived access token for an existing user.
func (m *UserManager) AccessToken(email string) (string, error) {
	u, err := m.GetByEmail(email)
	if err != nil {
		return "", err
	}
	return m.tokens.AccessToken(u.Email)
}

// RefreshToken issues a refresh token for an existing user. The caller is
// responsible for storing it on the user record.
func (m *UserManager) RefreshToken(email string) (string, error) {
	u, err := m.GetByEmail(email)
	if err != nil {
		return "", err
	}
	return m.tokens.RefreshToken(u.Email)
}

// Refresh issues a new access/refresh pair. It fails when the user holds no
// stored refresh token: each refresh consumes the stored token, so a second
// use of an already-rotated token is rejected. The returned user carries the
// new refresh token and must be persisted by the caller, which is what
// invalidates the previous one.
func (m *UserManager) Refresh(email string) (model.User, TokenPair, error) {
	u, err := m.GetByEmail(email)
	if err != nil {
		return model.User{}, TokenPair{}, err
	}
	if u.Token == nil || u.Token.Value == "" {
		return model.User{}, TokenPair{}, fmt.Errorf("%w: %s", ErrRefreshUsed, u.Email)
	}
	access, err := m.tokens.AccessToken(u.Email)
	if err != nil {
		return model.User{}, TokenPair{}, err
	}
	refresh, err := m.tokens.RefreshToken(u.Email)
	if err != nil {
		return model.User{}, TokenPair{}, err
	}
	u.Token = &model.RefreshToken{Value: refresh}
	m.users[u.Email] = u
	return u, TokenPair{Access: access, Refresh: refresh}, nil
}
