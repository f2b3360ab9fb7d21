// Package hotel contains the booking core: the availability checker and the
// aggregate managers for users, rooms and orders. Managers are built fresh
// from a repository snapshot inside each unit of work and enforce the
// aggregate invariants (unique email, unique room number, non-overlapping
// stays, cancellation window). They never touch the database themselves.
package hotel

import (
	"errors"

	"github.com/iliyamo/hotel-california/internal/model"
)

// Authentication errors. Handlers translate these into HTTP 401 responses.
// They represent a caller who failed to prove who they are and are never
// retried automatically.
var (
	ErrNotFoundEmail   = errors.New("no user with this email")
	ErrInvalidPassword = errors.New("invalid password")
	ErrRefreshUsed     = errors.New("refresh token already used")
)

// Business-logic errors. Handlers translate these into HTTP 422 responses;
// they represent invalid requests, not transient failures.
var (
	ErrNonUniqEmail   = errors.New("email must be unique")
	ErrInvalidEmail   = errors.New("email address is not well formed")
	ErrWeakPassword   = errors.New("password must be at least 8 characters")
	ErrUserNotAdmin   = errors.New("user must be an administrator")
	ErrRoomExists     = errors.New("room number already exists")
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomNonFree    = errors.New("room is not free for the requested dates")
	ErrOrderNotFound  = errors.New("order not found")
	ErrOrderNotCancel = errors.New("orders can only be cancelled more than three days before arrival")
)

// IsAuthentication reports whether err belongs to the authentication family.
func IsAuthentication(err error) bool {
	return errors.Is(err, ErrNotFoundEmail) ||
		errors.Is(err, ErrInvalidPassword) ||
		errors.Is(err, ErrRefreshUsed)
}

// IsBusiness reports whether err belongs to the business-logic family,
// including the construction invariants of the domain entities.
func IsBusiness(err error) bool {
	for _, target := range []error{
		ErrNonUniqEmail,
		ErrInvalidEmail,
		ErrWeakPassword,
		ErrUserNotAdmin,
		ErrRoomExists,
		ErrRoomNotFound,
		ErrRoomNonFree,
		ErrOrderNotFound,
		ErrOrderNotCancel,
		model.ErrDatesNotValid,
		model.ErrBadRoomNumber,
		model.ErrBadRoomCapacity,
		model.ErrBadRoomPrice,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
