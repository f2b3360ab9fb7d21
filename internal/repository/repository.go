// Package repository defines the persistence contracts consumed by the
// service layer and their MySQL implementation. Each aggregate gets a typed
// repository instead of a generic field-match filter: the managers only ever
// load full snapshots and write single entities back, so the surface stays
// small.
package repository

import (
	"context"

	"github.com/iliyamo/hotel-california/internal/model"
)

// UserRepository persists users keyed by email. Save is an upsert: it is
// used both to create a user and to overwrite the stored refresh token.
type UserRepository interface {
	All(ctx context.Context) ([]model.User, error)
	Save(ctx context.Context, u model.User) error
	Delete(ctx context.Context, email string) error
}

// RoomRepository persists rooms. All returns each room with its attached
// orders loaded, since the availability checker needs the full booking
// history of a room.
type RoomRepository interface {
	All(ctx context.Context) ([]model.Room, error)
	Save(ctx context.Context, r model.Room) error
}

// OrderRepository persists orders keyed by identity.
type OrderRepository interface {
	All(ctx context.Context) ([]model.Order, error)
	Save(ctx context.Context, o model.Order) error
	Delete(ctx context.Context, identity int) error
}

// Session is one unit of work: a transactional scope owning a single
// database transaction for its lifetime. Rollback after a successful Commit
// is a no-op, so callers can unconditionally defer it and be sure no partial
// writes survive an early return.
type Session interface {
	Users() UserRepository
	Rooms() RoomRepository
	Orders() OrderRepository
	Commit() error
	Rollback() error
}

// UnitOfWork opens sessions. The service layer acquires exactly one session
// per operation.
type UnitOfWork interface {
	Begin(ctx context.Context) (Session, error)
}
