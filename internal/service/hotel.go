// Package service is the application layer. Every exported method performs
// exactly one unit of work: open a session, build the aggregate manager from
// a full snapshot, run the domain operation, write the result back and
// commit. The deferred rollback discards everything whenever an error
// escapes before the commit.
package service

import (
	"context"
	"log"
	"time"

	"github.com/iliyamo/hotel-california/internal/hotel"
	"github.com/iliyamo/hotel-california/internal/model"
	"github.com/iliyamo/hotel-california/internal/queue"
	"github.com/iliyamo/hotel-california/internal/repository"
)

// Publisher sends booking events after a transaction committed. Publishing
// failures are logged, never surfaced: the booking itself already succeeded.
type Publisher interface {
	BookingConfirmed(ctx context.Context, ev queue.BookingConfirmedEvent) error
	BookingCancelled(ctx context.Context, ev queue.BookingCancelledEvent) error
}

// Hotel wires the unit of work and the manager collaborators together.
type Hotel struct {
	uow    repository.UnitOfWork
	tokens hotel.TokenSource
	hasher hotel.PasswordHasher
	events Publisher
	now    func() time.Time
}

// New builds the application service. events may be nil when no broker is
// configured.
func New(uow repository.UnitOfWork, tokens hotel.TokenSource, hasher hotel.PasswordHasher, events Publisher) *Hotel {
	return &Hotel{uow: uow, tokens: tokens, hasher: hasher, events: events, now: time.Now}
}

// SetNow overrides the clock. Tests of the cancellation window use it.
func (h *Hotel) SetNow(now func() time.Time) { h.now = now }

// AddUser creates a user. Fails when the email is taken, malformed, or the
// password is too short.
func (h *Hotel) AddUser(ctx context.Context, name, email, password string, isAdmin bool) error {
	sess, err := h.uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = sess.Rollback() }()

	users, err := sess.Users().All(ctx)
	if err != nil {
		return err
	}
	m := hotel.NewUserManager(users, h.tokens, h.hasher)
	u, err := m.Create(name, email, password, isAdmin)
	if err != nil {
		return err
	}
	if err := sess.Users().Save(ctx, u); err != nil {
		return err
	}
	return sess.Commit()
}

// Login verifies credentials, issues an access/refresh pair and stores the
// refresh token on the user, replacing whatever token was there before.
func (h *Hotel) Login(ctx context.Context, email, password string) (hotel.TokenPair, error) {
	sess, err := h.uow.Begin(ctx)
	if err != nil {
		return hotel.TokenPair{}, err
	}
	defer func() { _ = sess.Rollback() }()

	users, err := sess.Users().All(ctx)
	if err != nil {
		return hotel.TokenPair{}, err
	}
	m := hotel.NewUserManager(users, h.tokens, h.hasher)
	user, err := m.Login(email, password)
	if err != nil {
		return hotel.TokenPair{}, err
	}
	access, err := m.AccessToken(user.Email)
	if err != nil {
		return hotel.TokenPair{}, err
	}
	refresh, err := m.RefreshToken(user.Email)
	if err != nil {
		return hotel.TokenPair{}, err
	}
	user.Token = &model.RefreshToken{Value: refresh}
	if err := sess.Users().Save(ctx, user); err != nil {
		return hotel.TokenPair{}, err
	}
	if err := sess.Commit(); err != nil {
		return hotel.TokenPair{}, err
	}
	return hotel.TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh rotates the token pair of a user identified by a validated refresh
// token. The stored token is overwritten, so the pair can be refreshed once
// per issued token.
func (h *Hotel) Refresh(ctx context.Context, email string) (hotel.TokenPair, error) {
	sess, err := h.uow.Begin(ctx)
	if err != nil {
		return hotel.TokenPair{}, err
	}
	defer func() { _ = sess.Rollback() }()

	users, err := sess.Users().All(ctx)
	if err != nil {
		return hotel.TokenPair{}, err
	}
	m := hotel.NewUserManager(users, h.tokens, h.hasher)
	user, pair, err := m.Refresh(email)
	if err != nil {
		return hotel.TokenPair{}, err
	}
	if err := sess.Users().Save(ctx, user); err != nil {
		return hotel.TokenPair{}, err
	}
	if err := sess.Commit(); err != nil {
		return hotel.TokenPair{}, err
	}
	return pair, nil
}

// CheckAdmin verifies that the user exists and is an administrator.
func (h *Hotel) CheckAdmin(ctx context.Context, email string) error {
	sess, err := h.uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = sess.Rollback() }()

	users, err := sess.Users().All(ctx)
	if err != nil {
		return err
	}
	m := hotel.NewUserManager(users, h.tokens, h.hasher)
	_, err = m.CheckAdmin(email)
	return err
}

// AddRoom creates a room and returns its number.
func (h *Hotel) AddRoom(ctx context.Context, number, capacity int, price float64) (int, error) {
	sess, err := h.uow.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = sess.Rollback() }()

	rooms, err := sess.Rooms().All(ctx)
	if err != nil {
		return 0, err
	}
	m := hotel.NewRoomManager(rooms)
	room, err := m.Create(number, capacity, price)
	if err != nil {
		return 0, err
	}
	if err := sess.Rooms().Save(ctx, room); err != nil {
		return 0, err
	}
	if err := sess.Commit(); err != nil {
		return 0, err
	}
	return room.Number, nil
}

// Rooms lists every room sorted by number.
func (h *Hotel) Rooms(ctx context.Context) ([]model.Room, error) {
	sess, err := h.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = sess.Rollback() }()

	rooms, err := sess.Rooms().All(ctx)
	if err != nil {
		return nil, err
	}
	return hotel.NewRoomManager(rooms).All(), nil
}

// FindRooms returns the rooms matching the capacity that are free for the
// requested range.
func (h *Hotel) FindRooms(ctx context.Context, dates [2]model.BookingDate, capacity int) ([]model.Room, error) {
	sess, err := h.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = sess.Rollback() }()

	rooms, err := sess.Rooms().All(ctx)
	if err != nil {
		return nil, err
	}
	return hotel.NewRoomManager(rooms).Find(dates, capacity), nil
}

// RoomOrders returns the booking history of one room.
func (h *Hotel) RoomOrders(ctx context.Context, number int) ([]model.Order, error) {
	sess, err := h.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = sess.Rollback() }()

	rooms, err := sess.Rooms().All(ctx)
	if err != nil {
		return nil, err
	}
	room, err := hotel.NewRoomManager(rooms).GetByNumber(number)
	if err != nil {
		return nil, err
	}
	return room.Orders, nil
}

// BookRoom checks availability, creates the order under the next identity
// and attaches it to the room, all inside one transaction. On success the
// order identity is returned and a confirmation event is published best
// effort.
func (h *Hotel) BookRoom(ctx context.Context, number int, dates [2]model.BookingDate) (int, error) {
	sess, err := h.uow.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = sess.Rollback() }()

	rooms, err := sess.Rooms().All(ctx)
	if err != nil {
		return 0, err
	}
	room, err := hotel.NewRoomManager(rooms).Check(number, dates)
	if err != nil {
		return 0, err
	}

	orders, err := sess.Orders().All(ctx)
	if err != nil {
		return 0, err
	}
	order, err := hotel.NewOrderManager(orders).Create(dates[0], dates[1])
	if err != nil {
		return 0, err
	}
	order.RoomNumber = room.Number
	if err := sess.Orders().Save(ctx, order); err != nil {
		return 0, err
	}
	if err := sess.Commit(); err != nil {
		return 0, err
	}

	if h.events != nil {
		ev := queue.BookingConfirmedEvent{
			OrderID:     order.Identity,
			RoomNumber:  room.Number,
			Capacity:    room.Capacity,
			Price:       room.Price,
			Arrival:     order.Arrival().Date.Format(model.DateLayout),
			Departure:   order.Departure().Date.Format(model.DateLayout),
			ConfirmedAt: h.now().UTC().Format(time.RFC3339),
		}
		if err := h.events.BookingConfirmed(ctx, ev); err != nil {
			log.Printf("service: publish booking confirmed: %v", err)
		}
	}
	return order.Identity, nil
}

// Order returns one order by identity.
func (h *Hotel) Order(ctx context.Context, identity int) (model.Order, error) {
	sess, err := h.uow.Begin(ctx)
	if err != nil {
		return model.Order{}, err
	}
	defer func() { _ = sess.Rollback() }()

	orders, err := sess.Orders().All(ctx)
	if err != nil {
		return model.Order{}, err
	}
	return hotel.NewOrderManager(orders).GetByID(identity)
}

// CancelOrder deletes an order if its arrival is still more than three days
// away; otherwise it fails with ErrOrderNotCancel.
func (h *Hotel) CancelOrder(ctx context.Context, identity int) error {
	sess, err := h.uow.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = sess.Rollback() }()

	orders, err := sess.Orders().All(ctx)
	if err != nil {
		return err
	}
	m := hotel.NewOrderManager(orders)
	order, err := m.GetByID(identity)
	if err != nil {
		return err
	}
	if !m.CanCancel(order, h.now()) {
		return hotel.ErrOrderNotCancel
	}
	if err := sess.Orders().Delete(ctx, identity); err != nil {
		return err
	}
	m.Delete(identity)
	if err := sess.Commit(); err != nil {
		return err
	}

	if h.events != nil {
		ev := queue.BookingCancelledEvent{
			OrderID:     order.Identity,
			RoomNumber:  order.RoomNumber,
			Arrival:     order.Arrival().Date.Format(model.DateLayout),
			Departure:   order.Departure().Date.Format(model.DateLayout),
			CancelledAt: h.now().UTC().Format(time.RFC3339),
		}
		if err := h.events.BookingCancelled(ctx, ev); err != nil {
			log.Printf("service: publish booking cancelled: %v", err)
		}
	}
	return nil
}
