// Package memory provides an in-memory implementation of the repository
// contracts. It backs the service-layer tests and mirrors the transactional
// behavior of the MySQL unit of work: a session stages its writes on copies
// of the maps and only Commit publishes them to the store.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/iliyamo/hotel-california/internal/model"
	"github.com/iliyamo/hotel-california/internal/repository"
)

// Store holds all aggregates in maps keyed by their natural identifiers.
type Store struct {
	mu     sync.Mutex
	users  map[string]model.User
	rooms  map[int]model.Room
	orders map[int]model.Order
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:  make(map[string]model.User),
		rooms:  make(map[int]model.Room),
		orders: make(map[int]model.Order),
	}
}

// Seed loads fixtures outside any transaction.
func (s *Store) Seed(users []model.User, rooms []model.Room, orders []model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		s.users[u.Email] = u
	}
	for _, r := range rooms {
		s.rooms[r.Number] = r
	}
	for _, o := range orders {
		s.orders[o.Identity] = o
	}
}

// Begin snapshots the store into a new session. Uncommitted sessions are
// simply dropped, which is the rollback.
func (s *Store) Begin(ctx context.Context) (repository.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := &session{
		store:  s,
		users:  make(map[string]model.User, len(s.users)),
		rooms:  make(map[int]model.Room, len(s.rooms)),
		orders: make(map[int]model.Order, len(s.orders)),
	}
	for k, v := range s.users {
		sess.users[k] = v
	}
	for k, v := range s.rooms {
		sess.rooms[k] = v
	}
	for k, v := range s.orders {
		sess.orders[k] = v
	}
	return sess, nil
}

type session struct {
	store     *Store
	users     map[string]model.User
	rooms     map[int]model.Room
	orders    map[int]model.Order
	committed bool
}

func (s *session) Users() repository.UserRepository   { return &userRepo{s: s} }
func (s *session) Rooms() repository.RoomRepository   { return &roomRepo{s: s} }
func (s *session) Orders() repository.OrderRepository { return &orderRepo{s: s} }

func (s *session) Commit() error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.users = s.users
	s.store.rooms = s.rooms
	s.store.orders = s.orders
	s.committed = true
	return nil
}

func (s *session) Rollback() error { return nil }

type userRepo struct {
	s *session
}

func (r *userRepo) All(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *userRepo) Save(ctx context.Context, u model.User) error {
	r.s.users[u.Email] = u
	return nil
}

func (r *userRepo) Delete(ctx context.Context, email string) error {
	delete(r.s.users, email)
	return nil
}

type roomRepo struct {
	s *session
}

// All rebuilds each room's order list from the order map, the same way the
// MySQL repository joins the orders table onto rooms.
func (r *roomRepo) All(ctx context.Context) ([]model.Room, error) {
	rooms := make([]model.Room, 0, len(r.s.rooms))
	for _, room := range r.s.rooms {
		room.Orders = nil
		for _, o := range sortedOrders(r.s.orders) {
			if o.RoomNumber == room.Number {
				room.Orders = append(room.Orders, o)
			}
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (r *roomRepo) Save(ctx context.Context, room model.Room) error {
	room.Orders = nil // order rows are owned by the order repository
	r.s.rooms[room.Number] = room
	return nil
}

type orderRepo struct {
	s *session
}

func (r *orderRepo) All(ctx context.Context) ([]model.Order, error) {
	return sortedOrders(r.s.orders), nil
}

func (r *orderRepo) Save(ctx context.Context, o model.Order) error {
	r.s.orders[o.Identity] = o
	return nil
}

func (r *orderRepo) Delete(ctx context.Context, identity int) error {
	delete(r.s.orders, identity)
	return nil
}

func sortedOrders(m map[int]model.Order) []model.Order {
	orders := make([]model.Order, 0, len(m))
	for _, o := range m {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].Identity < orders[j].Identity })
	return orders
}
