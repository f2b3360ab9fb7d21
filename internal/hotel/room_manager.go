package hotel

import (
	"fmt"
	"sort"

	"github.com/iliyamo/hotel-california/internal/model"
)

// RoomManager is the aggregate over all rooms. It is constructed from a full
// repository snapshot at the start of a unit of work and holds the rooms in
// a map keyed by room number. Nothing is cached between transactions.
type RoomManager struct {
	rooms map[int]model.Room
}

// NewRoomManager builds the aggregate from a snapshot of all rooms.
func NewRoomManager(rooms []model.Room) *RoomManager {
	m := &RoomManager{rooms: make(map[int]model.Room, len(rooms))}
	for _, r := range rooms {
		m.rooms[r.Number] = r
	}
	return m
}

// Create validates uniqueness of the room number and the construction
// invariants, then registers the new room in the snapshot. The caller is
// responsible for persisting it.
func (m *RoomManager) Create(number, capacity int, price float64) (model.Room, error) {
	if _, ok := m.rooms[number]; ok {
		return model.Room{}, fmt.Errorf("%w: %d", ErrRoomExists, number)
	}
	room, err := model.NewRoom(number, capacity, price)
	if err != nil {
		return model.Room{}, err
	}
	m.rooms[number] = room
	return room, nil
}

// GetByNumber returns the room with the given number.
func (m *RoomManager) GetByNumber(number int) (model.Room, error) {
	room, ok := m.rooms[number]
	if !ok {
		return model.Room{}, fmt.Errorf("%w: %d", ErrRoomNotFound, number)
	}
	return room, nil
}

// Find returns the rooms with exactly the requested capacity that are free
// for the candidate date range, sorted by room number for determinism.
func (m *RoomManager) Find(dates [2]model.BookingDate, capacity int) []model.Room {
	var res []model.Room
	for _, room := range m.rooms {
		if room.Capacity != capacity {
			continue
		}
		if IsFree(dates, room.BookingDates()) {
			res = append(res, room)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Number < res[j].Number })
	return res
}

// Check is the pre-booking guard: it looks the room up and verifies the
// candidate range against its existing bookings.
func (m *RoomManager) Check(number int, dates [2]model.BookingDate) (model.Room, error) {
	room, err := m.GetByNumber(number)
	if err != nil {
		return model.Room{}, err
	}
	if !IsFree(dates, room.BookingDates()) {
		return model.Room{}, fmt.Errorf("%w: room %d", ErrRoomNonFree, number)
	}
	return room, nil
}

// All returns every room in the snapshot sorted by number.
func (m *RoomManager) All() []model.Room {
	res := make([]model.Room, 0, len(m.rooms))
	for _, room := range m.rooms {
		res = append(res, room)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Number < res[j].Number })
	return res
}
