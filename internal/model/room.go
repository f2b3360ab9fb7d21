package model

import "errors"

var (
	ErrBadRoomNumber   = errors.New("room number must be positive")
	ErrBadRoomCapacity = errors.New("room capacity must be positive")
	ErrBadRoomPrice    = errors.New("room price must be positive")
)

// Room is a bookable hotel room. The number is the natural identifier and
// never changes after creation. A room exclusively owns its order list;
// orders do not exist apart from the room they are attached to.
type Room struct {
	Number   int
	Capacity int
	Price    float64
	Orders   []Order
}

// NewRoom validates the construction invariants and returns a room without
// any orders attached.
func NewRoom(number, capacity int, price float64) (Room, error) {
	if number <= 0 {
		return Room{}, ErrBadRoomNumber
	}
	if capacity <= 0 {
		return Room{}, ErrBadRoomCapacity
	}
	if price <= 0 {
		return Room{}, ErrBadRoomPrice
	}
	return Room{Number: number, Capacity: capacity, Price: price}, nil
}

// BookingDates flattens the arrival/departure pairs of every order attached
// to the room, in order insertion order. The availability checker consumes
// this sequence.
func (r Room) BookingDates() []BookingDate {
	dates := make([]BookingDate, 0, len(r.Orders)*2)
	for _, o := range r.Orders {
		dates = append(dates, o.Dates[:]...)
	}
	return dates
}
