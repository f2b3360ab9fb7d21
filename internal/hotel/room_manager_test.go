package hotel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-california/internal/model"
)

func mustRoom(t *testing.T, number, capacity int, price float64, orders ...model.Order) model.Room {
	t.Helper()
	room, err := model.NewRoom(number, capacity, price)
	require.NoError(t, err)
	room.Orders = orders
	return room
}

func TestRoomManagerCreate(t *testing.T) {
	m := NewRoomManager(nil)

	room, err := m.Create(101, 2, 120)
	require.NoError(t, err)
	assert.Equal(t, 101, room.Number)

	got, err := m.GetByNumber(101)
	require.NoError(t, err)
	assert.Equal(t, room, got)
}

func TestRoomManagerCreateDuplicateNumber(t *testing.T) {
	m := NewRoomManager([]model.Room{mustRoom(t, 101, 2, 120)})

	_, err := m.Create(101, 4, 300)
	assert.ErrorIs(t, err, ErrRoomExists)
}

func TestRoomManagerCreateInvalid(t *testing.T) {
	m := NewRoomManager(nil)

	_, err := m.Create(0, 2, 120)
	assert.ErrorIs(t, err, model.ErrBadRoomNumber)
	_, err = m.Create(101, 0, 120)
	assert.ErrorIs(t, err, model.ErrBadRoomCapacity)
	_, err = m.Create(101, 2, -1)
	assert.ErrorIs(t, err, model.ErrBadRoomPrice)
}

func TestRoomManagerFind(t *testing.T) {
	booked := mustRoom(t, 102, 2, 150, mustOrder(t, 1, "2000-01-01", "2000-01-07"))
	m := NewRoomManager([]model.Room{
		mustRoom(t, 201, 2, 110),
		booked,
		mustRoom(t, 101, 2, 120),
		mustRoom(t, 301, 4, 400),
	})

	dates := [2]model.BookingDate{arrival(t, "2000-01-03"), departure(t, "2000-01-05")}

	got := m.Find(dates, 2)
	require.Len(t, got, 2)
	// Booked room filtered out, the rest sorted by number.
	assert.Equal(t, 101, got[0].Number)
	assert.Equal(t, 201, got[1].Number)

	assert.Empty(t, m.Find(dates, 3))
}

func TestRoomManagerFindCapacityIsExact(t *testing.T) {
	m := NewRoomManager([]model.Room{mustRoom(t, 301, 4, 400)})
	dates := [2]model.BookingDate{arrival(t, "2000-01-03"), departure(t, "2000-01-05")}

	// A four-person room does not satisfy a search for two.
	assert.Empty(t, m.Find(dates, 2))
	assert.Len(t, m.Find(dates, 4), 1)
}

func TestRoomManagerCheck(t *testing.T) {
	booked := mustRoom(t, 102, 2, 150, mustOrder(t, 1, "2000-01-01", "2000-01-07"))
	m := NewRoomManager([]model.Room{booked})

	_, err := m.Check(999, [2]model.BookingDate{arrival(t, "2000-01-08"), departure(t, "2000-01-10")})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = m.Check(102, [2]model.BookingDate{arrival(t, "2000-01-05"), departure(t, "2000-01-10")})
	assert.ErrorIs(t, err, ErrRoomNonFree)

	room, err := m.Check(102, [2]model.BookingDate{arrival(t, "2000-01-07"), departure(t, "2000-01-10")})
	require.NoError(t, err)
	assert.Equal(t, 102, room.Number)
}

func TestRoomManagerAll(t *testing.T) {
	m := NewRoomManager([]model.Room{
		mustRoom(t, 301, 4, 400),
		mustRoom(t, 101, 2, 120),
	})

	all := m.All()
	require.Len(t, all, 2)
	assert.Equal(t, 101, all[0].Number)
	assert.Equal(t, 301, all[1].Number)
}
