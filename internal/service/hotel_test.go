package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/hotel-california/internal/hotel"
	"github.com/iliyamo/hotel-california/internal/model"
	"github.com/iliyamo/hotel-california/internal/queue"
	"github.com/iliyamo/hotel-california/internal/repository/memory"
	"github.com/iliyamo/hotel-california/internal/service"
	"github.com/iliyamo/hotel-california/internal/utils"
)

// capture records published events instead of talking to a broker.
type capture struct {
	confirmed []queue.BookingConfirmedEvent
	cancelled []queue.BookingCancelledEvent
}

func (c *capture) BookingConfirmed(ctx context.Context, ev queue.BookingConfirmedEvent) error {
	c.confirmed = append(c.confirmed, ev)
	return nil
}

func (c *capture) BookingCancelled(ctx context.Context, ev queue.BookingCancelledEvent) error {
	c.cancelled = append(c.cancelled, ev)
	return nil
}

func newTestHotel(t *testing.T) (*service.Hotel, *utils.TokenIssuer, *capture) {
	t.Helper()
	tokens := utils.NewTokenIssuer("test-secret", "hotel_california", 30, 4320)
	events := &capture{}
	svc := service.New(memory.NewStore(), tokens, utils.NewHasher(bcrypt.MinCost), events)
	return svc, tokens, events
}

func stayRange(t *testing.T, from, to string) [2]model.BookingDate {
	t.Helper()
	a, err := model.ParseBookingDate(from, model.StatusArrival)
	require.NoError(t, err)
	d, err := model.ParseBookingDate(to, model.StatusDeparture)
	require.NoError(t, err)
	return [2]model.BookingDate{a, d}
}

func TestAddUserAndLogin(t *testing.T) {
	svc, tokens, _ := newTestHotel(t)
	ctx := context.Background()

	require.NoError(t, svc.AddUser(ctx, "Bob", "bob@example.com", "longenough", false))

	err := svc.AddUser(ctx, "Robert", "bob@example.com", "otherpassword", true)
	assert.ErrorIs(t, err, hotel.ErrNonUniqEmail)

	pair, err := svc.Login(ctx, "bob@example.com", "longenough")
	require.NoError(t, err)

	claims, err := tokens.Decode(pair.Access, "")
	require.NoError(t, err)
	sub, err := utils.Subject(claims)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", sub)

	_, err = tokens.Decode(pair.Refresh, utils.RefreshAudience)
	assert.NoError(t, err)

	_, err = svc.Login(ctx, "bob@example.com", "wrongpassword")
	assert.ErrorIs(t, err, hotel.ErrInvalidPassword)

	_, err = svc.Login(ctx, "nobody@example.com", "longenough")
	assert.ErrorIs(t, err, hotel.ErrNotFoundEmail)
}

func TestRefresh(t *testing.T) {
	svc, _, _ := newTestHotel(t)
	ctx := context.Background()

	require.NoError(t, svc.AddUser(ctx, "Bob", "bob@example.com", "longenough", false))

	// No login yet, so no stored refresh token to consume.
	_, err := svc.Refresh(ctx, "bob@example.com")
	assert.ErrorIs(t, err, hotel.ErrRefreshUsed)

	_, err = svc.Login(ctx, "bob@example.com", "longenough")
	require.NoError(t, err)

	pair, err := svc.Refresh(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)

	_, err = svc.Refresh(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, hotel.ErrNotFoundEmail)
}

func TestCheckAdmin(t *testing.T) {
	svc, _, _ := newTestHotel(t)
	ctx := context.Background()

	require.NoError(t, svc.AddUser(ctx, "Admin", "admin@example.com", "longenough", true))
	require.NoError(t, svc.AddUser(ctx, "Bob", "bob@example.com", "longenough", false))

	assert.NoError(t, svc.CheckAdmin(ctx, "admin@example.com"))
	assert.ErrorIs(t, svc.CheckAdmin(ctx, "bob@example.com"), hotel.ErrUserNotAdmin)
	assert.ErrorIs(t, svc.CheckAdmin(ctx, "nobody@example.com"), hotel.ErrNotFoundEmail)
}

func TestAddRoomAndList(t *testing.T) {
	svc, _, _ := newTestHotel(t)
	ctx := context.Background()

	num, err := svc.AddRoom(ctx, 101, 2, 120)
	require.NoError(t, err)
	assert.Equal(t, 101, num)

	_, err = svc.AddRoom(ctx, 101, 4, 300)
	assert.ErrorIs(t, err, hotel.ErrRoomExists)

	_, err = svc.AddRoom(ctx, 102, 0, 100)
	assert.ErrorIs(t, err, model.ErrBadRoomCapacity)

	_, err = svc.AddRoom(ctx, 301, 4, 400)
	require.NoError(t, err)

	rooms, err := svc.Rooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, 101, rooms[0].Number)
	assert.Equal(t, 301, rooms[1].Number)
}

func TestBookRoomFlow(t *testing.T) {
	svc, _, events := newTestHotel(t)
	ctx := context.Background()

	_, err := svc.AddRoom(ctx, 101, 2, 120)
	require.NoError(t, err)

	id, err := svc.BookRoom(ctx, 101, stayRange(t, "2000-01-01", "2000-01-07"))
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	// Same-day turnover on the seventh is allowed.
	id, err = svc.BookRoom(ctx, 101, stayRange(t, "2000-01-07", "2000-01-10"))
	require.NoError(t, err)
	assert.Equal(t, 2, id)

	// Overlapping range is rejected.
	_, err = svc.BookRoom(ctx, 101, stayRange(t, "2000-01-05", "2000-01-10"))
	assert.ErrorIs(t, err, hotel.ErrRoomNonFree)

	_, err = svc.BookRoom(ctx, 999, stayRange(t, "2000-01-01", "2000-01-02"))
	assert.ErrorIs(t, err, hotel.ErrRoomNotFound)

	order, err := svc.Order(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "2000-01-01", order.Arrival().Date.Format(model.DateLayout))
	assert.Equal(t, "2000-01-07", order.Departure().Date.Format(model.DateLayout))
	assert.Equal(t, 101, order.RoomNumber)

	history, err := svc.RoomOrders(ctx, 101)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	require.Len(t, events.confirmed, 2)
	assert.Equal(t, 1, events.confirmed[0].OrderID)
	assert.Equal(t, 101, events.confirmed[0].RoomNumber)
	assert.Equal(t, "2000-01-01", events.confirmed[0].Arrival)
}

func TestBookRoomRejectsBadDates(t *testing.T) {
	svc, _, events := newTestHotel(t)
	ctx := context.Background()

	_, err := svc.AddRoom(ctx, 101, 2, 120)
	require.NoError(t, err)

	_, err = svc.BookRoom(ctx, 101, stayRange(t, "2000-01-10", "2000-01-05"))
	assert.ErrorIs(t, err, model.ErrDatesNotValid)
	assert.Empty(t, events.confirmed)
}

func TestFindRooms(t *testing.T) {
	svc, _, _ := newTestHotel(t)
	ctx := context.Background()

	for _, r := range []struct {
		num, cap int
		price    float64
	}{{101, 2, 120}, {201, 2, 110}, {301, 4, 400}} {
		_, err := svc.AddRoom(ctx, r.num, r.cap, r.price)
		require.NoError(t, err)
	}
	_, err := svc.BookRoom(ctx, 101, stayRange(t, "2000-01-01", "2000-01-07"))
	require.NoError(t, err)

	rooms, err := svc.FindRooms(ctx, stayRange(t, "2000-01-03", "2000-01-05"), 2)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, 201, rooms[0].Number)

	rooms, err = svc.FindRooms(ctx, stayRange(t, "2000-01-07", "2000-01-09"), 2)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}

func TestCancelOrderWindow(t *testing.T) {
	svc, _, events := newTestHotel(t)
	ctx := context.Background()
	svc.SetNow(func() time.Time {
		return time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)
	})

	_, err := svc.AddRoom(ctx, 101, 2, 120)
	require.NoError(t, err)

	farOut, err := svc.BookRoom(ctx, 101, stayRange(t, "2000-01-10", "2000-01-15"))
	require.NoError(t, err)
	soon, err := svc.BookRoom(ctx, 101, stayRange(t, "2000-01-04", "2000-01-06"))
	require.NoError(t, err)

	// Arrival exactly three days away is already too late.
	err = svc.CancelOrder(ctx, soon)
	assert.ErrorIs(t, err, hotel.ErrOrderNotCancel)
	_, err = svc.Order(ctx, soon)
	assert.NoError(t, err)

	require.NoError(t, svc.CancelOrder(ctx, farOut))
	_, err = svc.Order(ctx, farOut)
	assert.ErrorIs(t, err, hotel.ErrOrderNotFound)

	require.Len(t, events.cancelled, 1)
	assert.Equal(t, farOut, events.cancelled[0].OrderID)
	assert.Equal(t, "2000-01-10", events.cancelled[0].Arrival)

	err = svc.CancelOrder(ctx, 999)
	assert.ErrorIs(t, err, hotel.ErrOrderNotFound)
}
