package hotel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-california/internal/model"
)

func mustOrder(t *testing.T, identity int, from, to string) model.Order {
	t.Helper()
	o, err := model.NewOrder(identity, arrival(t, from), departure(t, to))
	require.NoError(t, err)
	return o
}

func TestOrderManagerNextID(t *testing.T) {
	m := NewOrderManager(nil)
	assert.Equal(t, 1, m.NextID())

	m = NewOrderManager([]model.Order{
		mustOrder(t, 1, "2000-01-01", "2000-01-02"),
		mustOrder(t, 2, "2000-02-01", "2000-02-02"),
		mustOrder(t, 5, "2000-03-01", "2000-03-02"),
	})
	assert.Equal(t, 6, m.NextID())
}

func TestOrderManagerCreate(t *testing.T) {
	m := NewOrderManager([]model.Order{mustOrder(t, 3, "2000-01-01", "2000-01-02")})

	order, err := m.Create(arrival(t, "2000-05-01"), departure(t, "2000-05-04"))
	require.NoError(t, err)
	assert.Equal(t, 4, order.Identity)

	got, err := m.GetByID(4)
	require.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestOrderManagerCreateRejectsBadDates(t *testing.T) {
	m := NewOrderManager(nil)

	_, err := m.Create(arrival(t, "2000-05-04"), departure(t, "2000-05-01"))
	assert.ErrorIs(t, err, model.ErrDatesNotValid)

	// Statuses swapped.
	_, err = m.Create(departure(t, "2000-05-01"), arrival(t, "2000-05-04"))
	assert.ErrorIs(t, err, model.ErrDatesNotValid)
}

func TestOrderManagerIdentityNotReusedAfterDelete(t *testing.T) {
	m := NewOrderManager([]model.Order{mustOrder(t, 5, "2000-01-01", "2000-01-02")})

	order, err := m.Create(arrival(t, "2000-02-01"), departure(t, "2000-02-03"))
	require.NoError(t, err)
	assert.Equal(t, 6, order.Identity)

	m.Delete(6)
	assert.Equal(t, 7, m.NextID())

	_, err = m.GetByID(6)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderManagerGetUnknown(t *testing.T) {
	m := NewOrderManager(nil)
	_, err := m.GetByID(42)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderManagerCanCancel(t *testing.T) {
	m := NewOrderManager(nil)
	now := time.Date(2000, time.January, 1, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		name    string
		arrival string
		want    bool
	}{
		{"arrival today", "2000-01-01", false},
		{"arrival tomorrow", "2000-01-02", false},
		{"arrival in exactly three days", "2000-01-04", false},
		{"arrival in four days", "2000-01-05", true},
		{"arrival far out", "2000-03-01", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := mustOrder(t, 1, tc.arrival, "2000-03-10")
			assert.Equal(t, tc.want, m.CanCancel(order, now))
		})
	}
}
