package hotel

import (
	"fmt"
	"time"

	"github.com/iliyamo/hotel-california/internal/model"
)

// CancelWindow is how long before arrival an order must be cancelled.
// Exactly three days before arrival is already too late.
const CancelWindow = 3 * 24 * time.Hour

// OrderManager is the aggregate over all orders, built from a full snapshot
// per transaction. Identities are assigned monotonically: the manager
// remembers the highest identity it has seen, so deleting an order within
// the same manager instance never frees its identity for reuse.
//
// The max+1 assignment is a read-then-write without a guarding lock; two
// concurrent transactions can both pass it and collide. That race is
// inherited from the design and must be closed at the storage layer
// (serializable isolation or a unique constraint), not here.
type OrderManager struct {
	orders map[int]model.Order
	lastID int
}

// NewOrderManager builds the aggregate from a snapshot of all orders.
func NewOrderManager(orders []model.Order) *OrderManager {
	m := &OrderManager{orders: make(map[int]model.Order, len(orders))}
	for _, o := range orders {
		m.orders[o.Identity] = o
		if o.Identity > m.lastID {
			m.lastID = o.Identity
		}
	}
	return m
}

// NextID returns the identity the next order will receive: one more than the
// highest identity seen, or 1 for an empty snapshot.
func (m *OrderManager) NextID() int {
	return m.lastID + 1
}

// Create validates the date pair and registers a new order under the next
// identity. The caller persists the returned order.
func (m *OrderManager) Create(arrival, departure model.BookingDate) (model.Order, error) {
	order, err := model.NewOrder(m.NextID(), arrival, departure)
	if err != nil {
		return model.Order{}, err
	}
	m.orders[order.Identity] = order
	m.lastID = order.Identity
	return order, nil
}

// GetByID returns the order with the given identity.
func (m *OrderManager) GetByID(identity int) (model.Order, error) {
	order, ok := m.orders[identity]
	if !ok {
		return model.Order{}, fmt.Errorf("%w: %d", ErrOrderNotFound, identity)
	}
	return order, nil
}

// CanCancel reports whether the order may still be cancelled at the given
// moment: only while the arrival date is more than three calendar days away.
func (m *OrderManager) CanCancel(order model.Order, now time.Time) bool {
	today := model.NewBookingDate(now, model.StatusArrival).Date
	return order.Arrival().Date.Sub(today) > CancelWindow
}

// Delete removes the order from the snapshot. Its identity stays burned for
// the lifetime of this manager instance.
func (m *OrderManager) Delete(identity int) {
	delete(m.orders, identity)
}
