package model

import "errors"

// ErrDatesNotValid is returned when an order's arrival date falls strictly
// after its departure date, or the pair does not consist of exactly one
// arrival and one departure.
var ErrDatesNotValid = errors.New("booking dates are not valid")

// Order is a reservation of a room for a date range. The identity is
// assigned by the order manager and is unique across all orders. Dates
// always holds exactly one arrival and one departure. RoomNumber is zero
// until the order is attached to a room at booking time.
type Order struct {
	Identity   int
	RoomNumber int
	Dates      [2]BookingDate
}

// NewOrder validates the date pair: exactly one arrival and one departure,
// with the arrival no later than the departure. Same-day arrival and
// departure is allowed.
func NewOrder(identity int, arrival, departure BookingDate) (Order, error) {
	if arrival.Status != StatusArrival || departure.Status != StatusDeparture {
		return Order{}, ErrDatesNotValid
	}
	if arrival.Date.After(departure.Date) {
		return Order{}, ErrDatesNotValid
	}
	return Order{Identity: identity, Dates: [2]BookingDate{arrival, departure}}, nil
}

// Arrival returns the arrival entry of the date pair.
func (o Order) Arrival() BookingDate { return o.Dates[0] }

// Departure returns the departure entry of the date pair.
func (o Order) Departure() BookingDate { return o.Dates[1] }
