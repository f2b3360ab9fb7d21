package model

import "time"

// Status tags a booking date with its role in a stay: the day the guest
// arrives or the day they depart.
type Status int

const (
	StatusArrival   Status = 1
	StatusDeparture Status = 2
)

func (s Status) String() string {
	switch s {
	case StatusArrival:
		return "arrival"
	case StatusDeparture:
		return "departure"
	}
	return "unknown"
}

// DateLayout is the wire format for calendar dates in requests and responses.
const DateLayout = "2006-01-02"

// BookingDate is an immutable calendar date tagged with a Status. Dates are
// normalized to midnight UTC so that two BookingDates compare by calendar
// day regardless of the clock time they were created with.
type BookingDate struct {
	Date   time.Time
	Status Status
}

// NewBookingDate truncates t to its calendar day in UTC.
func NewBookingDate(t time.Time, status Status) BookingDate {
	y, m, d := t.UTC().Date()
	return BookingDate{Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Status: status}
}

// ParseBookingDate parses a YYYY-MM-DD string into a BookingDate.
func ParseBookingDate(s string, status Status) (BookingDate, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return BookingDate{}, err
	}
	return NewBookingDate(t, status), nil
}
