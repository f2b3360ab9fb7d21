// Package queue defines message payloads exchanged over the message broker
// plus the publisher and the background consumer for them.
package queue

// BookingConfirmedEvent is published after a booking transaction commits.
// It carries enough information for downstream consumers to log or notify
// without querying the primary database.
type BookingConfirmedEvent struct {
	OrderID     int     `json:"order_id"`
	RoomNumber  int     `json:"room_number"`
	Capacity    int     `json:"capacity"`
	Price       float64 `json:"price"`
	Arrival     string  `json:"arrival"`
	Departure   string  `json:"departure"`
	ConfirmedAt string  `json:"confirmed_at"`
}

// BookingCancelledEvent is published after an order is deleted inside the
// cancellation window.
type BookingCancelledEvent struct {
	OrderID     int    `json:"order_id"`
	RoomNumber  int    `json:"room_number"`
	Arrival     string `json:"arrival"`
	Departure   string `json:"departure"`
	CancelledAt string `json:"cancelled_at"`
}
