// Package queue defines message payloads published to the message broker.
package queue

// BookingCreatedEvent is published when a booking is successfully
// created. It carries enough for downstream consumers (notifications,
// analytics) to act without querying the primary database.
type BookingCreatedEvent struct {
	BookingID  string  `json:"booking_id"`
	UserID     string  `json:"user_id"`
	Type       string  `json:"type"`
	TargetID   string  `json:"target_id"`
	TotalPrice float64 `json:"total_price"`
	EventDate  string  `json:"event_date"`
	CreatedAt  string  `json:"created_at"`
}

// BookingCancelledEvent is published when a booking transitions to
// cancelled, including the refund bookkeeping.
type BookingCancelledEvent struct {
	BookingID    string  `json:"booking_id"`
	UserID       string  `json:"user_id"`
	Type         string  `json:"type"`
	TotalPrice   float64 `json:"total_price"`
	RefundAmount float64 `json:"refund_amount"`
	Reason       string  `json:"reason"`
	CancelledAt  string  `json:"cancelled_at"`
}
