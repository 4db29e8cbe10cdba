package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingType string

const (
	TypeHotel      BookingType = "hotel"
	TypeRestaurant BookingType = "restaurant"
	TypeAttraction BookingType = "attraction"
)

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusPending   BookingStatus = "pending"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// HotelDetails holds the fields required when Type is "hotel".
type HotelDetails struct {
	CheckInDate  time.Time `bson:"check_in_date" json:"check_in_date"`
	CheckOutDate time.Time `bson:"check_out_date" json:"check_out_date"`
	RoomType     string    `bson:"room_type" json:"room_type"`
	Rooms        int       `bson:"rooms" json:"rooms"`
	Adults       int       `bson:"adults" json:"adults"`
	Children     int       `bson:"children" json:"children"`
}

// RestaurantDetails holds the fields required when Type is "restaurant".
type RestaurantDetails struct {
	ReservationDate time.Time `bson:"reservation_date" json:"reservation_date"`
	ReservationTime string    `bson:"reservation_time" json:"reservation_time"`
	PartySize       int       `bson:"party_size" json:"party_size"`
	Occasion        string    `bson:"occasion,omitempty" json:"occasion,omitempty"`
	SpecialRequests string    `bson:"special_requests,omitempty" json:"special_requests,omitempty"`
}

// AttractionDetails holds the fields required when Type is "attraction".
type AttractionDetails struct {
	VisitDate     time.Time `bson:"visit_date" json:"visit_date"`
	TicketType    string    `bson:"ticket_type" json:"ticket_type"`
	AdultTickets  int       `bson:"adult_tickets" json:"adult_tickets"`
	ChildTickets  int       `bson:"child_tickets" json:"child_tickets"`
	SeniorTickets int       `bson:"senior_tickets" json:"senior_tickets"`
	GuidedTour    bool      `bson:"guided_tour" json:"guided_tour"`
}

// Booking is the central reservation record. Exactly one of the three
// detail structs is populated, matching Type. Status only moves forward:
// confirmed|pending -> cancelled|completed; cancelled and completed are
// terminal and freeze price and dates.
type Booking struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	Type       BookingType        `bson:"type" json:"type"`
	TargetID   string             `bson:"target_id" json:"target_id"`
	Status     BookingStatus      `bson:"status" json:"status"`
	TotalPrice float64            `bson:"total_price" json:"total_price"`

	Hotel      *HotelDetails      `bson:"hotel,omitempty" json:"hotel,omitempty"`
	Restaurant *RestaurantDetails `bson:"restaurant,omitempty" json:"restaurant,omitempty"`
	Attraction *AttractionDetails `bson:"attraction,omitempty" json:"attraction,omitempty"`

	PaymentStatus      PaymentStatus `bson:"payment_status" json:"payment_status"`
	BookingDate        time.Time     `bson:"booking_date" json:"booking_date"`
	CancellationReason string        `bson:"cancellation_reason,omitempty" json:"cancellation_reason,omitempty"`
	CancellationDate   *time.Time    `bson:"cancellation_date,omitempty" json:"cancellation_date,omitempty"`
	RefundAmount       *float64      `bson:"refund_amount,omitempty" json:"refund_amount,omitempty"`
	Notes              string        `bson:"notes,omitempty" json:"notes,omitempty"`

	// Version guards against racing read-check-write cycles; every
	// mutating update increments it and filters on the value it read.
	Version   int       `bson:"version" json:"version"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

var roomTypes = map[string]bool{"standard": true, "deluxe": true, "suite": true}
var ticketTypes = map[string]bool{"standard": true, "premium": true, "vip": true}

// Validate enforces the tagged-union shape: the detail struct matching
// Type must be present and complete, the other two must be absent.
func (b *Booking) Validate() error {
	ve := &ValidationError{Fields: map[string]string{}}

	if b.UserID == "" {
		ve.Add("user_id", "user id is required")
	}
	if b.TargetID == "" {
		ve.Add("target_id", "target id is required")
	}

	switch b.Type {
	case TypeHotel:
		if b.Restaurant != nil || b.Attraction != nil {
			ve.Add("type", "hotel booking must not carry restaurant or attraction details")
		}
		if b.Hotel == nil {
			ve.Add("hotel", "hotel details are required")
			break
		}
		h := b.Hotel
		if h.CheckInDate.IsZero() {
			ve.Add("hotel.check_in_date", "check-in date is required")
		}
		if h.CheckOutDate.IsZero() {
			ve.Add("hotel.check_out_date", "check-out date is required")
		}
		if !h.CheckInDate.IsZero() && !h.CheckOutDate.IsZero() && !h.CheckOutDate.After(h.CheckInDate) {
			ve.Add("hotel.check_out_date", "check-out must be after check-in")
		}
		if !roomTypes[h.RoomType] {
			ve.Add("hotel.room_type", "room type must be standard, deluxe or suite")
		}
		if h.Rooms < 1 {
			ve.Add("hotel.rooms", "at least one room is required")
		}
		if h.Adults < 1 {
			ve.Add("hotel.adults", "at least one adult guest is required")
		}
		if h.Children < 0 {
			ve.Add("hotel.children", "children count cannot be negative")
		}
	case TypeRestaurant:
		if b.Hotel != nil || b.Attraction != nil {
			ve.Add("type", "restaurant booking must not carry hotel or attraction details")
		}
		if b.Restaurant == nil {
			ve.Add("restaurant", "restaurant details are required")
			break
		}
		r := b.Restaurant
		if r.ReservationDate.IsZero() {
			ve.Add("restaurant.reservation_date", "reservation date is required")
		}
		if r.ReservationTime == "" {
			ve.Add("restaurant.reservation_time", "reservation time is required")
		}
		if r.PartySize < 1 {
			ve.Add("restaurant.party_size", "party size must be at least 1")
		}
	case TypeAttraction:
		if b.Hotel != nil || b.Restaurant != nil {
			ve.Add("type", "attraction booking must not carry hotel or restaurant details")
		}
		if b.Attraction == nil {
			ve.Add("attraction", "attraction details are required")
			break
		}
		a := b.Attraction
		if a.VisitDate.IsZero() {
			ve.Add("attraction.visit_date", "visit date is required")
		}
		if !ticketTypes[a.TicketType] {
			ve.Add("attraction.ticket_type", "ticket type must be standard, premium or vip")
		}
		if a.AdultTickets < 0 || a.ChildTickets < 0 || a.SeniorTickets < 0 {
			ve.Add("attraction.tickets", "ticket counts cannot be negative")
		} else if a.AdultTickets+a.ChildTickets+a.SeniorTickets < 1 {
			ve.Add("attraction.tickets", "at least one ticket is required")
		}
	default:
		ve.Add("type", "type must be hotel, restaurant or attraction")
	}

	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
}

// EventDate returns the date the cancellation clock runs against:
// check-in for hotels, reservation date for restaurants, visit date
// for attractions.
func (b *Booking) EventDate() time.Time {
	switch b.Type {
	case TypeHotel:
		if b.Hotel != nil {
			return b.Hotel.CheckInDate
		}
	case TypeRestaurant:
		if b.Restaurant != nil {
			return b.Restaurant.ReservationDate
		}
	case TypeAttraction:
		if b.Attraction != nil {
			return b.Attraction.VisitDate
		}
	}
	return time.Time{}
}

// IsTerminal reports whether the booking reached a state that forbids
// any further mutation of price, dates or status.
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}

func (b *Booking) BeforeCreate() {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
}
