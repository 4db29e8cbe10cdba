package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/adventureawaits/api/internal/models"
	"github.com/adventureawaits/api/internal/queue"
)

const defaultCancellationReason = "No reason provided"

// EventPublisher abstracts the message broker so the service can be
// exercised in tests without a running RabbitMQ.
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, event queue.BookingCreatedEvent) error
	PublishBookingCancelled(ctx context.Context, event queue.BookingCancelledEvent) error
}

// BookingUpdate carries the mutable fields of a booking. Detail
// structs replace the existing payload wholesale and must match the
// booking's type; price is recomputed when they change.
type BookingUpdate struct {
	Hotel      *models.HotelDetails      `json:"hotel,omitempty"`
	Restaurant *models.RestaurantDetails `json:"restaurant,omitempty"`
	Attraction *models.AttractionDetails `json:"attraction,omitempty"`
	Notes      *string                   `json:"notes,omitempty"`
}

type BookingService struct {
	bookingRepo models.BookingRepo
	catalogRepo models.CatalogRepo
	publisher   EventPublisher
	now         func() time.Time
}

func NewBookingService(bookingRepo models.BookingRepo, catalogRepo models.CatalogRepo, publisher EventPublisher) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		publisher:   publisher,
		now:         time.Now,
	}
}

// authorizeOwner implements the ownership guard: only the owning user
// or an admin may touch a booking.
func authorizeOwner(ownerID, callerID, callerRole string) error {
	if callerID != "" && (callerID == ownerID || callerRole == models.RoleAdmin) {
		return nil
	}
	return models.ErrUnauthorized
}

// Create validates the payload, confirms the referenced catalog item
// exists, prices the booking and persists it with status confirmed.
// Nothing is written when the target does not resolve.
func (bs *BookingService) Create(ctx context.Context, userID string, booking *models.Booking) (*models.Booking, error) {
	if userID == "" {
		return nil, models.ErrUnauthorized
	}
	booking.UserID = userID

	if err := booking.Validate(); err != nil {
		return nil, err
	}
	if err := bs.catalogRepo.Resolve(ctx, booking.Type, booking.TargetID); err != nil {
		return nil, err
	}

	now := bs.now()
	booking.ID = primitive.NilObjectID
	booking.TotalPrice = ComputeTotalPrice(booking)
	booking.Status = models.StatusConfirmed
	booking.PaymentStatus = models.PaymentPaid
	booking.BookingDate = now
	booking.CancellationReason = ""
	booking.CancellationDate = nil
	booking.RefundAmount = nil
	booking.Version = 0
	booking.CreatedAt = now
	booking.UpdatedAt = now

	created, err := bs.bookingRepo.CreateBooking(ctx, booking)
	if err != nil {
		return nil, err
	}

	_ = bs.publisher.PublishBookingCreated(ctx, queue.BookingCreatedEvent{
		BookingID:  created.ID.Hex(),
		UserID:     created.UserID,
		Type:       string(created.Type),
		TargetID:   created.TargetID,
		TotalPrice: created.TotalPrice,
		EventDate:  created.EventDate().Format(time.RFC3339),
		CreatedAt:  created.CreatedAt.Format(time.RFC3339),
	})

	return created, nil
}

func (bs *BookingService) Get(ctx context.Context, id, callerID, callerRole string) (*models.Booking, error) {
	booking, err := bs.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(booking.UserID, callerID, callerRole); err != nil {
		return nil, err
	}
	return booking, nil
}

// List returns the caller's bookings; admins see every booking.
func (bs *BookingService) List(ctx context.Context, callerID, callerRole string) ([]*models.Booking, error) {
	if callerID == "" {
		return nil, models.ErrUnauthorized
	}
	return bs.bookingRepo.ListBookings(ctx, callerID, callerRole == models.RoleAdmin)
}

func (bs *BookingService) ListUpcoming(ctx context.Context, callerID string) ([]*models.Booking, error) {
	if callerID == "" {
		return nil, models.ErrUnauthorized
	}
	return bs.bookingRepo.ListUpcomingBookings(ctx, callerID, bs.now())
}

func (bs *BookingService) ListPast(ctx context.Context, callerID string) ([]*models.Booking, error) {
	if callerID == "" {
		return nil, models.ErrUnauthorized
	}
	return bs.bookingRepo.ListPastBookings(ctx, callerID, bs.now())
}

// Update replaces mutable fields while the booking is still active.
// Terminal bookings reject the write with ErrInvalidState.
func (bs *BookingService) Update(ctx context.Context, id, callerID, callerRole string, upd BookingUpdate) (*models.Booking, error) {
	booking, err := bs.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(booking.UserID, callerID, callerRole); err != nil {
		return nil, err
	}
	if booking.IsTerminal() {
		return nil, models.ErrInvalidState
	}

	set := bson.M{}
	repriced := false
	switch {
	case upd.Hotel != nil:
		if booking.Type != models.TypeHotel {
			return nil, models.NewValidationError("hotel", "booking is not a hotel booking")
		}
		booking.Hotel = upd.Hotel
		set["hotel"] = upd.Hotel
		repriced = true
	case upd.Restaurant != nil:
		if booking.Type != models.TypeRestaurant {
			return nil, models.NewValidationError("restaurant", "booking is not a restaurant booking")
		}
		booking.Restaurant = upd.Restaurant
		set["restaurant"] = upd.Restaurant
		repriced = true
	case upd.Attraction != nil:
		if booking.Type != models.TypeAttraction {
			return nil, models.NewValidationError("attraction", "booking is not an attraction booking")
		}
		booking.Attraction = upd.Attraction
		set["attraction"] = upd.Attraction
		repriced = true
	}

	if repriced {
		if err := booking.Validate(); err != nil {
			return nil, err
		}
		set["total_price"] = ComputeTotalPrice(booking)
	}
	if upd.Notes != nil {
		set["notes"] = *upd.Notes
	}
	if len(set) == 0 {
		return booking, nil
	}

	return bs.bookingRepo.UpdateBooking(ctx, booking.ID, booking.Version, set)
}

// Cancel is the only status transition implemented here. It computes
// the tiered refund and persists the terminal state with a version
// check, so a second or concurrent cancel always fails instead of
// recomputing the refund.
func (bs *BookingService) Cancel(ctx context.Context, id, callerID, callerRole, reason string) (*models.Booking, error) {
	booking, err := bs.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(booking.UserID, callerID, callerRole); err != nil {
		return nil, err
	}
	if booking.Status == models.StatusCancelled {
		return nil, models.ErrAlreadyCancelled
	}
	if booking.Status == models.StatusCompleted {
		return nil, models.ErrInvalidState
	}

	now := bs.now()
	days := DaysUntil(now, booking.EventDate())
	breakdown := ComputeCancellationFee(booking.Type, booking.TotalPrice, days)

	if reason == "" {
		reason = defaultCancellationReason
	}

	cancelled, err := bs.bookingRepo.CancelBooking(ctx, booking.ID, booking.Version, reason, now, breakdown.RefundAmount)
	if err != nil {
		return nil, err
	}

	_ = bs.publisher.PublishBookingCancelled(ctx, queue.BookingCancelledEvent{
		BookingID:    cancelled.ID.Hex(),
		UserID:       cancelled.UserID,
		Type:         string(cancelled.Type),
		TotalPrice:   cancelled.TotalPrice,
		RefundAmount: breakdown.RefundAmount,
		Reason:       reason,
		CancelledAt:  now.Format(time.RFC3339),
	})

	return cancelled, nil
}

// Delete permanently removes a booking. Admin only; owners cancel
// instead.
func (bs *BookingService) Delete(ctx context.Context, id, callerRole string) error {
	if callerRole != models.RoleAdmin {
		return models.ErrUnauthorized
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrNotFound
	}
	return bs.bookingRepo.DeleteBooking(ctx, oid)
}

func (bs *BookingService) fetch(ctx context.Context, id string) (*models.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}
	return bs.bookingRepo.GetBookingByID(ctx, oid)
}
