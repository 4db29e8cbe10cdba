package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/adventureawaits/api/internal/models"
	"github.com/adventureawaits/api/internal/queue"
)

type fakeBookingRepo struct {
	bookings map[primitive.ObjectID]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[primitive.ObjectID]*models.Booking{}}
}

func (f *fakeBookingRepo) CreateBooking(_ context.Context, booking *models.Booking) (*models.Booking, error) {
	booking.BeforeCreate()
	copied := *booking
	f.bookings[booking.ID] = &copied
	return booking, nil
}

func (f *fakeBookingRepo) GetBookingByID(_ context.Context, id primitive.ObjectID) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) ListBookings(_ context.Context, userID string, all bool) ([]*models.Booking, error) {
	out := []*models.Booking{}
	for _, b := range f.bookings {
		if all || b.UserID == userID {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListUpcomingBookings(_ context.Context, userID string, now time.Time) ([]*models.Booking, error) {
	out := []*models.Booking{}
	for _, b := range f.bookings {
		if b.UserID == userID && !b.IsTerminal() && !b.EventDate().Before(now) {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListPastBookings(_ context.Context, userID string, now time.Time) ([]*models.Booking, error) {
	out := []*models.Booking{}
	for _, b := range f.bookings {
		if b.UserID == userID && (b.IsTerminal() || b.EventDate().Before(now)) {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateBooking(_ context.Context, id primitive.ObjectID, version int, set bson.M) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if b.Status == models.StatusCancelled {
		return nil, models.ErrAlreadyCancelled
	}
	if b.Status == models.StatusCompleted {
		return nil, models.ErrInvalidState
	}
	if b.Version != version {
		return nil, models.ErrConflict
	}
	for key, value := range set {
		switch key {
		case "hotel":
			b.Hotel = value.(*models.HotelDetails)
		case "restaurant":
			b.Restaurant = value.(*models.RestaurantDetails)
		case "attraction":
			b.Attraction = value.(*models.AttractionDetails)
		case "notes":
			b.Notes = value.(string)
		case "total_price":
			b.TotalPrice = value.(float64)
		}
	}
	b.Version++
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) CancelBooking(_ context.Context, id primitive.ObjectID, version int, reason string, cancelledAt time.Time, refundAmount float64) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if b.Status == models.StatusCancelled {
		return nil, models.ErrAlreadyCancelled
	}
	if b.Status == models.StatusCompleted {
		return nil, models.ErrInvalidState
	}
	if b.Version != version {
		return nil, models.ErrConflict
	}
	b.Status = models.StatusCancelled
	b.PaymentStatus = models.PaymentRefunded
	b.CancellationReason = reason
	b.CancellationDate = &cancelledAt
	b.RefundAmount = &refundAmount
	b.Version++
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) DeleteBooking(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.bookings[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.bookings, id)
	return nil
}

// fakeCatalogRepo embeds the interface so only Resolve needs a real
// implementation; the service under test calls nothing else.
type fakeCatalogRepo struct {
	models.CatalogRepo
	known map[string]models.BookingType
}

func (f *fakeCatalogRepo) Resolve(_ context.Context, kind models.BookingType, id string) error {
	if f.known[id] != kind {
		return models.ErrNotFound
	}
	return nil
}

type fakePublisher struct {
	created   []queue.BookingCreatedEvent
	cancelled []queue.BookingCancelledEvent
}

func (f *fakePublisher) PublishBookingCreated(_ context.Context, e queue.BookingCreatedEvent) error {
	f.created = append(f.created, e)
	return nil
}

func (f *fakePublisher) PublishBookingCancelled(_ context.Context, e queue.BookingCancelledEvent) error {
	f.cancelled = append(f.cancelled, e)
	return nil
}

const hotelID = "65f000000000000000000001"

func newTestBookingService(now time.Time) (*BookingService, *fakeBookingRepo, *fakePublisher) {
	repo := newFakeBookingRepo()
	catalog := &fakeCatalogRepo{known: map[string]models.BookingType{hotelID: models.TypeHotel}}
	pub := &fakePublisher{}
	svc := NewBookingService(repo, catalog, pub)
	svc.now = func() time.Time { return now }
	return svc, repo, pub
}

func hotelBooking(checkIn time.Time, nights int) *models.Booking {
	return &models.Booking{
		Type:     models.TypeHotel,
		TargetID: hotelID,
		Hotel: &models.HotelDetails{
			CheckInDate:  checkIn,
			CheckOutDate: checkIn.Add(time.Duration(nights) * 24 * time.Hour),
			RoomType:     "standard",
			Rooms:        1,
			Adults:       2,
		},
	}
}

func TestCreateBooking(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, repo, pub := newTestBookingService(now)

	created, err := svc.Create(context.Background(), "user-1", hotelBooking(now.Add(10*24*time.Hour), 2))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Status != models.StatusConfirmed {
		t.Errorf("status = %s, want confirmed", created.Status)
	}
	if created.TotalPrice != 6000 {
		t.Errorf("total price = %.2f, want 6000", created.TotalPrice)
	}
	if created.Version != 0 {
		t.Errorf("version = %d, want 0", created.Version)
	}
	if len(repo.bookings) != 1 {
		t.Errorf("stored bookings = %d, want 1", len(repo.bookings))
	}
	if len(pub.created) != 1 {
		t.Errorf("published created events = %d, want 1", len(pub.created))
	}
}

func TestCreateBookingUnknownTargetPersistsNothing(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, repo, pub := newTestBookingService(now)

	b := hotelBooking(now.Add(10*24*time.Hour), 2)
	b.TargetID = "65f0000000000000000000ff"

	_, err := svc.Create(context.Background(), "user-1", b)
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(repo.bookings) != 0 {
		t.Errorf("stored bookings = %d, want 0", len(repo.bookings))
	}
	if len(pub.created) != 0 {
		t.Errorf("published events = %d, want 0", len(pub.created))
	}
}

func TestCreateBookingRejectsMixedDetails(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _, _ := newTestBookingService(now)

	b := hotelBooking(now.Add(48*time.Hour), 1)
	b.Restaurant = &models.RestaurantDetails{ReservationDate: now, ReservationTime: "19:00", PartySize: 2}

	_, err := svc.Create(context.Background(), "user-1", b)
	var ve *models.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestCancelBookingComputesRefund(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _, pub := newTestBookingService(now)

	// Check-in 48 hours out lands in the 75% hotel tier.
	created, err := svc.Create(context.Background(), "user-1", hotelBooking(now.Add(48*time.Hour), 2))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	cancelled, err := svc.Cancel(context.Background(), created.ID.Hex(), "user-1", models.RoleUser, "change of plans")
	if err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}

	if cancelled.Status != models.StatusCancelled {
		t.Errorf("status = %s, want cancelled", cancelled.Status)
	}
	if cancelled.PaymentStatus != models.PaymentRefunded {
		t.Errorf("payment status = %s, want refunded", cancelled.PaymentStatus)
	}
	if cancelled.RefundAmount == nil || *cancelled.RefundAmount != 1500 {
		t.Errorf("refund = %v, want 1500", cancelled.RefundAmount)
	}
	if cancelled.CancellationReason != "change of plans" {
		t.Errorf("reason = %q", cancelled.CancellationReason)
	}
	if len(pub.cancelled) != 1 {
		t.Fatalf("published cancelled events = %d, want 1", len(pub.cancelled))
	}
	if pub.cancelled[0].RefundAmount != 1500 {
		t.Errorf("event refund = %.2f, want 1500", pub.cancelled[0].RefundAmount)
	}
}

func TestCancelBookingDefaultReason(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _, _ := newTestBookingService(now)

	created, _ := svc.Create(context.Background(), "user-1", hotelBooking(now.Add(48*time.Hour), 1))
	cancelled, err := svc.Cancel(context.Background(), created.ID.Hex(), "user-1", models.RoleUser, "")
	if err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if cancelled.CancellationReason != "No reason provided" {
		t.Errorf("reason = %q, want default", cancelled.CancellationReason)
	}
}

func TestCancelTwiceFails(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _, _ := newTestBookingService(now)

	created, _ := svc.Create(context.Background(), "user-1", hotelBooking(now.Add(48*time.Hour), 1))
	if _, err := svc.Cancel(context.Background(), created.ID.Hex(), "user-1", models.RoleUser, ""); err != nil {
		t.Fatalf("first cancel failed: %v", err)
	}

	_, err := svc.Cancel(context.Background(), created.ID.Hex(), "user-1", models.RoleUser, "")
	if !errors.Is(err, models.ErrAlreadyCancelled) {
		t.Errorf("second cancel err = %v, want ErrAlreadyCancelled", err)
	}
}

func TestCancelByNonOwner(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _, _ := newTestBookingService(now)

	created, _ := svc.Create(context.Background(), "user-1", hotelBooking(now.Add(48*time.Hour), 1))

	_, err := svc.Cancel(context.Background(), created.ID.Hex(), "user-2", models.RoleUser, "")
	if !errors.Is(err, models.ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}

func TestCreateIgnoresClientSuppliedID(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _, _ := newTestBookingService(now)

	booking := hotelBooking(now.Add(48*time.Hour), 1)
	supplied := primitive.NewObjectID()
	booking.ID = supplied

	created, err := svc.Create(context.Background(), "user-1", booking)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatal("created booking has no id")
	}
	if created.ID == supplied {
		t.Error("client-supplied id survived create")
	}
}

func TestGetBookingOwnership(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _, _ := newTestBookingService(now)

	created, _ := svc.Create(context.Background(), "user-1", hotelBooking(now.Add(48*time.Hour), 1))

	if _, err := svc.Get(context.Background(), created.ID.Hex(), "user-2", models.RoleUser); !errors.Is(err, models.ErrUnauthorized) {
		t.Errorf("stranger read err = %v, want ErrUnauthorized", err)
	}
	if _, err := svc.Get(context.Background(), created.ID.Hex(), "admin-1", models.RoleAdmin); err != nil {
		t.Errorf("admin read failed: %v", err)
	}
	fetched, err := svc.Get(context.Background(), created.ID.Hex(), "user-1", models.RoleUser)
	if err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if fetched.Type != created.Type {
		t.Errorf("type = %q, want %q", fetched.Type, created.Type)
	}
	if fetched.TargetID != created.TargetID {
		t.Errorf("target id = %q, want %q", fetched.TargetID, created.TargetID)
	}
	if fetched.TotalPrice != created.TotalPrice {
		t.Errorf("total price = %v, want %v", fetched.TotalPrice, created.TotalPrice)
	}
	if fetched.Status != created.Status {
		t.Errorf("status = %q, want %q", fetched.Status, created.Status)
	}
}

func TestUpdateAfterCancel(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _, _ := newTestBookingService(now)

	created, _ := svc.Create(context.Background(), "user-1", hotelBooking(now.Add(48*time.Hour), 1))
	if _, err := svc.Cancel(context.Background(), created.ID.Hex(), "user-1", models.RoleUser, ""); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	notes := "late arrival"
	_, err := svc.Update(context.Background(), created.ID.Hex(), "user-1", models.RoleUser, BookingUpdate{Notes: &notes})
	if !errors.Is(err, models.ErrInvalidState) {
		t.Errorf("err = %v, want ErrInvalidState", err)
	}
}

func TestUpdateRepricesChangedDetails(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _, _ := newTestBookingService(now)

	created, _ := svc.Create(context.Background(), "user-1", hotelBooking(now.Add(10*24*time.Hour), 2))

	newDetails := *created.Hotel
	newDetails.RoomType = "deluxe"
	updated, err := svc.Update(context.Background(), created.ID.Hex(), "user-1", models.RoleUser, BookingUpdate{Hotel: &newDetails})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.TotalPrice != 9000 {
		t.Errorf("repriced total = %.2f, want 9000", updated.TotalPrice)
	}
	if updated.Version != created.Version+1 {
		t.Errorf("version = %d, want %d", updated.Version, created.Version+1)
	}
}

func TestUpdateRejectsWrongDetailKind(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _, _ := newTestBookingService(now)

	created, _ := svc.Create(context.Background(), "user-1", hotelBooking(now.Add(48*time.Hour), 1))

	upd := BookingUpdate{Restaurant: &models.RestaurantDetails{ReservationDate: now, ReservationTime: "19:00", PartySize: 2}}
	_, err := svc.Update(context.Background(), created.ID.Hex(), "user-1", models.RoleUser, upd)
	var ve *models.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("err = %v, want ValidationError", err)
	}
}

func TestDeleteBookingAdminOnly(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, repo, _ := newTestBookingService(now)

	created, _ := svc.Create(context.Background(), "user-1", hotelBooking(now.Add(48*time.Hour), 1))

	if err := svc.Delete(context.Background(), created.ID.Hex(), models.RoleUser); !errors.Is(err, models.ErrUnauthorized) {
		t.Errorf("user delete err = %v, want ErrUnauthorized", err)
	}
	if err := svc.Delete(context.Background(), created.ID.Hex(), models.RoleAdmin); err != nil {
		t.Errorf("admin delete failed: %v", err)
	}
	if len(repo.bookings) != 0 {
		t.Errorf("stored bookings = %d, want 0", len(repo.bookings))
	}
}

func TestListScopes(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _, _ := newTestBookingService(now)

	_, _ = svc.Create(context.Background(), "user-1", hotelBooking(now.Add(48*time.Hour), 1))
	_, _ = svc.Create(context.Background(), "user-2", hotelBooking(now.Add(72*time.Hour), 1))

	mine, err := svc.List(context.Background(), "user-1", models.RoleUser)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(mine) != 1 {
		t.Errorf("user list = %d bookings, want 1", len(mine))
	}

	all, err := svc.List(context.Background(), "admin-1", models.RoleAdmin)
	if err != nil {
		t.Fatalf("admin List failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin list = %d bookings, want 2", len(all))
	}
}

func TestUpcomingAndPastSplit(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _, _ := newTestBookingService(now)

	upcoming, _ := svc.Create(context.Background(), "user-1", hotelBooking(now.Add(5*24*time.Hour), 1))
	toCancel, _ := svc.Create(context.Background(), "user-1", hotelBooking(now.Add(6*24*time.Hour), 1))
	if _, err := svc.Cancel(context.Background(), toCancel.ID.Hex(), "user-1", models.RoleUser, ""); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	up, err := svc.ListUpcoming(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListUpcoming failed: %v", err)
	}
	if len(up) != 1 || up[0].ID != upcoming.ID {
		t.Errorf("upcoming = %d bookings, want only the active one", len(up))
	}

	past, err := svc.ListPast(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListPast failed: %v", err)
	}
	if len(past) != 1 || past[0].ID != toCancel.ID {
		t.Errorf("past = %d bookings, want only the cancelled one", len(past))
	}
}
