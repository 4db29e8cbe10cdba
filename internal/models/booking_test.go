package models

import (
	"errors"
	"testing"
	"time"
)

func validHotelBooking() *Booking {
	checkIn := time.Date(2026, 7, 1, 14, 0, 0, 0, time.UTC)
	return &Booking{
		UserID:   "user-1",
		Type:     TypeHotel,
		TargetID: "65f000000000000000000001",
		Hotel: &HotelDetails{
			CheckInDate:  checkIn,
			CheckOutDate: checkIn.Add(48 * time.Hour),
			RoomType:     "standard",
			Rooms:        1,
			Adults:       2,
		},
	}
}

func TestValidateAcceptsWellFormedBooking(t *testing.T) {
	if err := validHotelBooking().Validate(); err != nil {
		t.Fatalf("valid booking rejected: %v", err)
	}
}

func TestValidateRejectsForeignDetails(t *testing.T) {
	b := validHotelBooking()
	b.Restaurant = &RestaurantDetails{ReservationDate: time.Now(), ReservationTime: "19:00", PartySize: 2}

	err := b.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if _, ok := ve.Fields["type"]; !ok {
		t.Errorf("expected a type field error, got %v", ve.Fields)
	}
}

func TestValidateRejectsMissingDetails(t *testing.T) {
	b := validHotelBooking()
	b.Hotel = nil

	err := b.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if _, ok := ve.Fields["hotel"]; !ok {
		t.Errorf("expected a hotel field error, got %v", ve.Fields)
	}
}

func TestValidateRejectsBadHotelPayload(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Booking)
		field  string
	}{
		{"checkout before checkin", func(b *Booking) {
			b.Hotel.CheckOutDate = b.Hotel.CheckInDate.Add(-24 * time.Hour)
		}, "hotel.check_out_date"},
		{"unknown room type", func(b *Booking) {
			b.Hotel.RoomType = "penthouse"
		}, "hotel.room_type"},
		{"zero rooms", func(b *Booking) {
			b.Hotel.Rooms = 0
		}, "hotel.rooms"},
		{"no adults", func(b *Booking) {
			b.Hotel.Adults = 0
		}, "hotel.adults"},
	}

	for _, tc := range cases {
		b := validHotelBooking()
		tc.mutate(b)
		err := b.Validate()
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: err = %v, want ValidationError", tc.name, err)
			continue
		}
		if _, ok := ve.Fields[tc.field]; !ok {
			t.Errorf("%s: expected error on %s, got %v", tc.name, tc.field, ve.Fields)
		}
	}
}

func TestValidateRejectsTicketlessAttraction(t *testing.T) {
	b := &Booking{
		UserID:   "user-1",
		Type:     TypeAttraction,
		TargetID: "65f000000000000000000002",
		Attraction: &AttractionDetails{
			VisitDate:  time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
			TicketType: "standard",
		},
	}

	err := b.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if _, ok := ve.Fields["attraction.tickets"]; !ok {
		t.Errorf("expected a tickets error, got %v", ve.Fields)
	}
}

func TestValidateRejectsUnknownType(t *testing.T) {
	b := &Booking{UserID: "user-1", TargetID: "x", Type: "flight"}
	err := b.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestEventDatePerType(t *testing.T) {
	date := time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC)

	hotel := &Booking{Type: TypeHotel, Hotel: &HotelDetails{CheckInDate: date}}
	if !hotel.EventDate().Equal(date) {
		t.Errorf("hotel event date = %v", hotel.EventDate())
	}

	restaurant := &Booking{Type: TypeRestaurant, Restaurant: &RestaurantDetails{ReservationDate: date}}
	if !restaurant.EventDate().Equal(date) {
		t.Errorf("restaurant event date = %v", restaurant.EventDate())
	}

	attraction := &Booking{Type: TypeAttraction, Attraction: &AttractionDetails{VisitDate: date}}
	if !attraction.EventDate().Equal(date) {
		t.Errorf("attraction event date = %v", attraction.EventDate())
	}

	if !(&Booking{Type: TypeHotel}).EventDate().IsZero() {
		t.Error("missing details should yield zero event date")
	}
}

func TestIsTerminal(t *testing.T) {
	for status, want := range map[BookingStatus]bool{
		StatusConfirmed: false,
		StatusPending:   false,
		StatusCancelled: true,
		StatusCompleted: true,
	} {
		b := &Booking{Status: status}
		if b.IsTerminal() != want {
			t.Errorf("IsTerminal(%s) = %v, want %v", status, b.IsTerminal(), want)
		}
	}
}
