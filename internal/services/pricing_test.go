package services

import (
	"testing"
	"time"

	"github.com/adventureawaits/api/internal/models"
)

func TestHotelPricing(t *testing.T) {
	checkIn := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		nights int
		rooms  int
		room   string
		want   float64
	}{
		{"one standard room two nights", 2, 1, "standard", 6000},
		{"deluxe multiplier", 2, 1, "deluxe", 9000},
		{"suite multiplier", 1, 1, "suite", 7500},
		{"multiple rooms", 3, 2, "standard", 18000},
	}

	for _, tc := range cases {
		b := &models.Booking{
			Type: models.TypeHotel,
			Hotel: &models.HotelDetails{
				CheckInDate:  checkIn,
				CheckOutDate: checkIn.Add(time.Duration(tc.nights) * 24 * time.Hour),
				RoomType:     tc.room,
				Rooms:        tc.rooms,
			},
		}
		if got := ComputeTotalPrice(b); got != tc.want {
			t.Errorf("%s: price = %.2f, want %.2f", tc.name, got, tc.want)
		}
	}
}

func TestHotelPricingPartialNightRoundsUp(t *testing.T) {
	checkIn := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)
	b := &models.Booking{
		Type: models.TypeHotel,
		Hotel: &models.HotelDetails{
			CheckInDate:  checkIn,
			CheckOutDate: checkIn.Add(30 * time.Hour),
			RoomType:     "standard",
			Rooms:        1,
		},
	}
	// 30 hours counts as two nights.
	if got := ComputeTotalPrice(b); got != 6000 {
		t.Errorf("price = %.2f, want 6000", got)
	}
}

func TestRestaurantPricing(t *testing.T) {
	b := &models.Booking{
		Type: models.TypeRestaurant,
		Restaurant: &models.RestaurantDetails{
			PartySize: 4,
		},
	}
	if got := ComputeTotalPrice(b); got != 4800 {
		t.Errorf("price = %.2f, want 4800", got)
	}
}

func TestAttractionPricing(t *testing.T) {
	cases := []struct {
		name    string
		details models.AttractionDetails
		want    float64
	}{
		{
			"mixed party standard with tour",
			models.AttractionDetails{TicketType: "standard", AdultTickets: 2, ChildTickets: 1, SeniorTickets: 1, GuidedTour: true},
			// 1000 + 250 + 350 tickets, plus the tour surcharge.
			2600,
		},
		{
			"vip adults",
			models.AttractionDetails{TicketType: "vip", AdultTickets: 2},
			2500,
		},
		{
			"premium child",
			models.AttractionDetails{TicketType: "premium", ChildTickets: 2},
			750,
		},
	}

	for _, tc := range cases {
		d := tc.details
		b := &models.Booking{Type: models.TypeAttraction, Attraction: &d}
		if got := ComputeTotalPrice(b); got != tc.want {
			t.Errorf("%s: price = %.2f, want %.2f", tc.name, got, tc.want)
		}
	}
}

func TestPricingMissingDetails(t *testing.T) {
	b := &models.Booking{Type: models.TypeHotel}
	if got := ComputeTotalPrice(b); got != 0 {
		t.Errorf("price without details = %.2f, want 0", got)
	}
}
