package services

import (
	"math"

	"github.com/adventureawaits/api/internal/models"
)

// Rate tables. Prices are rupees; multipliers are fixed per tier:
// standard 1.0, premium/deluxe 1.5, vip/suite 2.5.
const (
	hotelBaseNightly = 3000.0

	restaurantPerPerson = 1200.0

	attractionAdultFee   = 500.0
	attractionChildRate  = 0.5 // 50% of the adult fee
	attractionSeniorRate = 0.7 // 70% of the adult fee
	guidedTourSurcharge  = 1000.0
)

func tierMultiplier(tier string) float64 {
	switch tier {
	case "deluxe", "premium":
		return 1.5
	case "suite", "vip":
		return 2.5
	default:
		return 1.0
	}
}

// nights is the ceiling of the stay length in days, never below 1.
func nights(d *models.HotelDetails) int {
	n := int(math.Ceil(d.CheckOutDate.Sub(d.CheckInDate).Hours() / 24))
	if n < 1 {
		n = 1
	}
	return n
}

// ComputeTotalPrice derives the booking total deterministically from
// the type-specific payload. The caller has already validated the
// payload; unknown types price to zero.
func ComputeTotalPrice(b *models.Booking) float64 {
	switch b.Type {
	case models.TypeHotel:
		if b.Hotel == nil {
			return 0
		}
		return hotelBaseNightly * float64(nights(b.Hotel)) * float64(b.Hotel.Rooms) * tierMultiplier(b.Hotel.RoomType)
	case models.TypeRestaurant:
		if b.Restaurant == nil {
			return 0
		}
		return restaurantPerPerson * float64(b.Restaurant.PartySize)
	case models.TypeAttraction:
		if b.Attraction == nil {
			return 0
		}
		a := b.Attraction
		tickets := attractionAdultFee*float64(a.AdultTickets) +
			attractionAdultFee*attractionChildRate*float64(a.ChildTickets) +
			attractionAdultFee*attractionSeniorRate*float64(a.SeniorTickets)
		total := tickets * tierMultiplier(a.TicketType)
		if a.GuidedTour {
			total += guidedTourSurcharge
		}
		return total
	}
	return 0
}
