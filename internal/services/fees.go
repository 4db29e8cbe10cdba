package services

import (
	"math"
	"time"

	"github.com/adventureawaits/api/internal/models"
)

// FeeBreakdown is the result of the cancellation fee calculation.
// RefundAmount is what the user gets back; the invariant
// 0 <= RefundAmount <= totalPrice always holds.
type FeeBreakdown struct {
	FeePercent   float64 `json:"fee_percent"`
	FeeAmount    float64 `json:"fee_amount"`
	RefundAmount float64 `json:"refund_amount"`
}

// DaysUntil returns the whole days between now and the event date,
// rounded up. Past dates clamp to 0, which lands in the most expensive
// fee tier.
func DaysUntil(now, eventDate time.Time) int {
	diff := eventDate.Sub(now)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// ComputeCancellationFee maps (booking type, days until event) to the
// fee tier and derives the refund. Tiers per type:
//
//	hotel:      >7d 10%, 4-7d 50%, 2-3d 75%, <=1d 100%
//	restaurant: >1d (more than 24h) 0%, <=1d 20%
//	attraction: >3d 20%, 2-3d 50%, <=1d 75%
func ComputeCancellationFee(bookingType models.BookingType, totalPrice float64, daysUntilEvent int) FeeBreakdown {
	var pct float64

	switch bookingType {
	case models.TypeHotel:
		switch {
		case daysUntilEvent > 7:
			pct = 10
		case daysUntilEvent >= 4:
			pct = 50
		case daysUntilEvent >= 2:
			pct = 75
		default:
			pct = 100
		}
	case models.TypeRestaurant:
		if daysUntilEvent > 1 {
			pct = 0
		} else {
			pct = 20
		}
	case models.TypeAttraction:
		switch {
		case daysUntilEvent > 3:
			pct = 20
		case daysUntilEvent >= 2:
			pct = 50
		default:
			pct = 75
		}
	}

	fee := totalPrice * pct / 100
	refund := totalPrice - fee
	if refund < 0 {
		refund = 0
	}
	if refund > totalPrice {
		refund = totalPrice
	}

	return FeeBreakdown{
		FeePercent:   pct,
		FeeAmount:    fee,
		RefundAmount: refund,
	}
}
