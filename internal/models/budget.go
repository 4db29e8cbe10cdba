package models

import (
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var expenseCategories = map[string]bool{
	"transportation": true,
	"accommodation":  true,
	"food":           true,
	"activities":     true,
	"shopping":       true,
	"other":          true,
}

type Expense struct {
	Title    string    `bson:"title" json:"title" validate:"required"`
	Amount   float64   `bson:"amount" json:"amount" validate:"required,gt=0"`
	Category string    `bson:"category" json:"category" validate:"required"`
	Date     time.Time `bson:"date" json:"date"`
	Notes    string    `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Budget is a saved trip budget owned by a user. Duration is derived
// from the date range server-side, inclusive of both endpoints.
type Budget struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       string             `bson:"user_id" json:"user_id"`
	Title        string             `bson:"title" json:"title" validate:"required"`
	Destination  string             `bson:"destination" json:"destination" validate:"required"`
	StartDate    time.Time          `bson:"start_date" json:"start_date"`
	EndDate      time.Time          `bson:"end_date" json:"end_date"`
	Duration     int                `bson:"duration" json:"duration"`
	TotalBudget  float64            `bson:"total_budget" json:"total_budget" validate:"required,gt=0"`
	NumTravelers int                `bson:"num_travelers" json:"num_travelers" validate:"required,min=1"`

	TransportationBudget float64 `bson:"transportation_budget" json:"transportation_budget"`
	AccommodationBudget  float64 `bson:"accommodation_budget" json:"accommodation_budget"`
	FoodBudget           float64 `bson:"food_budget" json:"food_budget"`
	ActivitiesBudget     float64 `bson:"activities_budget" json:"activities_budget"`
	ShoppingBudget       float64 `bson:"shopping_budget" json:"shopping_budget"`
	OtherBudget          float64 `bson:"other_budget" json:"other_budget"`

	Expenses  []Expense `bson:"expenses,omitempty" json:"expenses,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ComputeDuration returns the trip length in whole days, inclusive.
func (b *Budget) ComputeDuration() int {
	if b.StartDate.IsZero() || b.EndDate.IsZero() || b.EndDate.Before(b.StartDate) {
		return 1
	}
	days := int(math.Ceil(b.EndDate.Sub(b.StartDate).Hours()/24)) + 1
	if days < 1 {
		return 1
	}
	return days
}

func (b *Budget) Validate() error {
	if err := Validate.Struct(b); err != nil {
		return NewValidationError("budget", err.Error())
	}
	if b.StartDate.IsZero() || b.EndDate.IsZero() {
		return NewValidationError("dates", "start and end dates are required")
	}
	if b.EndDate.Before(b.StartDate) {
		return NewValidationError("end_date", "end date cannot be before start date")
	}
	for i, e := range b.Expenses {
		if !expenseCategories[e.Category] {
			return NewValidationError("expenses", fmt.Sprintf("invalid category %q at index %d", e.Category, i))
		}
	}
	return nil
}
