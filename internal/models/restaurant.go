package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReservationSettings struct {
	AcceptsReservations bool     `bson:"accepts_reservations" json:"accepts_reservations"`
	AvailableTimeSlots  []string `bson:"available_time_slots,omitempty" json:"available_time_slots,omitempty"`
	MinPartySize        int      `bson:"min_party_size,omitempty" json:"min_party_size,omitempty"`
	MaxPartySize        int      `bson:"max_party_size,omitempty" json:"max_party_size,omitempty"`
}

type Restaurant struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name          string              `bson:"name" json:"name" validate:"required"`
	Description   string              `bson:"description" json:"description" validate:"required"`
	Address       Address             `bson:"address" json:"address"`
	Rating        float64             `bson:"rating" json:"rating"`
	Cuisine       []string            `bson:"cuisine,omitempty" json:"cuisine,omitempty"`
	PriceRange    string              `bson:"price_range" json:"price_range" validate:"required"`
	Reservations  ReservationSettings `bson:"reservations" json:"reservations"`
	Images        []string            `bson:"images,omitempty" json:"images,omitempty"`
	FeaturedImage string              `bson:"featured_image,omitempty" json:"featured_image,omitempty"`
	CreatedAt     time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time           `bson:"updated_at" json:"updated_at"`
}
