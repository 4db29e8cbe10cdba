package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OperatingHours struct {
	Open   string `bson:"open,omitempty" json:"open,omitempty"`   // HH:MM
	Close  string `bson:"close,omitempty" json:"close,omitempty"` // HH:MM
	Closed bool   `bson:"closed,omitempty" json:"closed,omitempty"`
}

type Attraction struct {
	ID             primitive.ObjectID        `bson:"_id,omitempty" json:"id"`
	Name           string                    `bson:"name" json:"name" validate:"required"`
	Description    string                    `bson:"description" json:"description" validate:"required"`
	Address        Address                   `bson:"address" json:"address"`
	Rating         float64                   `bson:"rating" json:"rating"`
	Category       string                    `bson:"category" json:"category" validate:"required"`
	EntryFee       float64                   `bson:"entry_fee" json:"entry_fee"`
	GuidedTours    bool                      `bson:"guided_tours" json:"guided_tours"`
	OperatingHours map[string]OperatingHours `bson:"operating_hours,omitempty" json:"operating_hours,omitempty"`
	Images         []string                  `bson:"images,omitempty" json:"images,omitempty"`
	FeaturedImage  string                    `bson:"featured_image,omitempty" json:"featured_image,omitempty"`
	CreatedAt      time.Time                 `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time                 `bson:"updated_at" json:"updated_at"`
}
