package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PriceRange buckets used by the catalog filters.
const (
	PriceBudget      = "Budget"
	PriceEconomy     = "Economy"
	PriceMidRange    = "Mid-range"
	PriceLuxury      = "Luxury"
	PriceUltraLuxury = "Ultra-luxury"
)

type Address struct {
	Street   string `bson:"street,omitempty" json:"street,omitempty"`
	City     string `bson:"city" json:"city"`
	State    string `bson:"state" json:"state"`
	Pincode  string `bson:"pincode,omitempty" json:"pincode,omitempty"`
	Country  string `bson:"country" json:"country"`
	Landmark string `bson:"landmark,omitempty" json:"landmark,omitempty"`
}

type RoomType struct {
	Name        string   `bson:"name" json:"name" validate:"required"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64  `bson:"price" json:"price" validate:"required,gt=0"`
	Capacity    int      `bson:"capacity" json:"capacity" validate:"required,min=1"`
	Amenities   []string `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Quantity    int      `bson:"quantity" json:"quantity" validate:"required,min=1"`
	BedType     string   `bson:"bed_type,omitempty" json:"bed_type,omitempty"`
}

type Hotel struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name" validate:"required"`
	Description   string             `bson:"description" json:"description" validate:"required"`
	Address       Address            `bson:"address" json:"address"`
	Rating        float64            `bson:"rating" json:"rating"`
	StarRating    int                `bson:"star_rating" json:"star_rating" validate:"required,min=1,max=7"`
	PriceRange    string             `bson:"price_range" json:"price_range" validate:"required,oneof=Budget Economy Mid-range Luxury Ultra-luxury"`
	RoomTypes     []RoomType         `bson:"room_types,omitempty" json:"room_types,omitempty"`
	Amenities     []string           `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Images        []string           `bson:"images,omitempty" json:"images,omitempty"`
	FeaturedImage string             `bson:"featured_image,omitempty" json:"featured_image,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
