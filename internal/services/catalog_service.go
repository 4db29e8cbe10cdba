package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/adventureawaits/api/internal/models"
)

// CatalogService serves the public hotel, restaurant and attraction
// catalog. Reads are open; writes are admin only.
type CatalogService struct {
	catalogRepo models.CatalogRepo
}

func NewCatalogService(catalogRepo models.CatalogRepo) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
	}
}

func (cs *CatalogService) GetHotel(ctx context.Context, id string) (*models.Hotel, error) {
	return cs.catalogRepo.GetHotelByID(ctx, id)
}

func (cs *CatalogService) GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	return cs.catalogRepo.GetRestaurantByID(ctx, id)
}

func (cs *CatalogService) GetAttraction(ctx context.Context, id string) (*models.Attraction, error) {
	return cs.catalogRepo.GetAttractionByID(ctx, id)
}

func (cs *CatalogService) ListHotels(ctx context.Context, filter models.ListFilter) ([]*models.Hotel, int, error) {
	return cs.catalogRepo.ListHotels(ctx, filter)
}

func (cs *CatalogService) ListRestaurants(ctx context.Context, filter models.ListFilter) ([]*models.Restaurant, int, error) {
	return cs.catalogRepo.ListRestaurants(ctx, filter)
}

func (cs *CatalogService) ListAttractions(ctx context.Context, filter models.ListFilter) ([]*models.Attraction, int, error) {
	return cs.catalogRepo.ListAttractions(ctx, filter)
}

func (cs *CatalogService) CreateHotel(ctx context.Context, callerRole string, hotel *models.Hotel) (*models.Hotel, error) {
	if callerRole != models.RoleAdmin {
		return nil, models.ErrUnauthorized
	}
	if err := models.Validate.Struct(hotel); err != nil {
		return nil, models.NewValidationError("hotel", err.Error())
	}
	now := time.Now()
	hotel.CreatedAt = now
	hotel.UpdatedAt = now
	return cs.catalogRepo.CreateHotel(ctx, hotel)
}

func (cs *CatalogService) CreateRestaurant(ctx context.Context, callerRole string, restaurant *models.Restaurant) (*models.Restaurant, error) {
	if callerRole != models.RoleAdmin {
		return nil, models.ErrUnauthorized
	}
	if err := models.Validate.Struct(restaurant); err != nil {
		return nil, models.NewValidationError("restaurant", err.Error())
	}
	now := time.Now()
	restaurant.CreatedAt = now
	restaurant.UpdatedAt = now
	return cs.catalogRepo.CreateRestaurant(ctx, restaurant)
}

func (cs *CatalogService) CreateAttraction(ctx context.Context, callerRole string, attraction *models.Attraction) (*models.Attraction, error) {
	if callerRole != models.RoleAdmin {
		return nil, models.ErrUnauthorized
	}
	if err := models.Validate.Struct(attraction); err != nil {
		return nil, models.NewValidationError("attraction", err.Error())
	}
	now := time.Now()
	attraction.CreatedAt = now
	attraction.UpdatedAt = now
	return cs.catalogRepo.CreateAttraction(ctx, attraction)
}

// Update applies a partial document to a catalog item. Identity and
// bookkeeping fields cannot be overwritten through this path.
func (cs *CatalogService) Update(ctx context.Context, callerRole string, kind models.BookingType, id string, set bson.M) error {
	if callerRole != models.RoleAdmin {
		return models.ErrUnauthorized
	}
	delete(set, "_id")
	delete(set, "id")
	delete(set, "created_at")
	if len(set) == 0 {
		return models.NewValidationError("body", "no updatable fields provided")
	}
	return cs.catalogRepo.UpdateCatalogItem(ctx, kind, id, set)
}

func (cs *CatalogService) Delete(ctx context.Context, callerRole string, kind models.BookingType, id string) error {
	if callerRole != models.RoleAdmin {
		return models.ErrUnauthorized
	}
	return cs.catalogRepo.DeleteCatalogItem(ctx, kind, id)
}
