package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/adventureawaits/api/internal/models"
)

// FavoriteService manages the per-user saved item lists. Favorites are
// embedded in the user document, one list per catalog kind.
type FavoriteService struct {
	userRepo    models.UserRepo
	catalogRepo models.CatalogRepo
}

func NewFavoriteService(userRepo models.UserRepo, catalogRepo models.CatalogRepo) *FavoriteService {
	return &FavoriteService{
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
	}
}

// Add saves a catalog item to the user's favorites after confirming the
// item exists. Adding twice is a no-op.
func (fs *FavoriteService) Add(ctx context.Context, userID string, kind models.BookingType, itemID string) (*models.Favorites, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, models.ErrUnauthorized
	}
	if strings.TrimSpace(itemID) == "" {
		return nil, models.NewValidationError("item_id", "item id cannot be empty")
	}
	if err := fs.catalogRepo.Resolve(ctx, kind, itemID); err != nil {
		return nil, err
	}
	return fs.userRepo.AddFavorite(ctx, oid, kind, itemID)
}

// Remove drops an item from the user's favorites. Removing an id that
// was never saved is a no-op.
func (fs *FavoriteService) Remove(ctx context.Context, userID string, kind models.BookingType, itemID string) (*models.Favorites, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, models.ErrUnauthorized
	}
	if strings.TrimSpace(itemID) == "" {
		return nil, models.NewValidationError("item_id", "item id cannot be empty")
	}
	return fs.userRepo.RemoveFavorite(ctx, oid, kind, itemID)
}

// Contains reports whether the given item is saved under the kind's
// favorites list.
func (fs *FavoriteService) Contains(ctx context.Context, userID string, kind models.BookingType, itemID string) (bool, error) {
	favorites, err := fs.List(ctx, userID)
	if err != nil {
		return false, err
	}

	var ids []string
	switch kind {
	case models.TypeHotel:
		ids = favorites.Hotels
	case models.TypeRestaurant:
		ids = favorites.Restaurants
	case models.TypeAttraction:
		ids = favorites.Attractions
	default:
		return false, models.NewValidationError("kind", "kind must be hotel, restaurant or attraction")
	}

	for _, id := range ids {
		if id == itemID {
			return true, nil
		}
	}
	return false, nil
}

func (fs *FavoriteService) List(ctx context.Context, userID string) (*models.Favorites, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, models.ErrUnauthorized
	}
	user, err := fs.userRepo.GetUserByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	return &user.Favorites, nil
}
