package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	AddFavorite(ctx context.Context, userID primitive.ObjectID, kind BookingType, itemID string) (*Favorites, error)
	RemoveFavorite(ctx context.Context, userID primitive.ObjectID, kind BookingType, itemID string) (*Favorites, error)
}

// favoritesField maps a booking type to the user document field that
// stores favorites of that kind.
func favoritesField(kind BookingType) (string, error) {
	switch kind {
	case TypeHotel:
		return "favorites.hotels", nil
	case TypeRestaurant:
		return "favorites.restaurants", nil
	case TypeAttraction:
		return "favorites.attractions", nil
	default:
		return "", NewValidationError("kind", "kind must be hotel, restaurant or attraction")
	}
}

func (mdb *MongodbRepo) CreateUser(ctx context.Context, user *User) (*User, error) {
	col, err := mdb.GetCollection(ctx, DbName, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	// Unique email check; the collection also carries a unique index as
	// the authoritative guard.
	count, err := col.CountDocuments(ctx, bson.M{"email": user.Email}, options.Count().SetLimit(1))
	if err != nil {
		return nil, fmt.Errorf("error checking email uniqueness: %v", err)
	}
	if count > 0 {
		return nil, NewValidationError("email", "email is already registered")
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, err := col.InsertOne(ctx, user); err != nil {
		return nil, fmt.Errorf("error inserting user: %v", err)
	}
	return user, nil
}

func (mdb *MongodbRepo) GetUserByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	col, err := mdb.GetCollection(ctx, DbName, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var user User
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding user: %v", err)
	}
	return &user, nil
}

func (mdb *MongodbRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	col, err := mdb.GetCollection(ctx, DbName, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var user User
	err = col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding user: %v", err)
	}
	return &user, nil
}

func (mdb *MongodbRepo) AddFavorite(ctx context.Context, userID primitive.ObjectID, kind BookingType, itemID string) (*Favorites, error) {
	field, err := favoritesField(kind)
	if err != nil {
		return nil, err
	}
	return mdb.updateFavorites(ctx, userID, bson.M{
		"$addToSet": bson.M{field: itemID},
		"$set":      bson.M{"updated_at": time.Now()},
	})
}

func (mdb *MongodbRepo) RemoveFavorite(ctx context.Context, userID primitive.ObjectID, kind BookingType, itemID string) (*Favorites, error) {
	field, err := favoritesField(kind)
	if err != nil {
		return nil, err
	}
	return mdb.updateFavorites(ctx, userID, bson.M{
		"$pull": bson.M{field: itemID},
		"$set":  bson.M{"updated_at": time.Now()},
	})
}

func (mdb *MongodbRepo) updateFavorites(ctx context.Context, userID primitive.ObjectID, update bson.M) (*Favorites, error) {
	col, err := mdb.GetCollection(ctx, DbName, UsersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user User
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": userID}, update, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating favorites: %v", err)
	}
	return &user.Favorites, nil
}
