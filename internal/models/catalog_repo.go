package models

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// catalogCacheTTL bounds staleness of cached catalog reads. Writes
// invalidate eagerly; the TTL is a backstop.
const catalogCacheTTL = 5 * time.Minute

// ListFilter carries the pass-through query parameters of the public
// catalog listing endpoints.
type ListFilter struct {
	City       string
	State      string
	Category   string
	Cuisine    string
	PriceRange string
	MinRating  float64
	Sort       string
	Page       int
	Limit      int
}

type CatalogRepo interface {
	// Resolve confirms the referenced item exists under the given kind.
	Resolve(ctx context.Context, kind BookingType, id string) error

	GetHotelByID(ctx context.Context, id string) (*Hotel, error)
	GetRestaurantByID(ctx context.Context, id string) (*Restaurant, error)
	GetAttractionByID(ctx context.Context, id string) (*Attraction, error)

	ListHotels(ctx context.Context, filter ListFilter) ([]*Hotel, int, error)
	ListRestaurants(ctx context.Context, filter ListFilter) ([]*Restaurant, int, error)
	ListAttractions(ctx context.Context, filter ListFilter) ([]*Attraction, int, error)

	CreateHotel(ctx context.Context, hotel *Hotel) (*Hotel, error)
	CreateRestaurant(ctx context.Context, restaurant *Restaurant) (*Restaurant, error)
	CreateAttraction(ctx context.Context, attraction *Attraction) (*Attraction, error)

	UpdateCatalogItem(ctx context.Context, kind BookingType, id string, set bson.M) error
	DeleteCatalogItem(ctx context.Context, kind BookingType, id string) error
}

func collectionFor(kind BookingType) (string, error) {
	switch kind {
	case TypeHotel:
		return HotelsColName, nil
	case TypeRestaurant:
		return RestaurantsColName, nil
	case TypeAttraction:
		return AttractionsColName, nil
	default:
		return "", NewValidationError("type", "type must be hotel, restaurant or attraction")
	}
}

func catalogCacheKey(kind BookingType, id string) string {
	return fmt.Sprintf("catalog:%s:%s", kind, id)
}

func (mdb *MongodbRepo) Resolve(ctx context.Context, kind BookingType, id string) error {
	colName, err := collectionFor(kind)
	if err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	col, err := mdb.GetCollection(ctx, DbName, colName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	count, err := col.CountDocuments(ctx, bson.M{"_id": oid}, options.Count().SetLimit(1))
	if err != nil {
		return fmt.Errorf("error resolving %s: %v", kind, err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// cacheGet fills dst from Redis when a fresh entry exists. A nil Redis
// client or any cache error falls through to the database read.
func (mdb *MongodbRepo) cacheGet(ctx context.Context, key string, dst interface{}) bool {
	if mdb.redisClient == nil {
		return false
	}
	raw, err := mdb.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (mdb *MongodbRepo) cacheSet(ctx context.Context, key string, v interface{}) {
	if mdb.redisClient == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = mdb.redisClient.Set(ctx, key, raw, catalogCacheTTL).Err()
}

func (mdb *MongodbRepo) cacheInvalidate(ctx context.Context, key string) {
	if mdb.redisClient == nil {
		return
	}
	_ = mdb.redisClient.Del(ctx, key).Err()
}

func (mdb *MongodbRepo) getCatalogItem(ctx context.Context, kind BookingType, id string, dst interface{}) error {
	key := catalogCacheKey(kind, id)
	if mdb.cacheGet(ctx, key, dst) {
		return nil
	}

	colName, err := collectionFor(kind)
	if err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	col, err := mdb.GetCollection(ctx, DbName, colName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}
	err = col.FindOne(ctx, bson.M{"_id": oid}).Decode(dst)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("error finding %s: %v", kind, err)
	}

	mdb.cacheSet(ctx, key, dst)
	return nil
}

func (mdb *MongodbRepo) GetHotelByID(ctx context.Context, id string) (*Hotel, error) {
	var hotel Hotel
	if err := mdb.getCatalogItem(ctx, TypeHotel, id, &hotel); err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (mdb *MongodbRepo) GetRestaurantByID(ctx context.Context, id string) (*Restaurant, error) {
	var restaurant Restaurant
	if err := mdb.getCatalogItem(ctx, TypeRestaurant, id, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (mdb *MongodbRepo) GetAttractionByID(ctx context.Context, id string) (*Attraction, error) {
	var attraction Attraction
	if err := mdb.getCatalogItem(ctx, TypeAttraction, id, &attraction); err != nil {
		return nil, err
	}
	return &attraction, nil
}

// buildCatalogFilter translates the listing query parameters directly
// into a Mongo filter document.
func buildCatalogFilter(f ListFilter) bson.M {
	filter := bson.M{}
	if f.City != "" {
		filter["address.city"] = f.City
	}
	if f.State != "" {
		filter["address.state"] = f.State
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Cuisine != "" {
		filter["cuisine"] = f.Cuisine
	}
	if f.PriceRange != "" {
		filter["price_range"] = f.PriceRange
	}
	if f.MinRating > 0 {
		filter["rating"] = bson.M{"$gte": f.MinRating}
	}
	return filter
}

func listOptions(f ListFilter) *options.FindOptions {
	opts := options.Find()
	sort := bson.D{{Key: "created_at", Value: -1}}
	switch f.Sort {
	case "rating":
		sort = bson.D{{Key: "rating", Value: -1}}
	case "name":
		sort = bson.D{{Key: "name", Value: 1}}
	}
	opts.SetSort(sort)

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 10
	}
	opts.SetSkip(int64((page - 1) * limit))
	opts.SetLimit(int64(limit))
	return opts
}

func (mdb *MongodbRepo) listCatalog(ctx context.Context, colName string, f ListFilter, decode func(*mongo.Cursor) error) (int, error) {
	col, err := mdb.GetCollection(ctx, DbName, colName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	filter := buildCatalogFilter(f)
	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting documents: %v", err)
	}

	cursor, err := col.Find(ctx, filter, listOptions(f))
	if err != nil {
		return 0, fmt.Errorf("error listing %s: %v", colName, err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		if err := decode(cursor); err != nil {
			return 0, err
		}
	}
	if err := cursor.Err(); err != nil {
		return 0, fmt.Errorf("cursor error: %v", err)
	}
	return int(total), nil
}

func (mdb *MongodbRepo) ListHotels(ctx context.Context, f ListFilter) ([]*Hotel, int, error) {
	hotels := []*Hotel{}
	total, err := mdb.listCatalog(ctx, HotelsColName, f, func(cur *mongo.Cursor) error {
		var h Hotel
		if err := cur.Decode(&h); err != nil {
			return fmt.Errorf("error decoding hotel: %v", err)
		}
		hotels = append(hotels, &h)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return hotels, total, nil
}

func (mdb *MongodbRepo) ListRestaurants(ctx context.Context, f ListFilter) ([]*Restaurant, int, error) {
	restaurants := []*Restaurant{}
	total, err := mdb.listCatalog(ctx, RestaurantsColName, f, func(cur *mongo.Cursor) error {
		var r Restaurant
		if err := cur.Decode(&r); err != nil {
			return fmt.Errorf("error decoding restaurant: %v", err)
		}
		restaurants = append(restaurants, &r)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return restaurants, total, nil
}

func (mdb *MongodbRepo) ListAttractions(ctx context.Context, f ListFilter) ([]*Attraction, int, error) {
	attractions := []*Attraction{}
	total, err := mdb.listCatalog(ctx, AttractionsColName, f, func(cur *mongo.Cursor) error {
		var a Attraction
		if err := cur.Decode(&a); err != nil {
			return fmt.Errorf("error decoding attraction: %v", err)
		}
		attractions = append(attractions, &a)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return attractions, total, nil
}

func (mdb *MongodbRepo) createCatalogItem(ctx context.Context, colName string, doc interface{}) error {
	col, err := mdb.GetCollection(ctx, DbName, colName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}
	if _, err := col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("error inserting into %s: %v", colName, err)
	}
	return nil
}

func (mdb *MongodbRepo) CreateHotel(ctx context.Context, hotel *Hotel) (*Hotel, error) {
	if hotel.ID.IsZero() {
		hotel.ID = primitive.NewObjectID()
	}
	if err := mdb.createCatalogItem(ctx, HotelsColName, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

func (mdb *MongodbRepo) CreateRestaurant(ctx context.Context, restaurant *Restaurant) (*Restaurant, error) {
	if restaurant.ID.IsZero() {
		restaurant.ID = primitive.NewObjectID()
	}
	if err := mdb.createCatalogItem(ctx, RestaurantsColName, restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (mdb *MongodbRepo) CreateAttraction(ctx context.Context, attraction *Attraction) (*Attraction, error) {
	if attraction.ID.IsZero() {
		attraction.ID = primitive.NewObjectID()
	}
	if err := mdb.createCatalogItem(ctx, AttractionsColName, attraction); err != nil {
		return nil, err
	}
	return attraction, nil
}

func (mdb *MongodbRepo) UpdateCatalogItem(ctx context.Context, kind BookingType, id string, set bson.M) error {
	colName, err := collectionFor(kind)
	if err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	col, err := mdb.GetCollection(ctx, DbName, colName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	set["updated_at"] = time.Now()
	res, err := col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error updating %s: %v", kind, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}

	mdb.cacheInvalidate(ctx, catalogCacheKey(kind, id))
	return nil
}

func (mdb *MongodbRepo) DeleteCatalogItem(ctx context.Context, kind BookingType, id string) error {
	colName, err := collectionFor(kind)
	if err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	col, err := mdb.GetCollection(ctx, DbName, colName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("error deleting %s: %v", kind, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	mdb.cacheInvalidate(ctx, catalogCacheKey(kind, id))
	return nil
}
