package models

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

const (
	DbName = "adventureawaits"

	UsersColName       = "users"
	BookingsColName    = "bookings"
	HotelsColName      = "hotels"
	RestaurantsColName = "restaurants"
	AttractionsColName = "attractions"
	BudgetsColName     = "budgets"
)

// MongodbRepo is the shared base for all collection repositories. The
// optional Redis client backs the catalog read-through cache; a nil
// client disables caching without changing behaviour.
type MongodbRepo struct {
	mongodbClient *mongo.Client
	redisClient   *redis.Client
}

func MongodbNewRepo(mongodbClient *mongo.Client, redisClient *redis.Client) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		redisClient:   redisClient,
	}
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, dbName, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	return mdb.mongodbClient.Database(dbName).Collection(colName), nil
}
