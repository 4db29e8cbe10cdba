package container

import (
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adventureawaits/api/internal/models"
	"github.com/adventureawaits/api/internal/queue"
	"github.com/adventureawaits/api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	MongoDBClient *mongo.Client
	RedisClient   *redis.Client

	UserService     *services.UserService
	CatalogService  *services.CatalogService
	BookingService  *services.BookingService
	FavoriteService *services.FavoriteService
	BudgetService   *services.BudgetService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	mongoDBClient *mongo.Client,
	redisClient *redis.Client,
	rabbitConn *amqp.Connection,
) *Container {
	repo := models.MongodbNewRepo(mongoDBClient, redisClient)
	publisher := queue.NewPublisher(rabbitConn, logger)

	return &Container{
		Logger:          logger,
		MongoDBClient:   mongoDBClient,
		RedisClient:     redisClient,
		UserService:     services.NewUserService(repo),
		CatalogService:  services.NewCatalogService(repo),
		BookingService:  services.NewBookingService(repo, repo, publisher),
		FavoriteService: services.NewFavoriteService(repo, repo),
		BudgetService:   services.NewBudgetService(repo),
	}
}
