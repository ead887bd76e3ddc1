package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/CatalogApp/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client представляет клиент для взаимодействия с MongoDB
type Client struct {
	client *mongo.Client
	DB     *mongo.Database
	logger *slog.Logger
}

// NewClient инициализирует новое подключение к MongoDB и обеспечивает индексы
func NewClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Client, error) {
	start := time.Now()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetMaxPoolSize(25).
		SetMinPoolSize(5).
		SetMaxConnIdleTime(5 * time.Minute)

	mongoClient, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		logger.Error("failed to open MongoDB connection", "error", err)
		return nil, fmt.Errorf("ошибка открытия соединения с MongoDB: %w", err)
	}

	if err = mongoClient.Ping(connectCtx, readpref.Primary()); err != nil {
		logger.Error("failed to ping MongoDB", "error", err)
		return nil, fmt.Errorf("не удалось подключиться к MongoDB: %w", err)
	}

	db := mongoClient.Database(cfg.MongoDatabase)

	c := &Client{client: mongoClient, DB: db, logger: logger}

	if err := c.ensureIndexes(connectCtx); err != nil {
		return nil, fmt.Errorf("ошибка создания индексов MongoDB: %w", err)
	}

	logger.Info("MongoDB connection established successfully",
		"database", cfg.MongoDatabase,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return c, nil
}

// ensureIndexes создаёт индексы коллекций. Операция идемпотентна:
// существующие индексы с той же спецификацией не пересоздаются.
// Уникальный составной индекс favorites (userId, mediaId) страхует
// инвариант "не более одной записи на пару" при гонке check-then-act.
func (c *Client) ensureIndexes(ctx context.Context) error {
	start := time.Now()

	_, err := c.DB.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		c.logger.Error("failed to create users email index", "error", err)
		return fmt.Errorf("индекс users.email: %w", err)
	}

	_, err = c.DB.Collection("favorites").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "mediaId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		c.logger.Error("failed to create favorites compound index", "error", err)
		return fmt.Errorf("индекс favorites(userId, mediaId): %w", err)
	}

	c.logger.Info("MongoDB indexes ensured", "duration_ms", time.Since(start).Milliseconds())
	return nil
}

func (c *Client) Close(ctx context.Context) error {
	start := time.Now()

	disconnectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.client.Disconnect(disconnectCtx); err != nil {
		c.logger.Error("failed to close MongoDB connection", "error", err)
		return err
	}
	c.logger.Info("MongoDB connection closed", "duration_ms", time.Since(start).Milliseconds())
	return nil
}
