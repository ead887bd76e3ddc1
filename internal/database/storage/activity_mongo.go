package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/CatalogApp/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const activityCollection = "activity"

// ActivityStorage реализует интерфейс ports.ActivityStorage поверх MongoDB
type ActivityStorage struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewActivityStorage создает новый экземпляр ActivityStorage
func NewActivityStorage(db *mongo.Database, logger *slog.Logger) *ActivityStorage {
	return &ActivityStorage{db: db, logger: logger}
}

// InsertActivity сохраняет запись журнала активности
func (s *ActivityStorage) InsertActivity(ctx context.Context, entry *domain.ActivityEntry) error {
	start := time.Now()

	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now()
	}

	_, err := s.db.Collection(activityCollection).InsertOne(ctx, entry)
	if err != nil {
		s.logger.Error("failed to insert activity entry",
			"event_id", entry.EventID,
			"event", entry.Event,
			"error", err,
		)
		return fmt.Errorf("ошибка при сохранении записи журнала активности: %w", err)
	}

	s.logger.Info("activity entry saved",
		"event_id", entry.EventID,
		"event", entry.Event,
		"user_id", entry.UserID,
		"media_id", entry.MediaID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
