package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/CatalogApp/internal/domain"
	"github.com/GoArmGo/CatalogApp/internal/validate"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const mediaCollection = "media"

// MediaStorage реализует интерфейс ports.MediaStorage поверх MongoDB
type MediaStorage struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewMediaStorage создает новый экземпляр MediaStorage
func NewMediaStorage(db *mongo.Database, logger *slog.Logger) *MediaStorage {
	return &MediaStorage{db: db, logger: logger}
}

// ExistsByID проверяет, существует ли живая медиа-единица с данным ID.
// Неправдоподобный идентификатор — сразу false, без запроса к хранилищу.
func (s *MediaStorage) ExistsByID(ctx context.Context, id string) (bool, error) {
	if !validate.IsObjectID(id) {
		return false, nil
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	count, err := s.db.Collection(mediaCollection).CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		s.logger.Error("failed to check media existence", "media_id", id, "error", err)
		return false, fmt.Errorf("ошибка при проверке существования медиа: %w", err)
	}
	return count > 0, nil
}

// InsertMedia сохраняет новую медиа-единицу в БД
func (s *MediaStorage) InsertMedia(ctx context.Context, media *domain.Media) error {
	start := time.Now()

	if media.ID.IsZero() {
		media.ID = primitive.NewObjectID()
	}

	_, err := s.db.Collection(mediaCollection).InsertOne(ctx, media)
	if err != nil {
		s.logger.Error("failed to insert media", "title", media.Title, "error", err)
		return fmt.Errorf("ошибка при сохранении медиа: %w", err)
	}

	s.logger.Info("media saved successfully",
		"media_id", media.ID.Hex(),
		"title", media.Title,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// GetMediaByID получает медиа-единицу по ID. Возвращает (nil, nil), если не найдена.
func (s *MediaStorage) GetMediaByID(ctx context.Context, id string) (*domain.Media, error) {
	start := time.Now()

	if !validate.IsObjectID(id) {
		s.logger.Warn("media id is not a plausible ObjectID", "media_id", id)
		return nil, nil
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var media domain.Media
	err = s.db.Collection(mediaCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&media)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			s.logger.Warn("media not found by id", "media_id", id)
			return nil, nil
		}
		s.logger.Error("failed to get media by id", "media_id", id, "error", err)
		return nil, fmt.Errorf("ошибка при получении медиа по ID: %w", err)
	}

	s.logger.Info("media retrieved by id",
		"media_id", id,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &media, nil
}

// ListMedia получает все медиа-единицы каталога
func (s *MediaStorage) ListMedia(ctx context.Context) ([]domain.Media, error) {
	start := time.Now()

	cursor, err := s.db.Collection(mediaCollection).Find(ctx, bson.M{})
	if err != nil {
		s.logger.Error("failed to list media", "error", err)
		return nil, fmt.Errorf("ошибка при получении списка медиа: %w", err)
	}
	defer cursor.Close(ctx)

	medias := []domain.Media{}
	if err := cursor.All(ctx, &medias); err != nil {
		s.logger.Error("failed to decode media list", "error", err)
		return nil, fmt.Errorf("ошибка при декодировании списка медиа: %w", err)
	}

	s.logger.Info("listed media successfully",
		"count", len(medias),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return medias, nil
}
