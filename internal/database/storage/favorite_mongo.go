package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/CatalogApp/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const favoritesCollection = "favorites"

// FavoriteStorage реализует интерфейс ports.FavoriteStorage поверх MongoDB.
// Методы — безусловные примитивы над отношением: проверки целостности
// (существование концов, отсутствие дубликата) выполняет usecase-слой.
type FavoriteStorage struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewFavoriteStorage создает новый экземпляр FavoriteStorage
func NewFavoriteStorage(db *mongo.Database, logger *slog.Logger) *FavoriteStorage {
	return &FavoriteStorage{db: db, logger: logger}
}

// EdgeExists — точечная проверка записи избранного по составному ключу.
func (s *FavoriteStorage) EdgeExists(ctx context.Context, userID, mediaID string) (bool, error) {
	count, err := s.db.Collection(favoritesCollection).CountDocuments(ctx, bson.M{
		"userId":  userID,
		"mediaId": mediaID,
	})
	if err != nil {
		s.logger.Error("failed to check favorite existence",
			"user_id", userID,
			"media_id", mediaID,
			"error", err,
		)
		return false, fmt.Errorf("ошибка при проверке записи избранного: %w", err)
	}
	return count > 0, nil
}

// InsertEdge — безусловная вставка записи избранного.
// Дубликат (проигранная гонка с уникальным индексом) видна как ошибка вставки.
func (s *FavoriteStorage) InsertEdge(ctx context.Context, userID, mediaID string, addedAt time.Time) error {
	start := time.Now()

	favorite := domain.Favorite{
		UserID:  userID,
		MediaID: mediaID,
		AddedAt: addedAt,
	}

	_, err := s.db.Collection(favoritesCollection).InsertOne(ctx, favorite)
	if err != nil {
		s.logger.Error("failed to insert favorite",
			"user_id", userID,
			"media_id", mediaID,
			"error", err,
		)
		return fmt.Errorf("ошибка при сохранении записи избранного: %w", err)
	}

	s.logger.Info("favorite saved successfully",
		"user_id", userID,
		"media_id", mediaID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// DeleteEdge — безусловное удаление записи избранного.
// Возвращает число удалённых записей (0 или 1 при соблюдении уникальности).
func (s *FavoriteStorage) DeleteEdge(ctx context.Context, userID, mediaID string) (int64, error) {
	start := time.Now()

	result, err := s.db.Collection(favoritesCollection).DeleteOne(ctx, bson.M{
		"userId":  userID,
		"mediaId": mediaID,
	})
	if err != nil {
		s.logger.Error("failed to delete favorite",
			"user_id", userID,
			"media_id", mediaID,
			"error", err,
		)
		return 0, fmt.Errorf("ошибка при удалении записи избранного: %w", err)
	}

	s.logger.Info("favorite delete completed",
		"user_id", userID,
		"media_id", mediaID,
		"deleted", result.DeletedCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result.DeletedCount, nil
}

// ListWithMedia возвращает избранное пользователя, обогащённое текущими
// атрибутами медиа через aggregation $lookup. $unwind без preserveNull
// отбрасывает осиротевшие записи (медиа уже удалено) из результата,
// не трогая их в хранилище: чтение не мутирует состояние.
func (s *FavoriteStorage) ListWithMedia(ctx context.Context, userID string) ([]domain.FavoriteWithMedia, error) {
	start := time.Now()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "userId", Value: userID},
		}}},
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "mediaObjectId", Value: bson.D{{Key: "$toObjectId", Value: "$mediaId"}}},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: mediaCollection},
			{Key: "localField", Value: "mediaObjectId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "mediaDetails"},
		}}},
		bson.D{{Key: "$unwind", Value: "$mediaDetails"}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "id", Value: bson.D{{Key: "$toString", Value: "$_id"}}},
			{Key: "userId", Value: 1},
			{Key: "mediaId", Value: 1},
			{Key: "addedAt", Value: 1},
			{Key: "media", Value: bson.D{
				{Key: "id", Value: bson.D{{Key: "$toString", Value: "$mediaDetails._id"}}},
				{Key: "title", Value: "$mediaDetails.title"},
				{Key: "description", Value: "$mediaDetails.description"},
				{Key: "type", Value: "$mediaDetails.type"},
				{Key: "releaseYear", Value: "$mediaDetails.releaseYear"},
				{Key: "genre", Value: "$mediaDetails.genre"},
				{Key: "createdAt", Value: "$mediaDetails.createdAt"},
			}},
		}}},
	}

	cursor, err := s.db.Collection(favoritesCollection).Aggregate(ctx, pipeline)
	if err != nil {
		s.logger.Error("failed to aggregate user favorites", "user_id", userID, "error", err)
		return nil, fmt.Errorf("ошибка при получении избранного пользователя: %w", err)
	}
	defer cursor.Close(ctx)

	favorites := []domain.FavoriteWithMedia{}
	if err := cursor.All(ctx, &favorites); err != nil {
		s.logger.Error("failed to decode user favorites", "user_id", userID, "error", err)
		return nil, fmt.Errorf("ошибка при декодировании избранного пользователя: %w", err)
	}

	s.logger.Info("user favorites listed successfully",
		"user_id", userID,
		"count", len(favorites),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return favorites, nil
}
