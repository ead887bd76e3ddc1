package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/GoArmGo/CatalogApp/internal/apperrors"
	"github.com/GoArmGo/CatalogApp/internal/core/ports"
	"github.com/GoArmGo/CatalogApp/internal/domain"
	"github.com/GoArmGo/CatalogApp/internal/messaging/payloads"
	"github.com/google/uuid"
)

// Фиксированные сообщения Server-ошибок: детали хранилища наружу не утекают.
const (
	msgDatabaseFailed  = "Database operation failed"
	msgAddFailed       = "Failed to add favorite"
	msgRemoveFailed    = "Failed to remove favorite"
	msgConflictMessage = "Media already in favorites"
)

// favoriteUseCase implements FavoriteUseCase
type favoriteUseCase struct {
	userStorage     ports.UserStorage
	mediaStorage    ports.MediaStorage
	favoriteStorage ports.FavoriteStorage
	eventPublisher  ports.FavoriteEventPublisher
	logger          *slog.Logger
}

// NewFavoriteUseCase создает новый экземпляр FavoriteUseCase.
// eventPublisher может быть nil — тогда события не публикуются.
func NewFavoriteUseCase(
	userStorage ports.UserStorage,
	mediaStorage ports.MediaStorage,
	favoriteStorage ports.FavoriteStorage,
	eventPublisher ports.FavoriteEventPublisher,
	logger *slog.Logger,
) FavoriteUseCase {
	return &favoriteUseCase{
		userStorage:     userStorage,
		mediaStorage:    mediaStorage,
		favoriteStorage: favoriteStorage,
		eventPublisher:  eventPublisher,
		logger:          logger,
	}
}

// mustExist конвертирует отрицательный результат проверки существования
// в NotFound с меткой сущности, а сбой хранилища — в Server.
func (uc *favoriteUseCase) mustExist(ctx context.Context, checker ports.ExistenceChecker, id, label string) error {
	exists, err := checker.ExistsByID(ctx, id)
	if err != nil {
		return apperrors.Classify(err, msgDatabaseFailed)
	}
	if !exists {
		return apperrors.NewNotFound(label)
	}
	return nil
}

// AddToFavorites добавляет медиа в избранное пользователя.
// Последовательность: существование пользователя, существование медиа,
// отсутствие дубликата, вставка. Ровно одна запись при успехе,
// ноль записей на любом пути отказа.
func (uc *favoriteUseCase) AddToFavorites(ctx context.Context, userID, mediaID string) error {
	if err := uc.mustExist(ctx, uc.userStorage, userID, "User"); err != nil {
		return err
	}
	if err := uc.mustExist(ctx, uc.mediaStorage, mediaID, "Media"); err != nil {
		return err
	}

	exists, err := uc.favoriteStorage.EdgeExists(ctx, userID, mediaID)
	if err != nil {
		return apperrors.Classify(err, msgDatabaseFailed)
	}
	if exists {
		// Повторное добавление отклоняется, а не проглатывается молча
		return apperrors.NewConflict(msgConflictMessage)
	}

	if err := uc.favoriteStorage.InsertEdge(ctx, userID, mediaID, time.Now()); err != nil {
		return apperrors.Classify(err, msgAddFailed)
	}

	uc.logger.Info("usecase: media added to favorites", "user_id", userID, "media_id", mediaID)
	uc.publishEvent(ctx, payloads.FavoriteAddedEvent, userID, mediaID)
	return nil
}

// GetUserFavorites возвращает избранное пользователя с деталями медиа
func (uc *favoriteUseCase) GetUserFavorites(ctx context.Context, userID string) ([]domain.FavoriteWithMedia, error) {
	if err := uc.mustExist(ctx, uc.userStorage, userID, "User"); err != nil {
		return nil, err
	}

	favorites, err := uc.favoriteStorage.ListWithMedia(ctx, userID)
	if err != nil {
		return nil, apperrors.Classify(err, msgDatabaseFailed)
	}

	uc.logger.Info("usecase: user favorites listed", "user_id", userID, "count", len(favorites))
	return favorites, nil
}

// RemoveFromFavorites удаляет запись избранного пользователя
func (uc *favoriteUseCase) RemoveFromFavorites(ctx context.Context, userID, mediaID string) error {
	if err := uc.mustExist(ctx, uc.userStorage, userID, "User"); err != nil {
		return err
	}

	exists, err := uc.favoriteStorage.EdgeExists(ctx, userID, mediaID)
	if err != nil {
		return apperrors.Classify(err, msgDatabaseFailed)
	}
	if !exists {
		return apperrors.NewNotFound("Favorite")
	}

	deleted, err := uc.favoriteStorage.DeleteEdge(ctx, userID, mediaID)
	if err != nil {
		return apperrors.Classify(err, msgRemoveFailed)
	}
	if deleted == 0 {
		// Гонка: запись существовала на проверке, но удаление не нашло её.
		// Фатальный, не повторяемый исход.
		uc.logger.Error("usecase: favorite vanished between existence check and delete",
			"user_id", userID,
			"media_id", mediaID,
		)
		return apperrors.NewServer(msgRemoveFailed)
	}

	uc.logger.Info("usecase: media removed from favorites", "user_id", userID, "media_id", mediaID)
	uc.publishEvent(ctx, payloads.FavoriteRemovedEvent, userID, mediaID)
	return nil
}

// IsFavorite проверяет, находится ли медиа в избранном пользователя
func (uc *favoriteUseCase) IsFavorite(ctx context.Context, userID, mediaID string) (bool, error) {
	exists, err := uc.favoriteStorage.EdgeExists(ctx, userID, mediaID)
	if err != nil {
		return false, apperrors.Classify(err, msgDatabaseFailed)
	}
	return exists, nil
}

// publishEvent публикует событие избранного best-effort:
// ошибка публикации логируется и не влияет на результат операции.
func (uc *favoriteUseCase) publishEvent(ctx context.Context, event, userID, mediaID string) {
	if uc.eventPublisher == nil {
		return
	}

	payload := payloads.FavoriteEventPayload{
		EventID:    uuid.NewString(),
		Event:      event,
		UserID:     userID,
		MediaID:    mediaID,
		OccurredAt: time.Now(),
	}

	if err := uc.eventPublisher.PublishFavoriteEvent(ctx, payload); err != nil {
		uc.logger.Warn("usecase: failed to publish favorite event",
			"event", event,
			"user_id", userID,
			"media_id", mediaID,
			"error", err,
		)
	}
}
