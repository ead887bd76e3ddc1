package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/GoArmGo/CatalogApp/internal/apperrors"
	"github.com/GoArmGo/CatalogApp/internal/core/ports"
	"github.com/GoArmGo/CatalogApp/internal/domain"
)

// mediaUseCase implements MediaUseCase
type mediaUseCase struct {
	mediaStorage ports.MediaStorage
	logger       *slog.Logger
}

// NewMediaUseCase создает новый экземпляр MediaUseCase
func NewMediaUseCase(mediaStorage ports.MediaStorage, logger *slog.Logger) MediaUseCase {
	return &mediaUseCase{mediaStorage: mediaStorage, logger: logger}
}

// CreateMedia создает новую медиа-единицу каталога
func (uc *mediaUseCase) CreateMedia(ctx context.Context, req domain.CreateMediaRequest) (*domain.Media, error) {
	now := time.Now()
	media := &domain.Media{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		ReleaseYear: req.ReleaseYear,
		Genre:       req.Genre,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.mediaStorage.InsertMedia(ctx, media); err != nil {
		return nil, apperrors.Classify(err, msgDatabaseFailed)
	}

	uc.logger.Info("usecase: media created", "media_id", media.ID.Hex(), "title", media.Title)
	return media, nil
}

// GetMediaByID возвращает медиа-единицу по ID
func (uc *mediaUseCase) GetMediaByID(ctx context.Context, id string) (*domain.Media, error) {
	media, err := uc.mediaStorage.GetMediaByID(ctx, id)
	if err != nil {
		return nil, apperrors.Classify(err, msgDatabaseFailed)
	}
	if media == nil {
		return nil, apperrors.NewNotFound("Media")
	}
	return media, nil
}

// ListMedia возвращает весь каталог медиа
func (uc *mediaUseCase) ListMedia(ctx context.Context) ([]domain.Media, error) {
	medias, err := uc.mediaStorage.ListMedia(ctx)
	if err != nil {
		return nil, apperrors.Classify(err, msgDatabaseFailed)
	}
	return medias, nil
}
