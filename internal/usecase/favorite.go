package usecase

import (
	"context"

	"github.com/GoArmGo/CatalogApp/internal/domain"
)

// FavoriteUseCase определяет интерфейс бизнес-логики отношения "избранное".
// Это единственная часть системы с настоящими инвариантами: уникальность
// пары (user, media), существование обоих концов на момент записи,
// запрет повторного добавления. Хранилище не enforce-ит внешние ключи,
// поэтому целостность проверяется здесь, до записи.
type FavoriteUseCase interface {
	// AddToFavorites добавляет медиа в избранное пользователя.
	// Порядок проверок фиксирован: пользователь, затем медиа, затем дубликат.
	// Отсутствующий конец — NotFound, дубликат — Conflict.
	AddToFavorites(ctx context.Context, userID, mediaID string) error

	// GetUserFavorites возвращает избранное пользователя, обогащённое
	// текущими атрибутами медиа. Пустой список — валидный успешный результат,
	// отличный от "пользователь не найден".
	GetUserFavorites(ctx context.Context, userID string) ([]domain.FavoriteWithMedia, error)

	// RemoveFromFavorites удаляет запись избранного.
	// Отсутствующая запись — NotFound{"Favorite"}.
	RemoveFromFavorites(ctx context.Context, userID, mediaID string) error

	// IsFavorite — чистая проверка существования записи,
	// без валидации концов отношения.
	IsFavorite(ctx context.Context, userID, mediaID string) (bool, error)
}
