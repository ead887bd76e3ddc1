package usecase

import (
	"context"

	"github.com/GoArmGo/CatalogApp/internal/domain"
)

// UserUseCase определяет интерфейс бизнес-логики работы с пользователями.
// Тонкие create/read операции: единственный инвариант — уникальность email.
type UserUseCase interface {
	// CreateUser создает нового пользователя. Дубликат email — Conflict.
	CreateUser(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error)

	// GetUserByID возвращает пользователя по ID или NotFound{"User"}.
	GetUserByID(ctx context.Context, id string) (*domain.User, error)

	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// MediaUseCase определяет интерфейс бизнес-логики работы с медиа-каталогом.
type MediaUseCase interface {
	// CreateMedia создает новую медиа-единицу каталога.
	CreateMedia(ctx context.Context, req domain.CreateMediaRequest) (*domain.Media, error)

	// GetMediaByID возвращает медиа-единицу по ID или NotFound{"Media"}.
	GetMediaByID(ctx context.Context, id string) (*domain.Media, error)

	// ListMedia возвращает весь каталог.
	ListMedia(ctx context.Context) ([]domain.Media, error)
}
