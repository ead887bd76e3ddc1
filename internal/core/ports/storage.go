package ports

import (
	"context"
	"time"

	"github.com/GoArmGo/CatalogApp/internal/domain"
)

// ExistenceChecker определяет единственный метод проверки существования
// сущности по идентификатору. Реализация обязана отвечать (false, nil)
// для неправдоподобного идентификатора без похода в хранилище.
type ExistenceChecker interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// UserStorage определяет методы для взаимодействия с хранилищем пользователей
type UserStorage interface {
	ExistenceChecker
	InsertUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// MediaStorage определяет методы для взаимодействия с хранилищем медиа-единиц
type MediaStorage interface {
	ExistenceChecker
	InsertMedia(ctx context.Context, media *domain.Media) error
	GetMediaByID(ctx context.Context, id string) (*domain.Media, error)
	ListMedia(ctx context.Context) ([]domain.Media, error)
}

// FavoriteStorage определяет CRUD-примитивы над отношением избранного.
// Целостность (существование обоих концов, отсутствие дубликата) проверяет
// вызывающий; примитивы безусловны.
type FavoriteStorage interface {
	// EdgeExists — точечная проверка по составному ключу (userID, mediaID).
	EdgeExists(ctx context.Context, userID, mediaID string) (bool, error)

	// InsertEdge — безусловная вставка записи избранного.
	InsertEdge(ctx context.Context, userID, mediaID string, addedAt time.Time) error

	// DeleteEdge — безусловное удаление; возвращает число затронутых записей
	// (0 или 1 при соблюдении инварианта уникальности).
	DeleteEdge(ctx context.Context, userID, mediaID string) (int64, error)

	// ListWithMedia возвращает избранное пользователя, обогащённое текущими
	// атрибутами медиа. Осиротевшие записи (медиа удалено) отфильтровываются
	// из результата, но остаются в хранилище.
	ListWithMedia(ctx context.Context, userID string) ([]domain.FavoriteWithMedia, error)
}

// ActivityStorage определяет методы журнала активности,
// который наполняет worker из событий избранного.
type ActivityStorage interface {
	InsertActivity(ctx context.Context, entry *domain.ActivityEntry) error
}
