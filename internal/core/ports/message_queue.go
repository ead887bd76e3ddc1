package ports

import (
	"context"

	"github.com/GoArmGo/CatalogApp/internal/messaging/payloads"
)

// FavoriteEventPublisher определяет методы для публикации событий избранного.
// Используется оркестратором после успешных add/remove; публикация
// best-effort и не влияет на результат операции.
type FavoriteEventPublisher interface {
	PublishFavoriteEvent(ctx context.Context, payload payloads.FavoriteEventPayload) error
}

// FavoriteEventConsumer определяет методы для потребления событий избранного.
// Используется worker-ом для наполнения журнала активности.
type FavoriteEventConsumer interface {
	// StartConsumingFavoriteEvents начинает прослушивание очереди;
	// handler вызывается для каждого полученного события.
	StartConsumingFavoriteEvents(ctx context.Context, handler func(context.Context, payloads.FavoriteEventPayload) error) error
}
