package payloads

import "time"

// Виды событий избранного, публикуемых в RabbitMQ.
const (
	FavoriteAddedEvent   = "favorite.added"
	FavoriteRemovedEvent = "favorite.removed"
)

// FavoriteEventPayload представляет событие изменения избранного,
// передаваемое через RabbitMQ в журнал активности.
type FavoriteEventPayload struct {
	EventID    string    `json:"event_id"`
	Event      string    `json:"event"`
	UserID     string    `json:"user_id"`
	MediaID    string    `json:"media_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
