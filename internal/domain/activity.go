package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityEntry — запись журнала активности избранного,
// соответствует коллекции activity в MongoDB.
// Наполняется worker-ом из событий favorite.added / favorite.removed.
type ActivityEntry struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EventID    string             `json:"event_id" bson:"eventId"`
	Event      string             `json:"event" bson:"event"`
	UserID     string             `json:"user_id" bson:"userId"`
	MediaID    string             `json:"media_id" bson:"mediaId"`
	OccurredAt time.Time          `json:"occurred_at" bson:"occurredAt"`
	RecordedAt time.Time          `json:"recorded_at" bson:"recordedAt"`
}
