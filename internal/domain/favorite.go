package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorite представляет связующую модель для отношения Many-to-Many
// между User и Media, соответствует коллекции favorites в MongoDB.
// Составной естественный ключ — пара (UserID, MediaID): на пару
// существует не более одной записи (уникальный составной индекс).
// UserID и MediaID хранятся строками в hex-форме ObjectID.
type Favorite struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID  string             `json:"user_id" bson:"userId"`
	MediaID string             `json:"media_id" bson:"mediaId"`
	AddedAt time.Time          `json:"added_at" bson:"addedAt"`
}

// MediaSnapshot — моментальный снимок атрибутов медиа-единицы,
// присоединяемый к избранному при чтении. Не хранится отдельно.
type MediaSnapshot struct {
	ID          string    `json:"id" bson:"id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Type        MediaType `json:"type" bson:"type"`
	ReleaseYear int       `json:"release_year" bson:"releaseYear"`
	Genre       string    `json:"genre" bson:"genre"`
	CreatedAt   time.Time `json:"created_at" bson:"createdAt"`
}

// FavoriteWithMedia — производная read-only проекция: запись избранного,
// обогащённая текущими атрибутами медиа-единицы. Вычисляется только при
// чтении (aggregation $lookup), никогда не сохраняется.
type FavoriteWithMedia struct {
	ID      string        `json:"id" bson:"id"`
	UserID  string        `json:"user_id" bson:"userId"`
	MediaID string        `json:"media_id" bson:"mediaId"`
	AddedAt time.Time     `json:"added_at" bson:"addedAt"`
	Media   MediaSnapshot `json:"media" bson:"media"`
}

// AddToFavoritesRequest — тело запроса на добавление медиа в избранное.
type AddToFavoritesRequest struct {
	MediaID string `json:"media_id"`
}
