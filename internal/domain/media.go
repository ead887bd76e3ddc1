package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaType — тип медиа-контента в каталоге.
type MediaType string

const (
	MediaTypeMovie  MediaType = "movie"
	MediaTypeSeries MediaType = "series"
)

// Media представляет модель медиа-единицы каталога,
// соответствует коллекции media в MongoDB.
type Media struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Type        MediaType          `json:"type" bson:"type"`
	ReleaseYear int                `json:"release_year" bson:"releaseYear"`
	Genre       string             `json:"genre" bson:"genre"`
	CreatedAt   time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updatedAt"`
}

// CreateMediaRequest — тело запроса на создание медиа-единицы.
type CreateMediaRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        MediaType `json:"type"`
	ReleaseYear int       `json:"release_year"`
	Genre       string    `json:"genre"`
}
