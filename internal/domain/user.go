// internal/domain/user.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User представляет модель пользователя в системе.
// Соответствует коллекции 'users' в MongoDB.
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	CreatedAt time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updatedAt"`
}

// CreateUserRequest — тело запроса на создание пользователя.
type CreateUserRequest struct {
	Email string `json:"email"`
}
