package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/CatalogApp/internal/domain"
	"github.com/GoArmGo/CatalogApp/internal/validate"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const usersCollection = "users"

// UserStorage реализует интерфейс ports.UserStorage поверх MongoDB
type UserStorage struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewUserStorage создает новый экземпляр UserStorage
func NewUserStorage(db *mongo.Database, logger *slog.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

// ExistsByID проверяет, существует ли живой пользователь с данным ID.
// Неправдоподобный идентификатор не может резолвиться в документ,
// поэтому отвечаем false без похода в хранилище.
func (s *UserStorage) ExistsByID(ctx context.Context, id string) (bool, error) {
	if !validate.IsObjectID(id) {
		return false, nil
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	count, err := s.db.Collection(usersCollection).CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		s.logger.Error("failed to check user existence", "user_id", id, "error", err)
		return false, fmt.Errorf("ошибка при проверке существования пользователя: %w", err)
	}
	return count > 0, nil
}

// InsertUser сохраняет нового пользователя в БД
func (s *UserStorage) InsertUser(ctx context.Context, user *domain.User) error {
	start := time.Now()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	_, err := s.db.Collection(usersCollection).InsertOne(ctx, user)
	if err != nil {
		s.logger.Error("failed to insert user", "email", user.Email, "error", err)
		return fmt.Errorf("ошибка при сохранении пользователя: %w", err)
	}

	s.logger.Info("user saved successfully",
		"user_id", user.ID.Hex(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// GetUserByID получает пользователя по ID. Возвращает (nil, nil), если не найден.
func (s *UserStorage) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	start := time.Now()

	if !validate.IsObjectID(id) {
		s.logger.Warn("user id is not a plausible ObjectID", "user_id", id)
		return nil, nil
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var user domain.User
	err = s.db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			s.logger.Warn("user not found by id", "user_id", id)
			return nil, nil
		}
		s.logger.Error("failed to get user by id", "user_id", id, "error", err)
		return nil, fmt.Errorf("ошибка при получении пользователя по ID: %w", err)
	}

	s.logger.Info("user retrieved by id",
		"user_id", id,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &user, nil
}

// GetUserByEmail получает пользователя по email. Возвращает (nil, nil), если не найден.
func (s *UserStorage) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.db.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		s.logger.Error("failed to get user by email", "email", email, "error", err)
		return nil, fmt.Errorf("ошибка при получении пользователя по email: %w", err)
	}
	return &user, nil
}

// ListUsers получает всех пользователей
func (s *UserStorage) ListUsers(ctx context.Context) ([]domain.User, error) {
	start := time.Now()

	cursor, err := s.db.Collection(usersCollection).Find(ctx, bson.M{})
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("ошибка при получении списка пользователей: %w", err)
	}
	defer cursor.Close(ctx)

	users := []domain.User{}
	if err := cursor.All(ctx, &users); err != nil {
		s.logger.Error("failed to decode users", "error", err)
		return nil, fmt.Errorf("ошибка при декодировании пользователей: %w", err)
	}

	s.logger.Info("listed users successfully",
		"count", len(users),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return users, nil
}
