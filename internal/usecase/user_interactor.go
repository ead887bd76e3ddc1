package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/GoArmGo/CatalogApp/internal/apperrors"
	"github.com/GoArmGo/CatalogApp/internal/core/ports"
	"github.com/GoArmGo/CatalogApp/internal/domain"
)

// userUseCase implements UserUseCase
type userUseCase struct {
	userStorage ports.UserStorage
	logger      *slog.Logger
}

// NewUserUseCase создает новый экземпляр UserUseCase
func NewUserUseCase(userStorage ports.UserStorage, logger *slog.Logger) UserUseCase {
	return &userUseCase{userStorage: userStorage, logger: logger}
}

// CreateUser создает нового пользователя с проверкой уникальности email
func (uc *userUseCase) CreateUser(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	existing, err := uc.userStorage.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.Classify(err, msgDatabaseFailed)
	}
	if existing != nil {
		return nil, apperrors.NewConflict("Email already exists")
	}

	now := time.Now()
	user := &domain.User{
		Email:     req.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userStorage.InsertUser(ctx, user); err != nil {
		return nil, apperrors.Classify(err, msgDatabaseFailed)
	}

	uc.logger.Info("usecase: user created", "user_id", user.ID.Hex(), "email", user.Email)
	return user, nil
}

// GetUserByID возвращает пользователя по ID
func (uc *userUseCase) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := uc.userStorage.GetUserByID(ctx, id)
	if err != nil {
		return nil, apperrors.Classify(err, msgDatabaseFailed)
	}
	if user == nil {
		return nil, apperrors.NewNotFound("User")
	}
	return user, nil
}

// ListUsers возвращает всех пользователей
func (uc *userUseCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := uc.userStorage.ListUsers(ctx)
	if err != nil {
		return nil, apperrors.Classify(err, msgDatabaseFailed)
	}
	return users, nil
}
