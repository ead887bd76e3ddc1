package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/CatalogApp/internal/domain"
	"github.com/GoArmGo/CatalogApp/internal/usecase"
	"github.com/GoArmGo/CatalogApp/internal/validate"
	"github.com/go-chi/chi/v5"
)

// UserHandler — обработчик HTTP-запросов для работы с пользователями.
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler создаёт новый экземпляр UserHandler.
func NewUserHandler(uc usecase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{userUseCase: uc, logger: logger}
}

// CreateUser — создаёт нового пользователя.
// POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request data", h.logger)
		return
	}

	if err := validate.ValidateCreateUserRequest(req); err != nil {
		h.logger.Warn("user validation failed", "error", err)
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	user, err := h.userUseCase.CreateUser(r.Context(), req)
	if err != nil {
		h.logger.Error("failed to create user", "email", req.Email, "error", err)
		respondWithAppError(w, err, h.logger)
		return
	}

	h.logger.Info("user created", "user_id", user.ID.Hex())
	respondWithJSON(w, http.StatusCreated, user, h.logger)
}

// GetAllUsers — возвращает всех пользователей.
// GET /users
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUseCase.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("failed to list users", "error", err)
		respondWithAppError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, users, h.logger)
}

// GetUserByID — возвращает пользователя по ID.
// GET /users/{id}
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := validate.ValidateID(id); err != nil {
		h.logger.Warn("invalid user id", "user_id", id, "error", err)
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	user, err := h.userUseCase.GetUserByID(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to get user", "user_id", id, "error", err)
		respondWithAppError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, user, h.logger)
}
