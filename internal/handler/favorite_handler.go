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

// FavoriteHandler — обработчик HTTP-запросов для работы с избранным.
type FavoriteHandler struct {
	favoriteUseCase usecase.FavoriteUseCase
	logger          *slog.Logger
}

// NewFavoriteHandler создаёт новый экземпляр FavoriteHandler.
func NewFavoriteHandler(uc usecase.FavoriteUseCase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{favoriteUseCase: uc, logger: logger}
}

// AddToFavorites — добавляет медиа в избранное пользователя.
// POST /users/{userId}/favorites
func (h *FavoriteHandler) AddToFavorites(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if err := validate.ValidateID(userID); err != nil {
		h.logger.Warn("invalid user id", "user_id", userID, "error", err)
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	var req domain.AddToFavoritesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request data", h.logger)
		return
	}

	if err := validate.ValidateID(req.MediaID); err != nil {
		h.logger.Warn("invalid media id", "media_id", req.MediaID, "error", err)
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	h.logger.Info("processing request", "endpoint", "AddToFavorites", "user_id", userID, "media_id", req.MediaID)

	if err := h.favoriteUseCase.AddToFavorites(r.Context(), userID, req.MediaID); err != nil {
		h.logger.Error("failed to add to favorites", "user_id", userID, "media_id", req.MediaID, "error", err)
		respondWithAppError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetFavoritesByUser — возвращает избранное пользователя с деталями медиа.
// GET /users/{userId}/favorites
func (h *FavoriteHandler) GetFavoritesByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if err := validate.ValidateID(userID); err != nil {
		h.logger.Warn("invalid user id", "user_id", userID, "error", err)
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	h.logger.Info("processing request", "endpoint", "GetFavoritesByUser", "user_id", userID)

	favorites, err := h.favoriteUseCase.GetUserFavorites(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to fetch user favorites", "user_id", userID, "error", err)
		respondWithAppError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, favorites, h.logger)
}

// RemoveFromFavorites — удаляет медиа из избранного пользователя.
// DELETE /users/{userId}/favorites/{mediaId}
func (h *FavoriteHandler) RemoveFromFavorites(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	mediaID := chi.URLParam(r, "mediaId")

	if err := validate.ValidateID(userID); err != nil {
		h.logger.Warn("invalid user id", "user_id", userID, "error", err)
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if err := validate.ValidateID(mediaID); err != nil {
		h.logger.Warn("invalid media id", "media_id", mediaID, "error", err)
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	h.logger.Info("processing request", "endpoint", "RemoveFromFavorites", "user_id", userID, "media_id", mediaID)

	if err := h.favoriteUseCase.RemoveFromFavorites(r.Context(), userID, mediaID); err != nil {
		h.logger.Error("failed to remove from favorites", "user_id", userID, "media_id", mediaID, "error", err)
		respondWithAppError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// IsFavorite — проверяет, в избранном ли медиа у пользователя.
// GET /users/{userId}/favorites/{mediaId}
func (h *FavoriteHandler) IsFavorite(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	mediaID := chi.URLParam(r, "mediaId")

	if err := validate.ValidateID(userID); err != nil {
		h.logger.Warn("invalid user id", "user_id", userID, "error", err)
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if err := validate.ValidateID(mediaID); err != nil {
		h.logger.Warn("invalid media id", "media_id", mediaID, "error", err)
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	isFavorite, err := h.favoriteUseCase.IsFavorite(r.Context(), userID, mediaID)
	if err != nil {
		h.logger.Error("failed to check favorite", "user_id", userID, "media_id", mediaID, "error", err)
		respondWithAppError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{"favorite": isFavorite}, h.logger)
}
