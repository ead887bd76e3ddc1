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

// MediaHandler — обработчик HTTP-запросов для работы с медиа-каталогом.
type MediaHandler struct {
	mediaUseCase usecase.MediaUseCase
	logger       *slog.Logger
}

// NewMediaHandler создаёт новый экземпляр MediaHandler.
func NewMediaHandler(uc usecase.MediaUseCase, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{mediaUseCase: uc, logger: logger}
}

// CreateMedia — создаёт новую медиа-единицу каталога.
// POST /media
func (h *MediaHandler) CreateMedia(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateMediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request data", h.logger)
		return
	}

	if err := validate.ValidateCreateMediaRequest(req); err != nil {
		h.logger.Warn("media validation failed", "error", err)
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	media, err := h.mediaUseCase.CreateMedia(r.Context(), req)
	if err != nil {
		h.logger.Error("failed to create media", "title", req.Title, "error", err)
		respondWithAppError(w, err, h.logger)
		return
	}

	h.logger.Info("media created", "media_id", media.ID.Hex())
	respondWithJSON(w, http.StatusCreated, media, h.logger)
}

// GetAllMedia — возвращает весь каталог медиа.
// GET /media
func (h *MediaHandler) GetAllMedia(w http.ResponseWriter, r *http.Request) {
	medias, err := h.mediaUseCase.ListMedia(r.Context())
	if err != nil {
		h.logger.Error("failed to list media", "error", err)
		respondWithAppError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, medias, h.logger)
}

// GetMediaByID — возвращает медиа-единицу по ID.
// GET /media/{id}
func (h *MediaHandler) GetMediaByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := validate.ValidateID(id); err != nil {
		h.logger.Warn("invalid media id", "media_id", id, "error", err)
		respondWithError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	media, err := h.mediaUseCase.GetMediaByID(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to get media", "media_id", id, "error", err)
		respondWithAppError(w, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, media, h.logger)
}
