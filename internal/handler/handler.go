package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/CatalogApp/internal/apperrors"
)

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — отправляет JSON-ответ с ошибкой.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"message": message}, logger)
}

// respondWithAppError переводит классифицированную ошибку в HTTP-статус:
// Validation — 400, NotFound — 404, Conflict — 409, Server и всё прочее — 500.
func respondWithAppError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var code int
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		code = http.StatusBadRequest
	case apperrors.KindNotFound:
		code = http.StatusNotFound
	case apperrors.KindConflict:
		code = http.StatusConflict
	default:
		code = http.StatusInternalServerError
	}

	message := err.Error()
	if apperrors.KindOf(err) == apperrors.KindUnknown {
		// Неклассифицированная ошибка не должна была дойти до границы;
		// наружу уходит только фиксированное сообщение
		logger.Error("unclassified error reached HTTP boundary", "error", err)
		message = "An unexpected error occurred"
	}

	respondWithError(w, code, message, logger)
}
