package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GoArmGo/CatalogApp/internal/apperrors"
	"github.com/GoArmGo/CatalogApp/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  = "507f1f77bcf86cd799439011"
	testMediaID = "507f1f77bcf86cd799439012"
)

// stubFavoriteUseCase — управляемая заглушка usecase.FavoriteUseCase.
type stubFavoriteUseCase struct {
	addErr     error
	listResult []domain.FavoriteWithMedia
	listErr    error
	removeErr  error
	isFav      bool
	isFavErr   error
}

func (s *stubFavoriteUseCase) AddToFavorites(ctx context.Context, userID, mediaID string) error {
	return s.addErr
}

func (s *stubFavoriteUseCase) GetUserFavorites(ctx context.Context, userID string) ([]domain.FavoriteWithMedia, error) {
	return s.listResult, s.listErr
}

func (s *stubFavoriteUseCase) RemoveFromFavorites(ctx context.Context, userID, mediaID string) error {
	return s.removeErr
}

func (s *stubFavoriteUseCase) IsFavorite(ctx context.Context, userID, mediaID string) (bool, error) {
	return s.isFav, s.isFavErr
}

func newFavoriteRouter(stub *stubFavoriteUseCase) *chi.Mux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewFavoriteHandler(stub, logger)

	r := chi.NewRouter()
	r.Post("/users/{userId}/favorites", h.AddToFavorites)
	r.Get("/users/{userId}/favorites", h.GetFavoritesByUser)
	r.Get("/users/{userId}/favorites/{mediaId}", h.IsFavorite)
	r.Delete("/users/{userId}/favorites/{mediaId}", h.RemoveFromFavorites)
	return r
}

func TestAddToFavoritesHandler(t *testing.T) {
	t.Run("success returns 204", func(t *testing.T) {
		r := newFavoriteRouter(&stubFavoriteUseCase{})

		body := strings.NewReader(`{"media_id":"` + testMediaID + `"}`)
		req := httptest.NewRequest(http.MethodPost, "/users/"+testUserID+"/favorites", body)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("invalid media id in body returns 400", func(t *testing.T) {
		r := newFavoriteRouter(&stubFavoriteUseCase{})

		body := strings.NewReader(`{"media_id":"x"}`)
		req := httptest.NewRequest(http.MethodPost, "/users/"+testUserID+"/favorites", body)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		r := newFavoriteRouter(&stubFavoriteUseCase{})

		req := httptest.NewRequest(http.MethodPost, "/users/"+testUserID+"/favorites", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("NotFound maps to 404", func(t *testing.T) {
		r := newFavoriteRouter(&stubFavoriteUseCase{addErr: apperrors.NewNotFound("Media")})

		body := strings.NewReader(`{"media_id":"` + testMediaID + `"}`)
		req := httptest.NewRequest(http.MethodPost, "/users/"+testUserID+"/favorites", body)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Media not found", resp["message"])
	})

	t.Run("Conflict maps to 409", func(t *testing.T) {
		r := newFavoriteRouter(&stubFavoriteUseCase{addErr: apperrors.NewConflict("Media already in favorites")})

		body := strings.NewReader(`{"media_id":"` + testMediaID + `"}`)
		req := httptest.NewRequest(http.MethodPost, "/users/"+testUserID+"/favorites", body)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Server maps to 500", func(t *testing.T) {
		r := newFavoriteRouter(&stubFavoriteUseCase{addErr: apperrors.NewServer("Database operation failed")})

		body := strings.NewReader(`{"media_id":"` + testMediaID + `"}`)
		req := httptest.NewRequest(http.MethodPost, "/users/"+testUserID+"/favorites", body)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetFavoritesByUserHandler(t *testing.T) {
	t.Run("returns enriched favorites", func(t *testing.T) {
		stub := &stubFavoriteUseCase{
			listResult: []domain.FavoriteWithMedia{
				{
					UserID:  testUserID,
					MediaID: testMediaID,
					AddedAt: time.Now(),
					Media: domain.MediaSnapshot{
						ID:          testMediaID,
						Title:       "Inception",
						Type:        domain.MediaTypeMovie,
						ReleaseYear: 2010,
						Genre:       "sci-fi",
					},
				},
			},
		}
		r := newFavoriteRouter(stub)

		req := httptest.NewRequest(http.MethodGet, "/users/"+testUserID+"/favorites", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp []domain.FavoriteWithMedia
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, testUserID, resp[0].UserID)
		assert.Equal(t, "Inception", resp[0].Media.Title)
	})

	t.Run("empty list yields empty JSON array", func(t *testing.T) {
		r := newFavoriteRouter(&stubFavoriteUseCase{listResult: []domain.FavoriteWithMedia{}})

		req := httptest.NewRequest(http.MethodGet, "/users/"+testUserID+"/favorites", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("unknown user maps to 404", func(t *testing.T) {
		r := newFavoriteRouter(&stubFavoriteUseCase{listErr: apperrors.NewNotFound("User")})

		req := httptest.NewRequest(http.MethodGet, "/users/"+testUserID+"/favorites", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRemoveFromFavoritesHandler(t *testing.T) {
	t.Run("success returns 204", func(t *testing.T) {
		r := newFavoriteRouter(&stubFavoriteUseCase{})

		req := httptest.NewRequest(http.MethodDelete, "/users/"+testUserID+"/favorites/"+testMediaID, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("missing favorite maps to 404", func(t *testing.T) {
		r := newFavoriteRouter(&stubFavoriteUseCase{removeErr: apperrors.NewNotFound("Favorite")})

		req := httptest.NewRequest(http.MethodDelete, "/users/"+testUserID+"/favorites/"+testMediaID, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Favorite not found", resp["message"])
	})

	t.Run("invalid user id returns 400", func(t *testing.T) {
		r := newFavoriteRouter(&stubFavoriteUseCase{})

		req := httptest.NewRequest(http.MethodDelete, "/users/x/favorites/"+testMediaID, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestIsFavoriteHandler(t *testing.T) {
	t.Run("reports favorite status", func(t *testing.T) {
		r := newFavoriteRouter(&stubFavoriteUseCase{isFav: true})

		req := httptest.NewRequest(http.MethodGet, "/users/"+testUserID+"/favorites/"+testMediaID, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"favorite":true}`, rec.Body.String())
	})

	t.Run("storage failure maps to 500", func(t *testing.T) {
		r := newFavoriteRouter(&stubFavoriteUseCase{isFavErr: apperrors.NewServer("Database operation failed")})

		req := httptest.NewRequest(http.MethodGet, "/users/"+testUserID+"/favorites/"+testMediaID, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
