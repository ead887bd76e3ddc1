package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/CatalogApp/internal/config"
	"github.com/GoArmGo/CatalogApp/internal/handler"
	"github.com/GoArmGo/CatalogApp/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// runServer запускает HTTP сервер каталога
func runServer(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	favoriteUseCase usecase.FavoriteUseCase,
	userUseCase usecase.UserUseCase,
	mediaUseCase usecase.MediaUseCase,
) error {
	favoriteHandler := handler.NewFavoriteHandler(favoriteUseCase, logger)
	userHandler := handler.NewUserHandler(userUseCase, logger)
	mediaHandler := handler.NewMediaHandler(mediaUseCase, logger)

	r := chi.NewRouter()
	r.Use(handler.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(handler.CORS)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"pong":true}`))
	})

	r.Post("/users", userHandler.CreateUser)
	r.Get("/users", userHandler.GetAllUsers)
	r.Get("/users/{id}", userHandler.GetUserByID)

	r.Post("/media", mediaHandler.CreateMedia)
	r.Get("/media", mediaHandler.GetAllMedia)
	r.Get("/media/{id}", mediaHandler.GetMediaByID)

	r.Post("/users/{userId}/favorites", favoriteHandler.AddToFavorites)
	r.Get("/users/{userId}/favorites", favoriteHandler.GetFavoritesByUser)
	r.Get("/users/{userId}/favorites/{mediaId}", favoriteHandler.IsFavorite)
	r.Delete("/users/{userId}/favorites/{mediaId}", favoriteHandler.RemoveFromFavorites)

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful Shutdown
	select {
	case err := <-serverErr:
		return fmt.Errorf("ошибка при запуске сервера: %w", err)
	case <-ctx.Done():
	}

	logger.Info("termination signal received, shutting down server")

	ctxServer, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server shut down gracefully")
	return nil
}
