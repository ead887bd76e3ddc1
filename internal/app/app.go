package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/CatalogApp/internal/config"
	"github.com/GoArmGo/CatalogApp/internal/core/ports"
	"github.com/GoArmGo/CatalogApp/internal/database/client"
	"github.com/GoArmGo/CatalogApp/internal/usecase"
)

type App struct {
	Config                *config.Config
	logger                *slog.Logger
	dbClient              *client.Client
	favoriteUseCase       usecase.FavoriteUseCase
	userUseCase           usecase.UserUseCase
	mediaUseCase          usecase.MediaUseCase
	favoriteEventConsumer ports.FavoriteEventConsumer
	activityStorage       ports.ActivityStorage
	publisherCloser       interface{ Close() error }
}

func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	dbClient *client.Client,
	favoriteUseCase usecase.FavoriteUseCase,
	userUseCase usecase.UserUseCase,
	mediaUseCase usecase.MediaUseCase,
	favoriteEventConsumer ports.FavoriteEventConsumer,
	activityStorage ports.ActivityStorage,
	publisherCloser interface{ Close() error },
) *App {
	return &App{
		Config:                cfg,
		logger:                logger,
		dbClient:              dbClient,
		favoriteUseCase:       favoriteUseCase,
		userUseCase:           userUseCase,
		mediaUseCase:          mediaUseCase,
		favoriteEventConsumer: favoriteEventConsumer,
		activityStorage:       activityStorage,
		publisherCloser:       publisherCloser,
	}
}

// LoggerIns возвращает основной логгер приложения
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

func (a *App) Run(ctx context.Context, mode *string) error {
	// канал для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("application starting", "mode", *mode)

	var err error

	switch *mode {
	case "server":
		err = runServer(ctx, a.Config, a.logger, a.favoriteUseCase, a.userUseCase, a.mediaUseCase)

	case "worker":
		err = runWorker(ctx, a.logger, a.favoriteEventConsumer, a.activityStorage)

	default:
		err = fmt.Errorf("неизвестный режим: %s (используйте 'server' или 'worker')", *mode)
	}

	if err != nil {
		return err
	}

	a.logger.Info("shutting down application")

	// аккуратно закрываем ресурсы
	if closeErr := a.Shutdown(ctx); closeErr != nil {
		a.logger.Error("shutdown error", "error", closeErr)
	}

	a.logger.Info("application stopped")
	return nil
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown(ctx context.Context) error {
	if a.publisherCloser != nil {
		if err := a.publisherCloser.Close(); err != nil {
			a.logger.Error("failed to close message queue client", "error", err)
		}
	}

	if a.dbClient != nil {
		if err := a.dbClient.Close(context.WithoutCancel(ctx)); err != nil {
			return fmt.Errorf("ошибка закрытия соединения с БД: %w", err)
		}
	}

	return nil
}
