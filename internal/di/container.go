package di

import (
	"context"

	"github.com/GoArmGo/CatalogApp/internal/app"
	"github.com/GoArmGo/CatalogApp/internal/config"
	"github.com/GoArmGo/CatalogApp/internal/core/ports"
	"github.com/GoArmGo/CatalogApp/internal/database/client"
	"github.com/GoArmGo/CatalogApp/internal/database/storage"
	"github.com/GoArmGo/CatalogApp/internal/logger"
	"github.com/GoArmGo/CatalogApp/internal/rabbitmq"
	"github.com/GoArmGo/CatalogApp/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp(ctx context.Context) (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogCfg := logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}
	slogger := logger.NewSlog(slogCfg)

	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация MongoDB клиента (подключение, ping, индексы)
	dbClient, err := client.NewClient(ctx, cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Инициализация хранилищ
	userStorage := storage.NewUserStorage(dbClient.DB, slogger)
	mediaStorage := storage.NewMediaStorage(dbClient.DB, slogger)
	favoriteStorage := storage.NewFavoriteStorage(dbClient.DB, slogger)
	activityStorage := storage.NewActivityStorage(dbClient.DB, slogger)

	// 4. Инициализация RabbitMQ клиента.
	// Без RABBITMQ_URL события избранного не публикуются,
	// worker-режим недоступен.
	var favoriteEventPublisher ports.FavoriteEventPublisher
	var favoriteEventConsumer ports.FavoriteEventConsumer
	var publisherCloser interface{ Close() error }

	if cfg.RabbitMQ.RabbitMQURL != "" {
		rabbitMQClient, err := rabbitmq.NewClient(cfg)
		if err != nil {
			return nil, err
		}
		favoriteEventPublisher = rabbitMQClient
		favoriteEventConsumer = rabbitMQClient
		publisherCloser = rabbitMQClient
	} else {
		slogger.Warn("RABBITMQ_URL is not set, favorite events will not be published")
	}

	// 5. Инициализация бизнес-логики (usecases)
	favoriteUseCase := usecase.NewFavoriteUseCase(userStorage, mediaStorage, favoriteStorage, favoriteEventPublisher, slogger)
	userUseCase := usecase.NewUserUseCase(userStorage, slogger)
	mediaUseCase := usecase.NewMediaUseCase(mediaStorage, slogger)

	// 6. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		slogger,
		dbClient,
		favoriteUseCase,
		userUseCase,
		mediaUseCase,
		favoriteEventConsumer,
		activityStorage,
		publisherCloser,
	)

	slogger.Info("all dependencies initialized")
	return application, nil
}
