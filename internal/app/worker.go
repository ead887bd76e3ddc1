package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/CatalogApp/internal/core/ports"
	"github.com/GoArmGo/CatalogApp/internal/domain"
	"github.com/GoArmGo/CatalogApp/internal/messaging/payloads"
)

// runWorker запускает потребителя RabbitMQ и наполняет журнал активности
// из событий избранного
func runWorker(
	ctx context.Context,
	logger *slog.Logger,
	consumer ports.FavoriteEventConsumer,
	activityStorage ports.ActivityStorage,
) error {
	if consumer == nil {
		return fmt.Errorf("worker-режим недоступен: RABBITMQ_URL не задан")
	}

	logger.Info("worker started, waiting for favorite events")

	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	// Обработчик событий избранного: каждое событие становится
	// записью журнала активности
	messageHandler := func(ctx context.Context, payload payloads.FavoriteEventPayload) error {
		logger.Info("worker: processing favorite event",
			"event_id", payload.EventID,
			"event", payload.Event,
			"user_id", payload.UserID,
			"media_id", payload.MediaID,
		)

		entry := &domain.ActivityEntry{
			EventID:    payload.EventID,
			Event:      payload.Event,
			UserID:     payload.UserID,
			MediaID:    payload.MediaID,
			OccurredAt: payload.OccurredAt,
		}

		if err := activityStorage.InsertActivity(ctx, entry); err != nil {
			logger.Error("worker: failed to record activity entry",
				"event_id", payload.EventID,
				"error", err,
			)
			return err
		}

		return nil
	}

	if err := consumer.StartConsumingFavoriteEvents(workerCtx, messageHandler); err != nil {
		return fmt.Errorf("ошибка при запуске потребителя RabbitMQ: %w", err)
	}

	// Ожидаем сигнал завершения
	<-ctx.Done()

	logger.Info("worker: termination signal received, stopping")
	cancelWorker()

	return nil
}
