package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	inhttp "github.com/suchimauz/space-booking-slots-resolver/internal/adapters/in/http"
	"github.com/suchimauz/space-booking-slots-resolver/internal/adapters/in/rabbitmq"
	"github.com/suchimauz/space-booking-slots-resolver/internal/adapters/out/cache"
	"github.com/suchimauz/space-booking-slots-resolver/internal/adapters/out/logger"
	"github.com/suchimauz/space-booking-slots-resolver/internal/adapters/out/store"
	"github.com/suchimauz/space-booking-slots-resolver/internal/config"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/ports/out"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/services/availability_service"
	"github.com/suchimauz/space-booking-slots-resolver/internal/core/services/reassignment_service"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера с таймзоной
	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone, cfg.IsLocal())
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"rabbitmqEnabled": cfg.RabbitMq.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Инициализация адаптеров
	storeAdapter := store.NewStoreAdapter(cfg, mainLogger.WithModule("StoreAdapter"))

	var cacheAdapter out.CachePort
	if cfg.Cache.Enabled {
		lruCacheAdapter, err := cache.NewCacheAdapter(cfg, mainLogger.WithModule("CacheAdapter"))
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cacheAdapter = lruCacheAdapter
	}

	// Инициализация сервисов
	availabilityService := availability_service.NewAvailabilityService(
		storeAdapter,
		cacheAdapter,
		cfg,
		mainLogger,
	)
	reassignmentService := reassignment_service.NewReassignmentService(
		storeAdapter,
		availabilityService,
		mainLogger,
	)

	// Настройка HTTP сервера
	router := gin.Default()
	controller := inhttp.NewAvailabilityController(
		availabilityService,
		reassignmentService,
		cfg,
	)
	controller.RegisterRoutes(router)

	// Настройка RabbitMQ слушателя только если он включен
	if cfg.RabbitMq.Enabled {
		listener, err := rabbitmq.NewBookingEventListener(
			availabilityService,
			reassignmentService,
			cfg,
			mainLogger.WithModule("RabbitMQListener"),
		)
		if err != nil {
			log.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if err := listener.Start(ctx); err != nil {
			log.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		// Добавляем остановку RabbitMQ в defer
		defer func() {
			if err := listener.Stop(); err != nil {
				log.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
