package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/google/uuid"

	logger_adapter "github.com/snopkov906-sudo/krisha-parser/internal/adapters/logger"

	"github.com/snopkov906-sudo/krisha-parser/internal/adapters/krishafetcher"
	"github.com/snopkov906-sudo/krisha-parser/internal/adapters/seenfile"
	"github.com/snopkov906-sudo/krisha-parser/internal/adapters/telegram"
	"github.com/snopkov906-sudo/krisha-parser/internal/configs"
	"github.com/snopkov906-sudo/krisha-parser/internal/constants"
	"github.com/snopkov906-sudo/krisha-parser/internal/contextkeys"
	"github.com/snopkov906-sudo/krisha-parser/internal/core/domain"
	"github.com/snopkov906-sudo/krisha-parser/internal/core/port"
	"github.com/snopkov906-sudo/krisha-parser/internal/core/port/usecases"
	"github.com/snopkov906-sudo/krisha-parser/internal/core/usecase"
)

type App struct {
	config *configs.AppConfig

	watcher usecases.WatchAdsUseCase

	logger       port.LoggerPort
	fluentClient *fluent.Fluent // держим для корректного закрытия
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. Инициализация логгеров ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluent.New(fluent.Config{
			FluentHost:    appConfig.FluentBit.Host,
			FluentPort:    appConfig.FluentBit.Port,
			TagPrefix:     appConfig.AppName,
			MarshalAsJSON: true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers),
		"fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 2. Адаптеры ---
	fetcher, err := krishafetcher.NewKrishaFetcherAdapter(krishafetcher.Config{
		MapURL:         appConfig.Search.MapURL,
		RequestTimeout: appConfig.Scraper.RequestTimeout,
		RequestRetries: appConfig.Scraper.RequestRetries,
		RetryBackoff:   appConfig.Scraper.RetryBackoff,
	})
	if err != nil {
		appLogger.Error("Failed to create krisha fetcher", err, nil)
		return nil, err
	}
	appLogger.Info("Krisha fetcher initialized", port.Fields{"list_url": fetcher.ListURL()})

	messenger, err := telegram.NewMessengerAdapter(appConfig.Telegram.BotToken, appConfig.Telegram.ChatID)
	if err != nil {
		appLogger.Error("Failed to create telegram messenger", err, nil)
		return nil, err
	}

	seenStore := seenfile.NewStore(appConfig.SeenIDsFile)

	// --- 3. Use cases ---
	searchFilter := domain.SearchFilter{
		TargetRooms: appConfig.Search.TargetRooms,
		MaxPrice:    appConfig.Search.MaxPrice,
	}

	scraper := usecase.NewScrapeAdsUseCase(
		fetcher,
		appConfig.Search.MaxPages,
		appConfig.Scraper.MaxConsecutiveFailures,
		appConfig.Scraper.PageDelay,
	)
	notifier := usecase.NewNotifyAdsUseCase(messenger, searchFilter, constants.MessageCharLimit)
	watcher := usecase.NewWatchAdsUseCase(scraper, notifier, seenStore, searchFilter)

	return &App{
		config:       appConfig,
		watcher:      watcher,
		logger:       baseLogger,
		fluentClient: fluentClient,
	}, nil
}

// Run выполняет один цикл наблюдения и завершает процесс.
func (a *App) Run() error {
	defer func() {
		if a.fluentClient != nil {
			_ = a.fluentClient.Close()
		}
	}()

	traceID := uuid.New().String()
	runLogger := a.logger.WithFields(port.Fields{"trace_id": traceID})

	ctx := contextkeys.ContextWithTraceID(context.Background(), traceID)
	ctx = contextkeys.ContextWithLogger(ctx, runLogger)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runLogger.Info("Run started", port.Fields{
		"target_rooms": a.config.Search.TargetRooms,
		"max_price":    a.config.Search.MaxPrice,
		"max_pages":    a.config.Search.MaxPages,
	})

	if err := a.watcher.Execute(ctx); err != nil {
		runLogger.Error("Run failed", err, nil)
		return err
	}

	runLogger.Info("Run finished", nil)
	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
