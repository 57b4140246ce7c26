package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"vision-nav/config"
	"vision-nav/internal/api/rest"
	"vision-nav/internal/api/telegram"
	"vision-nav/internal/container"
	"vision-nav/internal/domain/port"
	"vision-nav/internal/infrastructure/segmenter"
	"vision-nav/internal/infrastructure/storage"
	"vision-nav/internal/infrastructure/vision"
	"vision-nav/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(cfg, logger); err != nil {
		logger.Fatal("stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tables, err := config.LoadReferenceTables(cfg.ReferenceTablesPath)
	if err != nil {
		return err
	}

	// Хранилище пользователей: SQLite, если задан путь, иначе память
	var userRepo port.UserRepository = storage.NewMemoryUserRepository()
	if cfg.DatabasePath != "" {
		sqliteRepo, err := storage.NewSQLiteUserRepository(cfg.DatabasePath, logger.Named("storage"))
		if err != nil {
			return err
		}
		userRepo = sqliteRepo
	}

	codec, err := segmenter.ParseCodec(cfg.SegmenterCodec)
	if err != nil {
		return err
	}
	segmenterClient, err := segmenter.NewClient(segmenter.Config{
		URL:     cfg.SegmenterURL,
		Codec:   codec,
		Timeout: cfg.SegmenterTimeout,
	}, logger)
	if err != nil {
		return err
	}

	// Собираем сервисы приложения
	appContainer := container.New(container.Deps{
		Users:     userRepo,
		Segmenter: segmenterClient,
		Decoder:   vision.NewDecoder(),
		Contours:  vision.NewContourFinder(),
		Tables:    tables,
		Logger:    logger,
	})
	defer func() {
		if err := appContainer.Close(); err != nil {
			logger.Error("close container", zap.Error(err))
		}
	}()

	g, gctx := errgroup.WithContext(ctx)

	server := rest.NewServer(cfg.HTTPAddr, appContainer.GuidanceService, logger)
	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if cfg.TelegramToken != "" {
		bot, err := telegram.NewBot(cfg.TelegramToken, appContainer, cfg.DefaultFocalLengthPx, logger)
		if err != nil {
			stop()
			_ = g.Wait()
			return err
		}
		g.Go(func() error {
			logger.Info("bot is running")
			return bot.Run(gctx)
		})
	} else {
		logger.Info("TELEGRAM_TOKEN is empty, bot is disabled")
	}

	return g.Wait()
}
