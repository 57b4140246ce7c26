package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	TelegramToken        string        // пустой токен отключает бота
	HTTPAddr             string        // адрес HTTP API
	SegmenterURL         string        // адрес сервиса сегментации
	SegmenterCodec       string        // json или msgpack
	SegmenterTimeout     time.Duration // таймаут запроса к сегментатору
	DatabasePath         string        // без пути пользователи хранятся в памяти
	DefaultFocalLengthPx float64       // фокусное расстояние по умолчанию для бота
	ReferenceTablesPath  string        // YAML с дополнениями справочника
	LogLevel             string
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:       os.Getenv("TELEGRAM_TOKEN"),
		HTTPAddr:            getenv("HTTP_ADDR", ":8080"),
		SegmenterURL:        os.Getenv("SEGMENTER_URL"),
		SegmenterCodec:      getenv("SEGMENTER_CODEC", "json"),
		DatabasePath:        os.Getenv("DATABASE_PATH"),
		ReferenceTablesPath: os.Getenv("REFERENCE_TABLES_PATH"),
		LogLevel:            getenv("LOG_LEVEL", "info"),
	}

	timeout, err := cast.ToDurationE(getenv("SEGMENTER_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("SEGMENTER_TIMEOUT: %w", err)
	}
	cfg.SegmenterTimeout = timeout

	if v := os.Getenv("DEFAULT_FOCAL_LENGTH_PX"); v != "" {
		focal, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, fmt.Errorf("DEFAULT_FOCAL_LENGTH_PX: %w", err)
		}
		if focal < 0 {
			return nil, errors.New("DEFAULT_FOCAL_LENGTH_PX must not be negative")
		}
		cfg.DefaultFocalLengthPx = focal
	}

	if cfg.SegmenterURL == "" {
		return nil, errors.New("SEGMENTER_URL is required")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
