// Package rest отдаёт подсказки для навигации по HTTP: фото и фокусное расстояние на входе, текст на выходе.
package rest

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	app "vision-nav/internal/application"
)

// maxBodySize ограничение на размер загружаемого фото
const maxBodySize = 32 << 20

const requestIDKey = "request_id"

// GuidanceService то, что HTTP API требует от слоя приложения
type GuidanceService interface {
	Detect(ctx context.Context, imageData []byte, focalLengthPx float64, objectName string) (*app.DetectOutput, error)
	Navigate(ctx context.Context, imageData []byte, focalLengthPx float64) (*app.NavigateOutput, error)
}

// Server HTTP-сервер на fiber
type Server struct {
	app     *fiber.App
	addr    string
	service GuidanceService
	logger  *zap.Logger
}

// NewServer создаёт сервер и регистрирует маршруты
func NewServer(addr string, service GuidanceService, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		addr:    addr,
		service: service,
		logger:  logger.With(zap.String("component", "rest")),
	}

	fiberApp := fiber.New(fiber.Config{
		AppName:               "vision-nav",
		DisableStartupMessage: true,
		BodyLimit:             maxBodySize,
		ReadTimeout:           time.Minute,
		ErrorHandler:          s.handleError,
	})

	fiberApp.Use(recover.New())
	fiberApp.Use(requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	}))

	fiberApp.Get("/health", s.handleHealth)
	fiberApp.Post("/detect", s.handleDetect)
	fiberApp.Post("/navigate", s.handleNavigate)

	s.app = fiberApp
	return s
}

// App нужен тестам и для встраивания
func (s *Server) App() *fiber.App {
	return s.app
}

// Start блокирует до остановки сервера
func (s *Server) Start() error {
	s.logger.Info("http server listening", zap.String("addr", s.addr))
	return s.app.Listen(s.addr)
}

// Shutdown дожидается завершения активных запросов
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
