package rest

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	app "vision-nav/internal/application"
	"vision-nav/internal/domain/entity"
)

// errBadRequest помечает ошибки разбора запроса
var errBadRequest = errors.New("bad request")

type detectResponse struct {
	ObjectResults []string `json:"object_results,omitempty"`
	AllResults    []string `json:"all_results,omitempty"`
}

type navigateResponse struct {
	Navigation    entity.NavigationReport `json:"navigation"`
	ObjectResults []string                `json:"object_results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleDetect POST /detect
func (s *Server) handleDetect(c *fiber.Ctx) error {
	imageData, focal, err := readFrame(c)
	if err != nil {
		return err
	}
	objectName := strings.TrimSpace(c.FormValue("object_name"))

	out, err := s.service.Detect(c.UserContext(), imageData, focal, objectName)
	if err != nil {
		return err
	}

	s.requestLogger(c).Info("detect",
		zap.Float64("focal_length_px", focal),
		zap.String("object_name", objectName),
		zap.Int("classes", out.Objects.Len()),
	)

	if objectName != "" {
		return c.JSON(detectResponse{ObjectResults: out.Results})
	}
	return c.JSON(detectResponse{AllResults: out.Results})
}

// handleNavigate POST /navigate
func (s *Server) handleNavigate(c *fiber.Ctx) error {
	imageData, focal, err := readFrame(c)
	if err != nil {
		return err
	}

	out, err := s.service.Navigate(c.UserContext(), imageData, focal)
	if err != nil {
		return err
	}

	s.requestLogger(c).Info("navigate",
		zap.Float64("focal_length_px", focal),
		zap.Stringer("direction", out.Navigation.Direction),
		zap.Int("classes", out.Objects.Len()),
	)

	return c.JSON(navigateResponse{
		Navigation:    out.Navigation,
		ObjectResults: out.Results,
	})
}

// readFrame достаёт из multipart-формы фото и фокусное расстояние
func readFrame(c *fiber.Ctx) ([]byte, float64, error) {
	header, err := c.FormFile("image")
	if err != nil {
		return nil, 0, fmt.Errorf("%w: image file is required", errBadRequest)
	}

	file, err := header.Open()
	if err != nil {
		return nil, 0, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		return nil, 0, fmt.Errorf("read image: %w", err)
	}

	raw := strings.TrimSpace(c.FormValue("focal_length_px"))
	if raw == "" {
		return nil, 0, fmt.Errorf("%w: focal_length_px is required", errBadRequest)
	}
	focal, err := cast.ToFloat64E(raw)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: focal_length_px: %v", errBadRequest, err)
	}

	return imageData, focal, nil
}

// handleError переводит ошибку в код ответа и тело {"error": ...}
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
	case errors.Is(err, errBadRequest),
		errors.Is(err, app.ErrInvalidFocalLength),
		errors.Is(err, app.ErrInvalidImage):
		status = fiber.StatusBadRequest
	}

	logger := s.requestLogger(c).With(zap.Int("status", status), zap.Error(err))
	if status >= fiber.StatusInternalServerError {
		logger.Error("request failed")
	} else {
		logger.Warn("request rejected")
	}

	return c.Status(status).JSON(errorResponse{Error: err.Error()})
}

func (s *Server) requestLogger(c *fiber.Ctx) *zap.Logger {
	id, _ := c.Locals(requestIDKey).(string)
	return s.logger.With(zap.String("request_id", id), zap.String("path", c.Path()))
}
