package app

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"vision-nav/internal/domain/entity"
	"vision-nav/internal/domain/port"
	"vision-nav/internal/guidance"
)

var (
	// ErrInvalidFocalLength фокусное расстояние не задано или не положительное
	ErrInvalidFocalLength = errors.New("focal_length_px must be a positive number")
	// ErrInvalidImage изображение не удалось декодировать
	ErrInvalidImage = errors.New("invalid image")
)

// DetectOutput результат поиска объектов
type DetectOutput struct {
	ObjectName string
	Results    []string
	Objects    *entity.Aggregation
}

// NavigateOutput результат навигации
type NavigateOutput struct {
	Navigation entity.NavigationReport
	Results    []string
	Objects    *entity.Aggregation
}

type GuidanceService struct {
	segmenter  port.Segmenter
	decoder    port.ImageDecoder
	aggregator *guidance.Aggregator
	navigator  *guidance.Navigator
	logger     *zap.Logger
}

// NewGuidanceService создаёт сервис, который превращает фото в подсказки для передвижения.
func NewGuidanceService(
	segmenter port.Segmenter,
	decoder port.ImageDecoder,
	contours port.ContourFinder,
	tables *entity.ReferenceTables,
	logger *zap.Logger,
) *GuidanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GuidanceService{
		segmenter:  segmenter,
		decoder:    decoder,
		aggregator: guidance.NewAggregator(tables, contours),
		navigator:  guidance.NewNavigator(tables, logger.Named("navigator")),
		logger:     logger,
	}
}

// Detect ищет объекты на фото; objectName ограничивает поиск одним классом.
func (s *GuidanceService) Detect(ctx context.Context, imageData []byte, focalLengthPx float64, objectName string) (*DetectOutput, error) {
	agg, err := s.aggregate(ctx, imageData, focalLengthPx, objectName)
	if err != nil {
		return nil, err
	}

	results := guidance.FormatResults(agg, objectName)
	s.logger.Info("detect done",
		zap.Float64("focal_length_px", focalLengthPx),
		zap.String("object_name", objectName),
		zap.Int("classes", agg.Len()),
	)

	return &DetectOutput{ObjectName: objectName, Results: results, Objects: agg}, nil
}

// Navigate строит подсказку направления по всем объектам на фото.
func (s *GuidanceService) Navigate(ctx context.Context, imageData []byte, focalLengthPx float64) (*NavigateOutput, error) {
	agg, err := s.aggregate(ctx, imageData, focalLengthPx, "")
	if err != nil {
		return nil, err
	}

	report := s.navigator.Navigate(agg)
	s.logger.Info("navigate done",
		zap.Float64("focal_length_px", focalLengthPx),
		zap.Int("classes", agg.Len()),
		zap.Stringer("direction", report.Direction),
		zap.Int("cautions", len(report.Cautions)),
	)

	return &NavigateOutput{
		Navigation: report,
		Results:    guidance.FormatResults(agg, ""),
		Objects:    agg,
	}, nil
}

func (s *GuidanceService) aggregate(ctx context.Context, imageData []byte, focalLengthPx float64, objectName string) (*entity.Aggregation, error) {
	if !(focalLengthPx > 0) || math.IsInf(focalLengthPx, 0) {
		return nil, ErrInvalidFocalLength
	}
	if s.segmenter == nil {
		return nil, errors.New("segmenter is not configured")
	}

	width, height, err := s.decoder.Size(imageData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	result, err := s.segmenter.Segment(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("segment image: %w", err)
	}
	if result.Width != width || result.Height != height {
		return nil, fmt.Errorf("segmentation size %dx%d does not match image %dx%d", result.Width, result.Height, width, height)
	}

	return s.aggregator.Aggregate(result, focalLengthPx, objectName)
}
