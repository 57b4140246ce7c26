package port

import (
	"context"

	"vision-nav/internal/domain/entity"
)

// Segmenter интерфейс внешнего сервиса паноптической сегментации
type Segmenter interface {
	// Segment отправляет изображение в модель и возвращает карту сегментов
	Segment(ctx context.Context, imageData []byte) (*entity.SegmentationResult, error)
}
