package guidance

import (
	"fmt"

	"vision-nav/internal/domain/entity"
	"vision-nav/internal/domain/port"
)

// Aggregator собирает обнаружения в сводку по классам
type Aggregator struct {
	tables   *entity.ReferenceTables
	contours port.ContourFinder
}

// NewAggregator создаёт агрегатор
func NewAggregator(tables *entity.ReferenceTables, contours port.ContourFinder) *Aggregator {
	return &Aggregator{tables: tables, contours: contours}
}

// Aggregate обходит сегменты в порядке сегментатора. Исключённые классы и классы,
// не совпадающие с objectName (если он задан), пропускаются; сегменты без контура
// отбрасываются молча.
func (a *Aggregator) Aggregate(result *entity.SegmentationResult, focalLengthPx float64, objectName string) (*entity.Aggregation, error) {
	segments, err := result.Resolve(func(class string) bool {
		if a.tables.IsExcluded(class) {
			return false
		}
		return objectName == "" || class == objectName
	})
	if err != nil {
		return nil, fmt.Errorf("resolve segments: %w", err)
	}

	agg := entity.NewAggregation()
	for _, seg := range segments {
		det, ok, err := a.detect(seg, result.Height, result.Width, focalLengthPx)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		agg.Add(seg.Class, det)
	}

	return agg, nil
}

func (a *Aggregator) detect(seg entity.Segment, imgHeight, imgWidth int, focalLengthPx float64) (entity.Detection, bool, error) {
	box, ok := a.contours.LargestContour(seg.Mask)
	if !ok {
		return entity.Detection{}, false, nil
	}

	zone, err := ZoneFor(imgHeight, imgWidth, box)
	if err != nil {
		return entity.Detection{}, false, fmt.Errorf("segment %d: %w", seg.ID, err)
	}

	return entity.Detection{
		Zone:     zone,
		Estimate: EstimateRange(a.tables, seg.Class, box.Height, focalLengthPx),
	}, true, nil
}
