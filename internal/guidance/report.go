package guidance

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"vision-nav/internal/domain/entity"
)

// FormatResults возвращает по одному предложению на класс.
// Пустая сводка даёт одно сообщение «ничего не найдено».
func FormatResults(agg *entity.Aggregation, objectName string) []string {
	if agg.Empty() {
		if objectName != "" {
			return []string{fmt.Sprintf("No %s detected in the image.", objectName)}
		}
		return []string{"No objects detected in the image."}
	}

	return lo.Map(agg.Summaries(), func(s *entity.ClassSummary, _ int) string {
		positions := lo.Map(s.Detections, func(d entity.Detection, _ int) string {
			return d.Zone.String()
		})
		return summaryLine(s, positions)
	})
}

// DescribeNavigation подробный отчёт для навигации: к зоне добавляется число шагов
func DescribeNavigation(agg *entity.Aggregation) []string {
	return lo.Map(agg.Summaries(), func(s *entity.ClassSummary, _ int) string {
		positions := lo.Map(s.Detections, func(d entity.Detection, _ int) string {
			if r, ok := d.Range(); ok {
				return fmt.Sprintf("%s in %d steps", d.Zone, r.Steps)
			}
			return d.Zone.String()
		})
		return summaryLine(s, positions)
	})
}

func summaryLine(s *entity.ClassSummary, positions []string) string {
	head := fmt.Sprintf("%d %s(s) detected at %s", s.Count(), s.Class, strings.Join(positions, ", "))
	if !s.HasRange() {
		return head + "."
	}

	ranges := lo.FilterMap(s.Detections, func(d entity.Detection, _ int) (entity.RangeEstimate, bool) {
		return d.Range()
	})
	distances := lo.Map(ranges, func(r entity.RangeEstimate, _ int) string {
		return FormatMeters(r.DistanceM) + "m"
	})
	steps := lo.Map(ranges, func(r entity.RangeEstimate, _ int) string {
		return fmt.Sprintf("%d steps", r.Steps)
	})

	return fmt.Sprintf("%s with distances: %s and steps: %s.", head, strings.Join(distances, ", "), strings.Join(steps, ", "))
}

// FormatMeters печатает расстояние кратчайшей записью, у целых значений остаётся «.0»
func FormatMeters(d float64) string {
	s := strconv.FormatFloat(d, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
