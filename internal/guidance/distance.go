package guidance

import (
	"math"
	"strconv"

	"vision-nav/internal/domain/entity"
)

// StepLengthM средняя длина шага в метрах
const StepLengthM = 0.75

// EstimateRange оценивает расстояние до объекта по его известной высоте.
// Возвращает nil, если высота класса неизвестна или геометрия вырождена.
// Расстояние округляется по точному двоичному значению, шаги половиной вверх (math.Round).
func EstimateRange(tables *entity.ReferenceTables, class string, pixelHeight int, focalLengthPx float64) *entity.RangeEstimate {
	refHeight, ok := tables.Height(class)
	if !ok {
		return nil
	}
	if pixelHeight <= 0 || !(focalLengthPx > 0) || math.IsInf(focalLengthPx, 0) {
		return nil
	}

	distance := roundTo(refHeight*focalLengthPx/float64(pixelHeight), 2)
	return &entity.RangeEstimate{
		DistanceM: distance,
		Steps:     int(math.Round(distance / StepLengthM)),
	}
}

// roundTo округляет точное двоичное значение v до places знаков: 3.735 хранится
// как 3.73499..., поэтому даёт 3.73, а не 3.74
func roundTo(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}
