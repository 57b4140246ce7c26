package guidance

import (
	"math"

	"vision-nav/internal/domain/entity"
)

// ZoneFor относит рамку объекта к зоне сетки 3x3.
// Используется середина нижней грани рамки, а не центр: это точка касания объекта с землёй.
func ZoneFor(imgHeight, imgWidth int, box entity.BoundingBox) (entity.Zone, error) {
	gridH := max(imgHeight/entity.GridSize, 1)
	gridW := max(imgWidth/entity.GridSize, 1)

	xCenter, yBase := box.BottomCenter()
	row := clampCell(int(math.Floor(float64(yBase) / float64(gridH))))
	col := clampCell(int(math.Floor(xCenter / float64(gridW))))

	return entity.ZoneAt(row, col)
}

func clampCell(v int) int {
	return min(max(v, 0), entity.GridSize-1)
}
