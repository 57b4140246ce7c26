//go:build gocv
// +build gocv

package vision

import (
	"gocv.io/x/gocv"

	"vision-nav/internal/domain/entity"
	"vision-nav/internal/domain/port"
)

// ContourFinder ищет внешние контуры маски через OpenCV
type ContourFinder struct{}

// NewContourFinder создаёт поиск контуров на OpenCV.
func NewContourFinder() *ContourFinder {
	return &ContourFinder{}
}

// LargestContour возвращает рамку контура с наибольшей площадью (cv::contourArea).
// При равных площадях берётся контур, найденный первым.
func (f *ContourFinder) LargestContour(mask entity.Mask) (entity.BoundingBox, bool) {
	if mask.Width <= 0 || mask.Height <= 0 || len(mask.Pix) != mask.Width*mask.Height {
		return entity.BoundingBox{}, false
	}

	mat, err := gocv.NewMatFromBytes(mask.Height, mask.Width, gocv.MatTypeCV8UC1, mask.Pix)
	if err != nil {
		return entity.BoundingBox{}, false
	}
	defer mat.Close()

	contours := gocv.FindContours(mat, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	best := -1
	bestArea := -1.0
	for i := 0; i < contours.Size(); i++ {
		area := gocv.ContourArea(contours.At(i))
		if area > bestArea {
			best, bestArea = i, area
		}
	}
	if best < 0 {
		return entity.BoundingBox{}, false
	}

	rect := gocv.BoundingRect(contours.At(best))
	return entity.BoundingBox{
		X:      rect.Min.X,
		Y:      rect.Min.Y,
		Width:  rect.Dx(),
		Height: rect.Dy(),
	}, true
}

// Проверка реализации интерфейса
var _ port.ContourFinder = (*ContourFinder)(nil)
