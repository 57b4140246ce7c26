//go:build !gocv
// +build !gocv

package vision

import (
	"image"

	"vision-nav/internal/domain/entity"
	"vision-nav/internal/domain/port"
)

// ContourFinder ищет внешние контуры маски без OpenCV. Маска рассматривается
// в паре связностей 8/4: пиксели объекта связаны по 8 соседям, фон по 4.
// Внешний контур охватывает компоненту вместе с её дырами и всем, что в них лежит.
type ContourFinder struct{}

// NewContourFinder создаёт поиск контуров на чистом Go.
func NewContourFinder() *ContourFinder {
	return &ContourFinder{}
}

var (
	neighbours4 = []image.Point{image.Pt(0, -1), image.Pt(-1, 0), image.Pt(1, 0), image.Pt(0, 1)}
	neighbours8 = []image.Point{
		image.Pt(-1, -1), image.Pt(0, -1), image.Pt(1, -1),
		image.Pt(-1, 0), image.Pt(1, 0),
		image.Pt(-1, 1), image.Pt(0, 1), image.Pt(1, 1),
	}
)

// LargestContour возвращает рамку внешнего контура с наибольшей охватываемой площадью.
// Площадь считается как у cv::contourArea для многоугольника через центры
// граничных пикселей (формула Пика). Контуры перебираются построчно;
// при равных площадях берётся найденный первым.
func (f *ContourFinder) LargestContour(mask entity.Mask) (entity.BoundingBox, bool) {
	if mask.Width <= 0 || mask.Height <= 0 || len(mask.Pix) != mask.Width*mask.Height {
		return entity.BoundingBox{}, false
	}

	outside := outerBackground(mask)
	seen := make([]bool, len(mask.Pix))

	var best entity.BoundingBox
	bestArea := -1.0
	found := false

	for y := 0; y < mask.Height; y++ {
		for x := 0; x < mask.Width; x++ {
			idx := y*mask.Width + x
			if seen[idx] || outside[idx] {
				continue
			}
			box, area := fillRegion(mask, outside, seen, image.Pt(x, y))
			if area > bestArea {
				best, bestArea, found = box, area, true
			}
		}
	}

	return best, found
}

// outerBackground отмечает фон, достижимый от края кадра по 4 соседям.
// Всё остальное (объекты и их дыры) лежит внутри внешних контуров.
func outerBackground(mask entity.Mask) []bool {
	outside := make([]bool, len(mask.Pix))
	var queue []image.Point

	push := func(p image.Point) {
		idx := p.Y*mask.Width + p.X
		if outside[idx] || mask.Pix[idx] != 0 {
			return
		}
		outside[idx] = true
		queue = append(queue, p)
	}

	for x := 0; x < mask.Width; x++ {
		push(image.Pt(x, 0))
		push(image.Pt(x, mask.Height-1))
	}
	for y := 0; y < mask.Height; y++ {
		push(image.Pt(0, y))
		push(image.Pt(mask.Width-1, y))
	}

	for len(queue) != 0 {
		pt := queue[0]
		queue = queue[1:]
		for _, d := range neighbours4 {
			n := pt.Add(d)
			if inBounds(mask, n) {
				push(n)
			}
		}
	}

	return outside
}

// fillRegion обходит по 8 соседям область внутри одного внешнего контура и
// возвращает её рамку и площадь многоугольника контура
func fillRegion(mask entity.Mask, outside, seen []bool, start image.Point) (entity.BoundingBox, float64) {
	queue := []image.Point{start}
	seen[start.Y*mask.Width+start.X] = true
	x0, y0, x1, y1 := start.X, start.Y, start.X, start.Y
	pixels, boundary := 0, 0

	for len(queue) != 0 {
		pt := queue[0]
		queue = queue[1:]
		pixels++
		if onOuterBoundary(mask, outside, pt) {
			boundary++
		}

		x0, y0 = min(x0, pt.X), min(y0, pt.Y)
		x1, y1 = max(x1, pt.X), max(y1, pt.Y)

		for _, d := range neighbours8 {
			n := pt.Add(d)
			if !inBounds(mask, n) {
				continue
			}
			idx := n.Y*mask.Width + n.X
			if seen[idx] || outside[idx] {
				continue
			}
			seen[idx] = true
			queue = append(queue, n)
		}
	}

	// Пик: пиксели области = внутренние + граничные точки многоугольника,
	// площадь = внутренние + граничные/2 - 1
	area := max(float64(pixels)-float64(boundary)/2-1, 0)

	box := entity.BoundingBox{X: x0, Y: y0, Width: x1 - x0 + 1, Height: y1 - y0 + 1}
	return box, area
}

// onOuterBoundary пиксель касается внешнего фона или края кадра
func onOuterBoundary(mask entity.Mask, outside []bool, pt image.Point) bool {
	for _, d := range neighbours4 {
		n := pt.Add(d)
		if !inBounds(mask, n) || outside[n.Y*mask.Width+n.X] {
			return true
		}
	}
	return false
}

func inBounds(mask entity.Mask, p image.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < mask.Width && p.Y < mask.Height
}

// Проверка реализации интерфейса
var _ port.ContourFinder = (*ContourFinder)(nil)
