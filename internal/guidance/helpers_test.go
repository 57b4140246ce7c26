package guidance

import (
	"vision-nav/internal/domain/entity"
)

// boxFinder считает весь сегмент одним контуром
type boxFinder struct{}

func (boxFinder) LargestContour(mask entity.Mask) (entity.BoundingBox, bool) {
	x0, y0, x1, y1 := mask.Width, mask.Height, -1, -1
	for y := 0; y < mask.Height; y++ {
		for x := 0; x < mask.Width; x++ {
			if !mask.Contains(x, y) {
				continue
			}
			x0, y0 = min(x0, x), min(y0, y)
			x1, y1 = max(x1, x), max(y1, y)
		}
	}
	if x1 < 0 {
		return entity.BoundingBox{}, false
	}
	return entity.BoundingBox{X: x0, Y: y0, Width: x1 - x0 + 1, Height: y1 - y0 + 1}, true
}

// scene собирает результат сегментации из прямоугольников
type scene struct {
	res    *entity.SegmentationResult
	nextID int32
}

func newScene(width, height int) *scene {
	return &scene{
		res: &entity.SegmentationResult{
			Width:      width,
			Height:     height,
			SegmentMap: make([]int32, width*height),
		},
		nextID: 1,
	}
}

func (s *scene) add(class string, thing bool, box entity.BoundingBox) *scene {
	id := s.record(class, thing)
	for y := box.Y; y < box.Y+box.Height; y++ {
		for x := box.X; x < box.X+box.Width; x++ {
			s.res.SegmentMap[y*s.res.Width+x] = id
		}
	}
	return s
}

// addEmpty добавляет запись сегмента без единого пикселя
func (s *scene) addEmpty(class string, thing bool) *scene {
	s.record(class, thing)
	return s
}

func (s *scene) record(class string, thing bool) int32 {
	classes := &s.res.StuffClasses
	if thing {
		classes = &s.res.ThingClasses
	}
	category := -1
	for i, c := range *classes {
		if c == class {
			category = i
		}
	}
	if category < 0 {
		*classes = append(*classes, class)
		category = len(*classes) - 1
	}

	id := s.nextID
	s.nextID++
	s.res.Segments = append(s.res.Segments, entity.SegmentInfo{ID: id, CategoryID: category, IsThing: thing})
	return id
}

func estimate(distance float64, steps int) *entity.RangeEstimate {
	return &entity.RangeEstimate{DistanceM: distance, Steps: steps}
}
