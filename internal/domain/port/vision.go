package port

import "vision-nav/internal/domain/entity"

// ContourFinder интерфейс поиска контуров на маске
type ContourFinder interface {
	// LargestContour возвращает рамку контура с наибольшей площадью, false если контуров нет
	LargestContour(mask entity.Mask) (entity.BoundingBox, bool)
}

// ImageDecoder интерфейс декодера изображений
type ImageDecoder interface {
	// Size декодирует заголовок изображения и возвращает ширину и высоту
	Size(imageData []byte) (width, height int, err error)
}
