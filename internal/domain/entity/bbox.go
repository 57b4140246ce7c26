package entity

// BoundingBox представляет прямоугольник вокруг контура объекта
type BoundingBox struct {
	X      int // координата X левого верхнего угла
	Y      int // координата Y левого верхнего угла
	Width  int // ширина в пикселях
	Height int // высота в пикселях
}

// BottomCenter возвращает середину нижней грани, точку касания объекта с землёй
func (b BoundingBox) BottomCenter() (x float64, y int) {
	return float64(b.X) + float64(b.Width)/2, b.Y + b.Height
}

// Area возвращает площадь прямоугольника
func (b BoundingBox) Area() int {
	return b.Width * b.Height
}
