package vision

import (
	"errors"
	"fmt"

	"vision-nav/internal/domain/port"
)

// ErrEmptyImage пустые данные изображения
var ErrEmptyImage = errors.New("empty image")

// Decoder проверяет, что загруженное изображение декодируется, и возвращает его размер
type Decoder struct {
	MinImageSide int // минимальная сторона в пикселях
	MaxPixels    int // защита от слишком больших кадров
}

// NewDecoder создаёт декодер с ограничениями по умолчанию
func NewDecoder() *Decoder {
	return &Decoder{
		MinImageSide: 3,
		MaxPixels:    40_000_000,
	}
}

// Size декодирует изображение и проверяет его размер
func (d *Decoder) Size(imageData []byte) (width, height int, err error) {
	if len(imageData) == 0 {
		return 0, 0, ErrEmptyImage
	}

	width, height, err = decodeSize(imageData)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image: %w", err)
	}

	if width < d.MinImageSide || height < d.MinImageSide {
		return 0, 0, fmt.Errorf("image is too small (%dx%d)", width, height)
	}
	if d.MaxPixels > 0 && width*height > d.MaxPixels {
		return 0, 0, fmt.Errorf("image is too large (%dx%d)", width, height)
	}

	return width, height, nil
}

// Проверка реализации интерфейса
var _ port.ImageDecoder = (*Decoder)(nil)
