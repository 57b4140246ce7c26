//go:build !gocv
// +build !gocv

package vision

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// decodeSize читает заголовок изображения стандартными декодерами и x/image
func decodeSize(imageData []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
