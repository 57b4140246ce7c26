//go:build gocv
// +build gocv

package vision

import (
	"errors"

	"gocv.io/x/gocv"
)

// decodeSize декодирует изображение средствами OpenCV
func decodeSize(imageData []byte) (int, int, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadUnchanged)
	if err != nil {
		return 0, 0, err
	}
	defer mat.Close()

	if mat.Empty() {
		return 0, 0, errors.New("unsupported image format")
	}
	return mat.Cols(), mat.Rows(), nil
}
