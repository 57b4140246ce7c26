package vision

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecoder_Size(t *testing.T) {
	d := NewDecoder()

	w, h, err := d.Size(encodePNG(t, 64, 48))
	require.NoError(t, err)
	require.Equal(t, 64, w)
	require.Equal(t, 48, h)
}

func TestDecoder_Rejects(t *testing.T) {
	d := NewDecoder()

	_, _, err := d.Size(nil)
	require.ErrorIs(t, err, ErrEmptyImage)

	_, _, err = d.Size([]byte("definitely not an image"))
	require.Error(t, err)

	_, _, err = d.Size(encodePNG(t, 2, 40))
	require.Error(t, err)

	d.MaxPixels = 100
	_, _, err = d.Size(encodePNG(t, 20, 20))
	require.Error(t, err)
}
