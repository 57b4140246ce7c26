//go:build !gocv
// +build !gocv

package vision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vision-nav/internal/domain/entity"
)

func maskFrom(rows ...string) entity.Mask {
	m := entity.Mask{Width: len(rows[0]), Height: len(rows)}
	for _, row := range rows {
		for _, c := range row {
			if c == '#' {
				m.Pix = append(m.Pix, 1)
			} else {
				m.Pix = append(m.Pix, 0)
			}
		}
	}
	return m
}

func TestContourFinder_LargestContour(t *testing.T) {
	f := NewContourFinder()

	box, ok := f.LargestContour(maskFrom(
		"##......",
		"##......",
		"....###.",
		"....###.",
		"....###.",
	))
	require.True(t, ok)
	require.Equal(t, entity.BoundingBox{X: 4, Y: 2, Width: 3, Height: 3}, box)
}

func TestContourFinder_DiagonalIsConnected(t *testing.T) {
	f := NewContourFinder()

	box, ok := f.LargestContour(maskFrom(
		"#....",
		".#...",
		"..#..",
		"....#",
	))
	require.True(t, ok)
	require.Equal(t, entity.BoundingBox{X: 0, Y: 0, Width: 3, Height: 3}, box)
}

func TestContourFinder_TieKeepsFirst(t *testing.T) {
	f := NewContourFinder()

	box, ok := f.LargestContour(maskFrom(
		"...##",
		"...##",
		".....",
		"##...",
		"##...",
	))
	require.True(t, ok)
	require.Equal(t, entity.BoundingBox{X: 3, Y: 0, Width: 2, Height: 2}, box)
}

func TestContourFinder_Empty(t *testing.T) {
	f := NewContourFinder()

	_, ok := f.LargestContour(maskFrom("....", "...."))
	require.False(t, ok)

	_, ok = f.LargestContour(entity.Mask{})
	require.False(t, ok)

	_, ok = f.LargestContour(entity.Mask{Width: 2, Height: 2, Pix: []uint8{1}})
	require.False(t, ok)
}

// canvas рисует прямоугольники и рамки на пустой маске
type canvas struct {
	entity.Mask
}

func newCanvas(width, height int) *canvas {
	return &canvas{entity.Mask{Width: width, Height: height, Pix: make([]uint8, width*height)}}
}

func (c *canvas) fill(box entity.BoundingBox) *canvas {
	for y := box.Y; y < box.Y+box.Height; y++ {
		for x := box.X; x < box.X+box.Width; x++ {
			c.Pix[y*c.Width+x] = 1
		}
	}
	return c
}

func (c *canvas) outline(box entity.BoundingBox) *canvas {
	for y := box.Y; y < box.Y+box.Height; y++ {
		for x := box.X; x < box.X+box.Width; x++ {
			if x == box.X || y == box.Y || x == box.X+box.Width-1 || y == box.Y+box.Height-1 {
				c.Pix[y*c.Width+x] = 1
			}
		}
	}
	return c
}

func TestContourFinder_RingEnclosesMoreThanBlob(t *testing.T) {
	f := NewContourFinder()

	ring := entity.BoundingBox{X: 0, Y: 0, Width: 40, Height: 40}
	mask := newCanvas(60, 45).
		outline(ring).
		fill(entity.BoundingBox{X: 43, Y: 5, Width: 15, Height: 15}).
		Mask

	box, ok := f.LargestContour(mask)
	require.True(t, ok)
	require.Equal(t, ring, box)
}

func TestContourFinder_NestedComponentBelongsToOuterContour(t *testing.T) {
	f := NewContourFinder()

	// сплошной блок 10x10 раньше в обходе и больше по пикселям, чем рамка 12x12,
	// но рамка вместе с блоком 8x8 внутри охватывает большую площадь
	ring := entity.BoundingBox{X: 12, Y: 0, Width: 12, Height: 12}
	mask := newCanvas(24, 12).
		fill(entity.BoundingBox{X: 0, Y: 0, Width: 10, Height: 10}).
		outline(ring).
		fill(entity.BoundingBox{X: 14, Y: 2, Width: 8, Height: 8}).
		Mask

	box, ok := f.LargestContour(mask)
	require.True(t, ok)
	require.Equal(t, ring, box)
}

func TestContourFinder_InnerBlobIsNotExternal(t *testing.T) {
	f := NewContourFinder()

	// внутренний блок 8x8 больше рамки по числу пикселей, но отдельным контуром не считается
	box, ok := f.LargestContour(maskFrom(
		"############",
		"#..........#",
		"#.########.#",
		"#.########.#",
		"#.########.#",
		"#.########.#",
		"#.########.#",
		"#.########.#",
		"#.########.#",
		"#.########.#",
		"#..........#",
		"############",
	))
	require.True(t, ok)
	require.Equal(t, entity.BoundingBox{X: 0, Y: 0, Width: 12, Height: 12}, box)
}
