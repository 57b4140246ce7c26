package guidance

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vision-nav/internal/domain/entity"
)

func TestZoneFor(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
		box           entity.BoundingBox
		want          entity.Zone
	}{
		{
			name:   "bottom right",
			height: 300, width: 300,
			box:  entity.BoundingBox{X: 240, Y: 200, Width: 20, Height: 80}, // x_center=250, y_base=280
			want: entity.ZoneNearRight,
		},
		{
			name:   "top left",
			height: 300, width: 300,
			box:  entity.BoundingBox{X: 0, Y: 0, Width: 10, Height: 10},
			want: entity.ZoneFarLeft,
		},
		{
			name:   "base on the grid line goes to next row",
			height: 300, width: 300,
			box:  entity.BoundingBox{X: 100, Y: 50, Width: 100, Height: 50}, // y_base=100
			want: entity.ZoneMidCenter,
		},
		{
			name:   "base at image bottom is clamped",
			height: 301, width: 300,
			box:  entity.BoundingBox{X: 140, Y: 0, Width: 20, Height: 301}, // y_base=301, grid=100
			want: entity.ZoneNearCenter,
		},
		{
			name:   "centroid high but base low",
			height: 300, width: 300,
			box:  entity.BoundingBox{X: 0, Y: 0, Width: 90, Height: 250},
			want: entity.ZoneNearLeft,
		},
		{
			name:   "tiny image",
			height: 2, width: 2,
			box:  entity.BoundingBox{X: 1, Y: 1, Width: 1, Height: 1}, // клетка сетки не меньше 1 px
			want: entity.ZoneNearCenter,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			z, err := ZoneFor(tc.height, tc.width, tc.box)
			require.NoError(t, err)
			require.Equal(t, tc.want, z)
		})
	}
}

func TestZoneFor_Deterministic(t *testing.T) {
	box := entity.BoundingBox{X: 120, Y: 30, Width: 33, Height: 77}
	first, err := ZoneFor(480, 640, box)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		z, err := ZoneFor(480, 640, box)
		require.NoError(t, err)
		require.Equal(t, first, z)
	}
}
