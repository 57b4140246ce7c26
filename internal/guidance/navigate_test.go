package guidance

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"vision-nav/internal/domain/entity"
)

type placed struct {
	class string
	zone  entity.Zone
	r     *entity.RangeEstimate
}

func aggregationOf(items ...placed) *entity.Aggregation {
	agg := entity.NewAggregation()
	for _, it := range items {
		agg.Add(it.class, entity.Detection{Zone: it.zone, Estimate: it.r})
	}
	return agg
}

func navigate(items ...placed) entity.NavigationReport {
	return NewNavigator(entity.DefaultReferenceTables(), nil).Navigate(aggregationOf(items...))
}

func TestNavigate_ContinueWhenNearCenterFree(t *testing.T) {
	report := navigate(
		placed{"person", entity.ZoneNearLeft, estimate(1, 1)},
		placed{"person", entity.ZoneNearRight, estimate(1, 1)},
		placed{"car", entity.ZoneMidCenter, estimate(3, 4)},
		placed{"tree", entity.ZoneNearCenter, nil},
	)
	require.Equal(t, entity.DirectionContinue, report.Direction)
	require.Equal(t, []string{"Continue ahead."}, report.Minimal)
}

func TestNavigate_MoveLeftWhenRightObstructed(t *testing.T) {
	report := navigate(
		placed{"person", entity.ZoneNearCenter, estimate(2.0, 3)},
		placed{"chair", entity.ZoneNearRight, estimate(1.0, 1)},
		placed{"bench", entity.ZoneMidRight, estimate(1.5, 2)},
	)
	require.Equal(t, entity.DirectionLeft, report.Direction)
	require.Equal(t, []string{"Move left."}, report.Minimal)
}

func TestNavigate_SurfacesDoNotBlock(t *testing.T) {
	report := navigate(
		placed{"stairs", entity.ZoneNearCenter, estimate(0.5, 1)},
		placed{"person", entity.ZoneMidRight, estimate(4, 5)},
	)
	require.Equal(t, entity.DirectionContinue, report.Direction)
	require.Equal(t, []string{
		"Caution: Currently walking on stairs at Near-Center.",
		"Continue ahead.",
	}, report.Minimal)
}

func TestNavigate_HazardMessages(t *testing.T) {
	report := navigate(
		placed{"stairs", entity.ZoneNearCenter, estimate(0.5, 1)},
		placed{"person", entity.ZoneNearCenter, estimate(2, 3)},
		placed{"person", entity.ZoneNearLeft, estimate(1, 1)},
		placed{"person", entity.ZoneNearRight, estimate(1, 1)},
		placed{"road", entity.ZoneMidCenter, nil},
		placed{"grass", entity.ZoneMidCenter, nil},
	)
	require.Equal(t, entity.DirectionSlowDown, report.Direction)
	require.Equal(t, []string{
		"Caution: Currently walking on stairs at Near-Center.",
		"Caution: Currently close to road, grass at Mid-Center.",
		"Slow down, no safe path found.",
	}, report.Minimal)
	require.Contains(t, report.Cautions[0], "stairs")
	require.Contains(t, report.Cautions[0], "Near-Center")
}

func TestNavigate_Empty(t *testing.T) {
	report := navigate()
	require.Equal(t, []string{"Continue ahead."}, report.Minimal)
	require.Equal(t, []string{"No objects detected."}, report.Maximal)
}

func TestNavigate_Maximal(t *testing.T) {
	report := navigate(
		placed{"person", entity.ZoneNearLeft, estimate(8.5, 11)},
		placed{"person", entity.ZoneMidRight, nil},
		placed{"road", entity.ZoneNearCenter, nil},
		placed{"car", entity.ZoneFarCenter, estimate(30, 40)},
	)
	want := []string{
		"2 person(s) detected at Near-Left in 11 steps, Mid-Right with distances: 8.5m and steps: 11 steps.",
		"1 road(s) detected at Near-Center.",
		"1 car(s) detected at Far-Center in 40 steps with distances: 30.0m and steps: 40 steps.",
	}
	if diff := cmp.Diff(want, report.Maximal); diff != "" {
		t.Errorf("maximal navigation mismatch (-want +got):\n%s", diff)
	}
}

func TestDecide(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name string
		c    Clearances
		want entity.Direction
	}{
		{
			name: "nothing ahead",
			c:    Clearances{NearLeft: 1, MidLeft: 1, NearRight: 1, MidRight: 1},
			want: entity.DirectionContinue,
		},
		{
			name: "both sides clear, left farther",
			c:    Clearances{CenterBlocked: true, Center: 2, NearLeft: 5, MidLeft: inf, NearRight: 3, MidRight: inf},
			want: entity.DirectionLeft,
		},
		{
			name: "both sides clear, right farther",
			c:    Clearances{CenterBlocked: true, Center: 2, NearLeft: 3, MidLeft: inf, NearRight: 5, MidRight: inf},
			want: entity.DirectionRight,
		},
		{
			name: "both sides empty, tie favors left",
			c:    Clearances{CenterBlocked: true, Center: 2, NearLeft: inf, MidLeft: inf, NearRight: inf, MidRight: inf},
			want: entity.DirectionLeft,
		},
		{
			name: "only right clear",
			c:    Clearances{CenterBlocked: true, Center: 2, NearLeft: inf, MidLeft: 2, NearRight: inf, MidRight: 9},
			want: entity.DirectionRight,
		},
		{
			name: "obstacle at the same distance blocks",
			c:    Clearances{CenterBlocked: true, Center: 2, NearLeft: 2, MidLeft: inf, NearRight: inf, MidRight: 1},
			want: entity.DirectionSlowDown,
		},
		{
			name: "undecidable distances",
			c:    Clearances{CenterBlocked: true, Center: math.NaN(), NearLeft: inf, MidLeft: inf, NearRight: inf, MidRight: inf},
			want: entity.DirectionNoPath,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Decide(tc.c))
		})
	}
}

func TestBuildZoneState(t *testing.T) {
	state := BuildZoneState(aggregationOf(
		placed{"person", entity.ZoneNearCenter, estimate(4, 5)},
		placed{"chair", entity.ZoneNearCenter, estimate(2.5, 3)},
		placed{"stairs", entity.ZoneNearCenter, estimate(0.3, 0)},
		placed{"wall", entity.ZoneMidLeft, nil},
	), entity.DefaultReferenceTables())

	d, ok := state.Nearest(entity.ZoneNearCenter)
	require.True(t, ok)
	require.Equal(t, 2.5, d)
	require.Len(t, state.Objects(entity.ZoneNearCenter), 3)

	_, ok = state.Nearest(entity.ZoneMidLeft)
	require.False(t, ok, "no known distance is not zero")
	require.True(t, math.IsInf(state.Clearance(entity.ZoneMidLeft), 1))
}
