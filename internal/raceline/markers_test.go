package raceline

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundaryPoints(t *testing.T) {
	t.Parallel()

	t.Run("zero heading offsets straight up and down", func(t *testing.T) {
		t.Parallel()
		wp := Waypoint{XM: 3, YM: 4, DLeft: 2, DRight: 2}

		lx, ly := wp.LeftBoundary()
		assert.InDelta(t, 3.0, lx, 1e-12)
		assert.InDelta(t, 6.0, ly, 1e-12)

		rx, ry := wp.RightBoundary()
		assert.InDelta(t, 3.0, rx, 1e-12)
		assert.InDelta(t, 2.0, ry, 1e-12)
	})

	t.Run("quarter-turn heading rotates the normal", func(t *testing.T) {
		t.Parallel()
		wp := Waypoint{XM: 0, YM: 0, DLeft: 2, DRight: 2, PsiRad: math.Pi / 2}

		lx, ly := wp.LeftBoundary()
		assert.InDelta(t, -2.0, lx, 1e-12)
		assert.InDelta(t, 0.0, ly, 1e-12)

		rx, ry := wp.RightBoundary()
		assert.InDelta(t, 2.0, rx, 1e-12)
		assert.InDelta(t, 0.0, ry, 1e-12)
	})
}

func TestTrackBoundsMarkers(t *testing.T) {
	t.Parallel()

	wpts := make([]Waypoint, 1000)
	for i := range wpts {
		wpts[i] = Waypoint{XM: float64(i), DLeft: 1, DRight: 1}
	}
	ma := TrackBoundsMarkers(wpts)

	t.Run("stays under the marker cap per side", func(t *testing.T) {
		t.Parallel()
		var left, right int
		for _, m := range ma.Markers {
			switch m.Ns {
			case NamespaceBoundsLeft:
				left++
			case NamespaceBoundsRight:
				right++
			}
		}
		assert.Equal(t, left, right)
		assert.LessOrEqual(t, left, maxBoundaryMarkers+1)
		assert.Greater(t, left, 0)
	})

	t.Run("side ids never collide", func(t *testing.T) {
		t.Parallel()
		for _, m := range ma.Markers {
			switch m.Ns {
			case NamespaceBoundsLeft:
				assert.Less(t, m.ID, rightBoundaryIDBase)
			case NamespaceBoundsRight:
				assert.GreaterOrEqual(t, m.ID, rightBoundaryIDBase)
			}
		}
	})

	t.Run("markers are cubes in the map frame", func(t *testing.T) {
		t.Parallel()
		require.NotEmpty(t, ma.Markers)
		m := ma.Markers[0]
		assert.Equal(t, markerCube, m.Type)
		assert.Equal(t, "map", m.Header.FrameID)
		assert.Equal(t, 0.1, m.Scale.X)
		assert.Equal(t, 1.0, m.Pose.Orientation.W)
	})
}

func TestTrajectoryMarkers(t *testing.T) {
	t.Parallel()

	t.Run("small lists keep every waypoint", func(t *testing.T) {
		t.Parallel()
		wpts := []Waypoint{{XM: 1, YM: 2}, {XM: 3, YM: 4}}
		ma := TrajectoryMarkers(wpts, ColorCenterline)

		require.Len(t, ma.Markers, 2)
		assert.Equal(t, 0, ma.Markers[0].ID)
		assert.Equal(t, 1, ma.Markers[1].ID)
		assert.Equal(t, 1.0, ma.Markers[0].Pose.Position.X)
		assert.Equal(t, markerSphere, ma.Markers[0].Type)
		assert.Equal(t, ColorCenterline, ma.Markers[0].Color)
	})

	t.Run("large lists are down-sampled under the cap", func(t *testing.T) {
		t.Parallel()
		wpts := make([]Waypoint, 2000)
		ma := TrajectoryMarkers(wpts, ColorAggressive)
		assert.LessOrEqual(t, len(ma.Markers), maxTrajectoryMarkers+1)
	})
}

func TestMarkerSerializesEmptyLists(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(newMarker("", 0, markerSphere, 0, 0, 0.05, ColorModerate))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"points":[]`)
	assert.Contains(t, string(data), `"colors":[]`)
}

func TestMarkerArrayTrace(t *testing.T) {
	t.Parallel()

	ma := MarkerArray{Markers: []Marker{
		newMarker(NamespaceBoundsLeft, 0, markerCube, 1, 2, 0.1, colorBoundary),
		newMarker(NamespaceBoundsRight, 1000, markerCube, 3, 4, 0.1, colorBoundary),
		newMarker(NamespaceBoundsLeft, 1, markerCube, 5, 6, 0.1, colorBoundary),
	}}

	xs, ys := ma.Trace(NamespaceBoundsLeft)
	assert.Equal(t, []float64{1, 5}, xs)
	assert.Equal(t, []float64{2, 6}, ys)

	xs, ys = ma.Trace("")
	assert.Len(t, xs, 3)
	assert.Len(t, ys, 3)
}
