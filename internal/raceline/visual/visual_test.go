package visual

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackside-data/raceline.convert/internal/raceline"
)

func testDocument(n int) *raceline.GlobalWaypoints {
	ts := &raceline.TrajectorySet{}
	for i := 0; i < n; i++ {
		wp := raceline.Waypoint{
			ID:     i,
			SM:     float64(i) * 2,
			XM:     float64(i) * 2,
			YM:     float64(i % 5),
			DLeft:  1.5,
			DRight: 1.5,
			VxMps:  4 + float64(i%7),
		}
		ts.Centerline = append(ts.Centerline, wp)
		ts.Moderate = append(ts.Moderate, wp)
		ts.Aggressive = append(ts.Aggressive, wp)
	}
	doc := raceline.BuildDocument(ts, 60)
	return &doc
}

func TestRenderAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := Plotter{Doc: testDocument(50), OutputDir: dir}

	written, err := p.RenderAll()
	require.NoError(t, err)
	require.Len(t, written, 5)

	for _, name := range []string{
		TrajectoriesPlot, SpeedProfilesPlot, IQPHeatmapPlot, SPHeatmapPlot, BoundariesPlot,
	} {
		fi, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "missing %s", name)
		assert.Greater(t, fi.Size(), int64(0))
	}
}

func TestRenderAllConstantSpeed(t *testing.T) {
	t.Parallel()

	// A flat speed profile must not break the heatmap palette range.
	ts := &raceline.TrajectorySet{}
	for i := 0; i < 10; i++ {
		wp := raceline.Waypoint{ID: i, SM: float64(i), XM: float64(i), VxMps: 5, DLeft: 1, DRight: 1}
		ts.Centerline = append(ts.Centerline, wp)
		ts.Moderate = append(ts.Moderate, wp)
		ts.Aggressive = append(ts.Aggressive, wp)
	}
	doc := raceline.BuildDocument(ts, 0)

	p := Plotter{Doc: &doc, OutputDir: t.TempDir()}
	_, err := p.RenderAll()
	require.NoError(t, err)
}
