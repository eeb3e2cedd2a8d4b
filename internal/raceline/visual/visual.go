// Package visual renders diagnostic PNG plots from a converted
// global-waypoints document.
package visual

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/trackside-data/raceline.convert/internal/raceline"
)

// Line colors match the marker colors the converter embeds in the
// document: centerline blue, IQP red, SP green. Boundaries draw black.
var (
	colorCenterline = color.RGBA{B: 255, A: 255}
	colorAggressive = color.RGBA{R: 220, A: 255}
	colorModerate   = color.RGBA{G: 160, A: 255}
	colorBoundary   = color.RGBA{A: 255}
)

// Plot file names written by RenderAll.
const (
	TrajectoriesPlot  = "trajectories.png"
	SpeedProfilesPlot = "speed_profiles.png"
	IQPHeatmapPlot    = "iqp_heatmap.png"
	SPHeatmapPlot     = "sp_heatmap.png"
	BoundariesPlot    = "track_boundaries.png"
)

// Plotter renders a document's trajectories into an output directory.
type Plotter struct {
	Doc       *raceline.GlobalWaypoints
	OutputDir string
}

// RenderAll produces the full plot set and returns the written paths.
func (p *Plotter) RenderAll() ([]string, error) {
	outputs := []struct {
		name   string
		render func() (*plot.Plot, error)
	}{
		{TrajectoriesPlot, p.layoutPlot},
		{SpeedProfilesPlot, p.speedProfilePlot},
		{IQPHeatmapPlot, func() (*plot.Plot, error) {
			return p.heatmapPlot(p.Doc.TrajWpntsIQP.Wpnts, "IQP (aggressive)")
		}},
		{SPHeatmapPlot, func() (*plot.Plot, error) {
			return p.heatmapPlot(p.Doc.TrajWpntsSP.Wpnts, "SP (moderate)")
		}},
		{BoundariesPlot, p.boundariesPlot},
	}

	var written []string
	for _, out := range outputs {
		pl, err := out.render()
		if err != nil {
			return written, fmt.Errorf("%s: %w", out.name, err)
		}
		path := filepath.Join(p.OutputDir, out.name)
		if err := pl.Save(12*vg.Inch, 9*vg.Inch, path); err != nil {
			return written, fmt.Errorf("save %s: %w", out.name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// layoutPlot draws the three trajectories over the boundary outline.
func (p *Plotter) layoutPlot() (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = "Track layout"
	pl.X.Label.Text = "X (m)"
	pl.Y.Label.Text = "Y (m)"
	pl.Add(plotter.NewGrid())

	if err := p.addBoundaries(pl, colorBoundary); err != nil {
		return nil, err
	}

	trajectories := []struct {
		label string
		wpts  []raceline.Waypoint
		color color.Color
	}{
		{"Centerline", p.Doc.CenterlineWaypoints.Wpnts, colorCenterline},
		{"IQP (aggressive)", p.Doc.TrajWpntsIQP.Wpnts, colorAggressive},
		{"SP (moderate)", p.Doc.TrajWpntsSP.Wpnts, colorModerate},
	}
	for _, tr := range trajectories {
		line, err := plotter.NewLine(positionXYs(tr.wpts))
		if err != nil {
			return nil, err
		}
		line.Color = tr.color
		line.Width = vg.Points(1.5)
		pl.Add(line)

		stats := raceline.SummarizeSpeeds(tr.wpts)
		pl.Legend.Add(fmt.Sprintf("%s (avg %.1f m/s)", tr.label, stats.Mean), line)
	}

	pl.Legend.Top = true
	squareAxes(pl)
	return pl, nil
}

// speedProfilePlot draws vx against arc length for all three variants.
func (p *Plotter) speedProfilePlot() (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = "Speed profiles along track"
	pl.X.Label.Text = "Track distance (m)"
	pl.Y.Label.Text = "Speed (m/s)"
	pl.Add(plotter.NewGrid())

	trajectories := []struct {
		label string
		wpts  []raceline.Waypoint
		color color.Color
	}{
		{"Centerline", p.Doc.CenterlineWaypoints.Wpnts, colorCenterline},
		{"IQP", p.Doc.TrajWpntsIQP.Wpnts, colorAggressive},
		{"SP", p.Doc.TrajWpntsSP.Wpnts, colorModerate},
	}
	for _, tr := range trajectories {
		pts := make(plotter.XYs, len(tr.wpts))
		for i, wp := range tr.wpts {
			pts[i] = plotter.XY{X: wp.SM, Y: wp.VxMps}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.Color = tr.color
		line.Width = vg.Points(1.5)
		pl.Add(line)

		stats := raceline.SummarizeSpeeds(tr.wpts)
		pl.Legend.Add(fmt.Sprintf("%s (max %.1f m/s)", tr.label, stats.Max), line)
	}

	pl.Legend.Top = true
	return pl, nil
}

// heatmapPlot scatters one trajectory colored by speed, with the
// boundary outline underneath for orientation.
func (p *Plotter) heatmapPlot(wpts []raceline.Waypoint, title string) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = title + " - speed heatmap"
	pl.X.Label.Text = "X (m)"
	pl.Y.Label.Text = "Y (m)"
	pl.Add(plotter.NewGrid())

	if err := p.addBoundaries(pl, color.RGBA{R: 128, G: 128, B: 128, A: 255}); err != nil {
		return nil, err
	}

	pts := make(plotter.XYZs, len(wpts))
	minSpeed, maxSpeed := math.Inf(1), math.Inf(-1)
	for i, wp := range wpts {
		pts[i] = plotter.XYZ{X: wp.XM, Y: wp.YM, Z: wp.VxMps}
		minSpeed = math.Min(minSpeed, wp.VxMps)
		maxSpeed = math.Max(maxSpeed, wp.VxMps)
	}
	if !(maxSpeed > minSpeed) {
		// Degenerate profile; keep the palette range valid.
		maxSpeed = minSpeed + 1
	}

	colors := moreland.Kindlmann()
	colors.SetMin(minSpeed)
	colors.SetMax(maxSpeed)

	sc, err := plotter.NewScatter(plotter.XYValues{XYZer: pts})
	if err != nil {
		return nil, err
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		_, _, z := pts.XYZ(i)
		c, err := colors.At(z)
		if err != nil {
			c = color.Black
		}
		return draw.GlyphStyle{Color: c, Radius: vg.Points(2), Shape: draw.CircleGlyph{}}
	}
	pl.Add(sc)

	squareAxes(pl)
	return pl, nil
}

// boundariesPlot draws only the two track edges.
func (p *Plotter) boundariesPlot() (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = "Track boundaries"
	pl.X.Label.Text = "X (m)"
	pl.Y.Label.Text = "Y (m)"
	pl.Add(plotter.NewGrid())

	sides := []struct {
		ns    string
		label string
		color color.Color
	}{
		{raceline.NamespaceBoundsLeft, "Left boundary", colorAggressive},
		{raceline.NamespaceBoundsRight, "Right boundary", colorCenterline},
	}
	for _, side := range sides {
		xs, ys := p.Doc.TrackboundsMarkers.Trace(side.ns)
		if len(xs) == 0 {
			continue
		}
		line, err := plotter.NewLine(traceXYs(xs, ys))
		if err != nil {
			return nil, err
		}
		line.Color = side.color
		line.Width = vg.Points(1.5)
		pl.Add(line)
		pl.Legend.Add(fmt.Sprintf("%s (%d points)", side.label, len(xs)), line)
	}

	pl.Legend.Top = true
	squareAxes(pl)
	return pl, nil
}

// addBoundaries draws both boundary traces, if the document has any.
func (p *Plotter) addBoundaries(pl *plot.Plot, c color.Color) error {
	for _, ns := range []string{raceline.NamespaceBoundsLeft, raceline.NamespaceBoundsRight} {
		xs, ys := p.Doc.TrackboundsMarkers.Trace(ns)
		if len(xs) == 0 {
			continue
		}
		line, err := plotter.NewLine(traceXYs(xs, ys))
		if err != nil {
			return err
		}
		line.Color = c
		line.Width = vg.Points(2)
		pl.Add(line)
	}
	return nil
}

func positionXYs(wpts []raceline.Waypoint) plotter.XYs {
	pts := make(plotter.XYs, len(wpts))
	for i, wp := range wpts {
		pts[i] = plotter.XY{X: wp.XM, Y: wp.YM}
	}
	return pts
}

func traceXYs(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return pts
}

// squareAxes forces both axes onto the same span so the track keeps its
// shape on screen.
func squareAxes(pl *plot.Plot) {
	xSpan := pl.X.Max - pl.X.Min
	ySpan := pl.Y.Max - pl.Y.Min
	if xSpan > ySpan {
		mid := (pl.Y.Max + pl.Y.Min) / 2
		pl.Y.Min = mid - xSpan/2
		pl.Y.Max = mid + xSpan/2
	} else if ySpan > xSpan {
		mid := (pl.X.Max + pl.X.Min) / 2
		pl.X.Min = mid - ySpan/2
		pl.X.Max = mid + ySpan/2
	}
}
