package raceline

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/trackside-data/raceline.convert/internal/fsutil"
)

// WriteReport renders an interactive HTML report of the three speed
// profiles and the track layout.
func WriteReport(fsys fsutil.FileSystem, path string, ts *TrajectorySet) error {
	page := components.NewPage()
	page.AddCharts(speedProfileChart(ts), layoutChart(ts))

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return fsys.WriteFile(path, buf.Bytes(), 0644)
}

func speedProfileChart(ts *TrajectorySet) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Raceline report", Width: "1200px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Speed profiles",
			Subtitle: fmt.Sprintf("%d waypoints per trajectory", len(ts.Aggressive)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "v (m/s)"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "s (m)"}),
	)

	// The three lists share a row count, so the aggressive arc length
	// doubles as the shared x axis.
	labels := make([]string, len(ts.Aggressive))
	for i, wp := range ts.Aggressive {
		labels[i] = fmt.Sprintf("%.0f", wp.SM)
	}

	line.SetXAxis(labels).
		AddSeries("IQP", speedSeries(ts.Aggressive)).
		AddSeries("SP", speedSeries(ts.Moderate)).
		AddSeries("Centerline", speedSeries(ts.Centerline))
	return line
}

func speedSeries(wpts []Waypoint) []opts.LineData {
	data := make([]opts.LineData, len(wpts))
	for i, wp := range wpts {
		data[i] = opts.LineData{Value: wp.VxMps}
	}
	return data
}

func layoutChart(ts *TrajectorySet) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Track layout"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "X (m)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Y (m)"}),
	)

	scatter.AddSeries("IQP", positionSeries(ts.Aggressive)).
		AddSeries("SP", positionSeries(ts.Moderate)).
		AddSeries("Centerline", positionSeries(ts.Centerline))
	return scatter
}

func positionSeries(wpts []Waypoint) []opts.ScatterData {
	data := make([]opts.ScatterData, len(wpts))
	for i, wp := range wpts {
		data[i] = opts.ScatterData{Value: []interface{}{wp.XM, wp.YM}}
	}
	return data
}
