package raceline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/trackside-data/raceline.convert/internal/fsutil"
	"github.com/trackside-data/raceline.convert/internal/monitoring"
)

// Output file names inside the map directory. The map YAML and the
// placeholder image are named after the map itself.
const (
	WaypointsFile    = "global_waypoints.json"
	SectorsFile      = "ot_sectors.yaml"
	SpeedScalingFile = "speed_scaling.yaml"
	ReportFile       = "report.html"
)

// Converter drives one CSV-to-map-bundle conversion. All paths are
// supplied by the caller; the transform itself is path-free.
type Converter struct {
	// CSVPath is the racing-line export to read.
	CSVPath string
	// MapName names the bundle; the output lands in OutputDir/MapName.
	MapName string
	// OutputDir is the parent directory for map bundles.
	OutputDir string
	// ImageSource is an optional track image copied as <map>.png.
	// A missing source only produces a warning.
	ImageSource string
	// LapTime is the optimizer's lap time for the raw racing line.
	// Non-positive values integrate it from the trajectory instead.
	LapTime float64
	// WriteReport also emits an interactive report.html.
	WriteReport bool

	// FS defaults to the OS filesystem; tests substitute a memory one.
	FS fsutil.FileSystem
}

func (c *Converter) fs() fsutil.FileSystem {
	if c.FS != nil {
		return c.FS
	}
	return fsutil.OSFileSystem{}
}

// Run executes the conversion and writes the full bundle.
func (c *Converter) Run() error {
	fsys := c.fs()

	raw, err := fsys.ReadFile(c.CSVPath)
	if err != nil {
		return fmt.Errorf("read raceline csv: %w", err)
	}
	rows, err := ParseRows(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	monitoring.Logf("parsed %d data rows from %s", len(rows), c.CSVPath)

	ts, err := ProjectTrajectories(rows)
	if err != nil {
		return err
	}

	outDir := filepath.Join(c.OutputDir, c.MapName)
	if err := fsys.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create map directory: %w", err)
	}

	doc := BuildDocument(ts, c.LapTime)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal waypoints document: %w", err)
	}
	if err := fsys.WriteFile(filepath.Join(outDir, WaypointsFile), data, 0644); err != nil {
		return fmt.Errorf("write waypoints document: %w", err)
	}

	writeYAML := func(name string, v any) error {
		out, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", name, err)
		}
		if err := fsys.WriteFile(filepath.Join(outDir, name), out, 0644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		return nil
	}
	if err := writeYAML(c.MapName+".yaml", NewMapConfig(c.MapName, ts.Centerline)); err != nil {
		return err
	}
	if err := writeYAML(SectorsFile, NewOvertakingSectors(len(ts.Centerline))); err != nil {
		return err
	}
	if err := writeYAML(SpeedScalingFile, NewSpeedScaling(len(ts.Centerline))); err != nil {
		return err
	}

	c.copyPlaceholderImage(fsys, outDir)

	if c.WriteReport {
		if err := WriteReport(fsys, filepath.Join(outDir, ReportFile), ts); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	monitoring.Logf("wrote map bundle %q to %s (%d waypoints per trajectory)",
		c.MapName, outDir, len(ts.Centerline))
	return nil
}

// copyPlaceholderImage copies the configured track image if present. The
// stack expects some image next to the georeference YAML, but any
// placeholder can be dropped in by hand later.
func (c *Converter) copyPlaceholderImage(fsys fsutil.FileSystem, outDir string) {
	target := filepath.Join(outDir, c.MapName+".png")
	if c.ImageSource == "" || !fsys.Exists(c.ImageSource) {
		monitoring.Warnf("placeholder image %q not found; provide %s manually", c.ImageSource, target)
		return
	}
	if err := fsutil.CopyFile(fsys, c.ImageSource, target); err != nil {
		monitoring.Warnf("copy placeholder image: %v", err)
	}
}
