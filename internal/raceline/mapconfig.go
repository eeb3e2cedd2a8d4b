package raceline

import "math"

// Map georeference constants matching the existing map set.
const (
	mapFreeThresh     = 0.196
	mapOccupiedThresh = 0.65
	// 5cm per occupancy-grid cell.
	mapResolution    = 0.05000000074505806
	mapOriginPadding = 5.0
)

// MapConfig is the occupancy-grid georeference written next to the map
// image. Field order matches the files shipped with existing maps.
type MapConfig struct {
	FreeThresh     float64    `yaml:"free_thresh"`
	Image          string     `yaml:"image"`
	Negate         int        `yaml:"negate"`
	OccupiedThresh float64    `yaml:"occupied_thresh"`
	Origin         [3]float64 `yaml:"origin"`
	Resolution     float64    `yaml:"resolution"`
}

// NewMapConfig derives the georeference from the centerline extent. The
// origin sits below the bottom-left corner of the trajectory by a fixed
// padding so the whole track fits on the grid.
func NewMapConfig(mapName string, wpts []Waypoint) MapConfig {
	minX, minY := math.Inf(1), math.Inf(1)
	for _, wp := range wpts {
		minX = math.Min(minX, wp.XM)
		minY = math.Min(minY, wp.YM)
	}

	return MapConfig{
		FreeThresh:     mapFreeThresh,
		Image:          mapName + ".png",
		Negate:         0,
		OccupiedThresh: mapOccupiedThresh,
		Origin:         [3]float64{minX - mapOriginPadding, minY - mapOriginPadding, 0},
		Resolution:     mapResolution,
	}
}

// Sector is a contiguous waypoint index range with an overtaking flag.
type Sector struct {
	Start  int  `yaml:"start"`
	End    int  `yaml:"end"`
	OtFlag bool `yaml:"ot_flag"`
}

// OvertakingSectors splits the lap into index ranges with per-range
// overtaking permissions. The converter always emits two equal halves,
// both closed to overtaking; operators open them up per track.
type OvertakingSectors struct {
	NSectors      int     `yaml:"n_sectors"`
	YeetFactor    float64 `yaml:"yeet_factor"`
	SplineLen     int     `yaml:"spline_len"`
	OtSectorBegin float64 `yaml:"ot_sector_begin"`
	Sector0       Sector  `yaml:"Overtaking_sector0"`
	Sector1       Sector  `yaml:"Overtaking_sector1"`
}

// NewOvertakingSectors builds the two-sector default for n waypoints.
// Sector 0 covers [0, n/2], sector 1 the remainder.
func NewOvertakingSectors(n int) OvertakingSectors {
	return OvertakingSectors{
		NSectors:      2,
		YeetFactor:    1.25,
		SplineLen:     30,
		OtSectorBegin: 0.5,
		Sector0:       Sector{Start: 0, End: n / 2},
		Sector1:       Sector{Start: n/2 + 1, End: n - 1},
	}
}

// SpeedSector is one speed-scaling range.
type SpeedSector struct {
	Start   int     `yaml:"start"`
	End     int     `yaml:"end"`
	Scaling float64 `yaml:"scaling"`
	OnlyFTG bool    `yaml:"only_FTG"`
	NoFTG   bool    `yaml:"no_FTG"`
}

// SpeedScaling is the per-sector speed limit table. The converter emits
// a single whole-track sector at a cautious global scale.
type SpeedScaling struct {
	GlobalLimit float64     `yaml:"global_limit"`
	NSectors    int         `yaml:"n_sectors"`
	Sector0     SpeedSector `yaml:"Sector0"`
}

// NewSpeedScaling builds the single-sector default for n waypoints.
func NewSpeedScaling(n int) SpeedScaling {
	return SpeedScaling{
		GlobalLimit: 0.5,
		NSectors:    1,
		Sector0: SpeedSector{
			Start:   0,
			End:     n - 1,
			Scaling: 0.5,
		},
	}
}
