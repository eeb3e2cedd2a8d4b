package raceline

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// EstimateLapTime integrates traversal time over consecutive waypoint
// pairs, assuming speed varies linearly between samples. Segments with a
// non-positive average speed contribute nothing.
func EstimateLapTime(wpts []Waypoint) float64 {
	var total float64
	for i := 0; i+1 < len(wpts); i++ {
		a, b := wpts[i], wpts[i+1]
		dist := math.Hypot(b.XM-a.XM, b.YM-a.YM)
		avg := (a.VxMps + b.VxMps) / 2
		if avg > 0 {
			total += dist / avg
		}
	}
	return total
}

// Speeds returns the vx profile of a waypoint list.
func Speeds(wpts []Waypoint) []float64 {
	s := make([]float64, len(wpts))
	for i, wp := range wpts {
		s[i] = wp.VxMps
	}
	return s
}

// MaxSpeed scans one waypoint list for the fastest sample.
func MaxSpeed(wpts []Waypoint) float64 {
	if len(wpts) == 0 {
		return 0
	}
	return floats.Max(Speeds(wpts))
}

// SpeedStats summarizes a trajectory's speed profile.
type SpeedStats struct {
	Min  float64
	Max  float64
	Mean float64
}

// SummarizeSpeeds computes min/max/mean over the vx profile.
func SummarizeSpeeds(wpts []Waypoint) SpeedStats {
	s := Speeds(wpts)
	if len(s) == 0 {
		return SpeedStats{}
	}
	return SpeedStats{
		Min:  floats.Min(s),
		Max:  floats.Max(s),
		Mean: stat.Mean(s, nil),
	}
}

// TrackLength is the largest arc-length value of the trajectory.
func TrackLength(wpts []Waypoint) float64 {
	if len(wpts) == 0 {
		return 0
	}
	s := make([]float64, len(wpts))
	for i, wp := range wpts {
		s[i] = wp.SM
	}
	return floats.Max(s)
}
