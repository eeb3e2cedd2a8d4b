package raceline

import (
	"encoding/json"
	"fmt"
	"os"
)

// StringValue mirrors a std_msgs String.
type StringValue struct {
	Data string `json:"data"`
}

// FloatValue mirrors a std_msgs Float64.
type FloatValue struct {
	Data float64 `json:"data"`
}

// WaypointArray is a stamped list of waypoints.
type WaypointArray struct {
	Header Header     `json:"header"`
	Wpnts  []Waypoint `json:"wpnts"`
}

// GlobalWaypoints is the full document consumed by the race stack.
// encoding/json preserves field order, keeping the output human-diffable.
type GlobalWaypoints struct {
	MapInfoStr          StringValue   `json:"map_info_str"`
	EstLapTime          FloatValue    `json:"est_lap_time"`
	CenterlineMarkers   MarkerArray   `json:"centerline_markers"`
	CenterlineWaypoints WaypointArray `json:"centerline_waypoints"`
	TrajMarkersIQP      MarkerArray   `json:"global_traj_markers_iqp"`
	TrajWpntsIQP        WaypointArray `json:"global_traj_wpnts_iqp"`
	TrajMarkersSP       MarkerArray   `json:"global_traj_markers_sp"`
	TrajWpntsSP         WaypointArray `json:"global_traj_wpnts_sp"`
	TrackboundsMarkers  MarkerArray   `json:"trackbounds_markers"`
}

// The conservative profile runs about 8% slower than the optimized lap.
const spLapTimeFactor = 1.08

func newWaypointArray(wpts []Waypoint) WaypointArray {
	return WaypointArray{
		Header: Header{Seq: 1},
		Wpnts:  wpts,
	}
}

// BuildDocument assembles the global waypoints document. iqpLapTime is
// the optimizer's lap time for the raw racing line; pass a non-positive
// value to integrate it from the aggressive trajectory instead. The
// document's est_lap_time carries the more conservative SP figure.
func BuildDocument(ts *TrajectorySet, iqpLapTime float64) GlobalWaypoints {
	if iqpLapTime <= 0 {
		iqpLapTime = EstimateLapTime(ts.Aggressive)
	}
	spLapTime := iqpLapTime * spLapTimeFactor

	iqpMaxSpeed := MaxSpeed(ts.Aggressive)
	spMaxSpeed := MaxSpeed(ts.Moderate)

	info := fmt.Sprintf(
		"IQP estimated lap time: %.4fs; IQP maximum speed: %.4fm/s; SP estimated lap time: %.4fs; SP maximum speed: %.4fm/s; ",
		iqpLapTime, iqpMaxSpeed, spLapTime, spMaxSpeed)

	return GlobalWaypoints{
		MapInfoStr:          StringValue{Data: info},
		EstLapTime:          FloatValue{Data: spLapTime},
		CenterlineMarkers:   TrajectoryMarkers(ts.Centerline, ColorCenterline),
		CenterlineWaypoints: newWaypointArray(ts.Centerline),
		TrajMarkersIQP:      TrajectoryMarkers(ts.Aggressive, ColorAggressive),
		TrajWpntsIQP:        newWaypointArray(ts.Aggressive),
		TrajMarkersSP:       TrajectoryMarkers(ts.Moderate, ColorModerate),
		TrajWpntsSP:         newWaypointArray(ts.Moderate),
		TrackboundsMarkers:  TrackBoundsMarkers(ts.Aggressive),
	}
}

// LoadDocument reads a previously written global waypoints document.
func LoadDocument(path string) (*GlobalWaypoints, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read waypoints document: %w", err)
	}
	var doc GlobalWaypoints
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse waypoints document: %w", err)
	}
	return &doc, nil
}
