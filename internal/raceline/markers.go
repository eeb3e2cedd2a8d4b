package raceline

import "math"

// The marker structures mirror ROS visualization_msgs/Marker so the
// produced JSON drops straight into the consuming stack's RViz topics.

// TimeStamp is a ROS time value.
type TimeStamp struct {
	Secs  int `json:"secs"`
	Nsecs int `json:"nsecs"`
}

// Header is a ROS message header.
type Header struct {
	Seq     int       `json:"seq"`
	Stamp   TimeStamp `json:"stamp"`
	FrameID string    `json:"frame_id"`
}

// Point is a position in the map frame.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Quaternion is an orientation; identity is W=1.
type Quaternion struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// Pose combines position and orientation.
type Pose struct {
	Position    Point      `json:"position"`
	Orientation Quaternion `json:"orientation"`
}

// Vector3 is a per-axis scale.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Marker is a single visualization marker.
type Marker struct {
	Header                   Header    `json:"header"`
	Ns                       string    `json:"ns"`
	ID                       int       `json:"id"`
	Type                     int       `json:"type"`
	Action                   int       `json:"action"`
	Pose                     Pose      `json:"pose"`
	Scale                    Vector3   `json:"scale"`
	Color                    Color     `json:"color"`
	Lifetime                 TimeStamp `json:"lifetime"`
	FrameLocked              bool      `json:"frame_locked"`
	Points                   []Point   `json:"points"`
	Colors                   []Color   `json:"colors"`
	Text                     string    `json:"text"`
	MeshResource             string    `json:"mesh_resource"`
	MeshUseEmbeddedMaterials bool      `json:"mesh_use_embedded_materials"`
}

// MarkerArray is a list of markers.
type MarkerArray struct {
	Markers []Marker `json:"markers"`
}

// Marker types used in the document.
const (
	markerCube   = 1
	markerSphere = 2
)

// Down-sampling caps keep RViz responsive: trajectories get denser
// sampling than the boundary outline.
const (
	maxTrajectoryMarkers = 500
	maxBoundaryMarkers   = 200

	// Right-side boundary ids start here so the two sides never collide.
	rightBoundaryIDBase = 1000
)

// Boundary marker namespaces.
const (
	NamespaceBoundsLeft  = "trackbounds_left"
	NamespaceBoundsRight = "trackbounds_right"
)

// Trajectory marker colors.
var (
	ColorCenterline = Color{B: 1, A: 1}
	ColorAggressive = Color{R: 1, A: 1}
	ColorModerate   = Color{G: 1, A: 1}

	colorBoundary = Color{R: 1, G: 0.5, A: 0.7}
)

func newMarker(ns string, id, markerType int, x, y, scale float64, c Color) Marker {
	return Marker{
		Header: Header{FrameID: "map"},
		Ns:     ns,
		ID:     id,
		Type:   markerType,
		Pose: Pose{
			Position:    Point{X: x, Y: y},
			Orientation: Quaternion{W: 1},
		},
		Scale:  Vector3{X: scale, Y: scale, Z: scale},
		Color:  c,
		Points: []Point{},
		Colors: []Color{},
	}
}

func markerStride(n, limit int) int {
	stride := n / limit
	if stride < 1 {
		stride = 1
	}
	return stride
}

// TrajectoryMarkers down-samples a waypoint list into sphere markers.
// Marker ids number the sampled subset, not the source waypoints.
func TrajectoryMarkers(wpts []Waypoint, c Color) MarkerArray {
	stride := markerStride(len(wpts), maxTrajectoryMarkers)

	markers := []Marker{}
	for i := 0; i < len(wpts); i += stride {
		wp := wpts[i]
		markers = append(markers, newMarker("", len(markers), markerSphere, wp.XM, wp.YM, 0.05, c))
	}
	return MarkerArray{Markers: markers}
}

// LeftBoundary returns the left track edge for the waypoint: the lateral
// width offset along the +90 degree rotation of the heading.
func (wp Waypoint) LeftBoundary() (x, y float64) {
	return wp.XM - wp.DLeft*math.Sin(wp.PsiRad), wp.YM + wp.DLeft*math.Cos(wp.PsiRad)
}

// RightBoundary returns the right track edge, mirrored across the path.
func (wp Waypoint) RightBoundary() (x, y float64) {
	return wp.XM + wp.DRight*math.Sin(wp.PsiRad), wp.YM - wp.DRight*math.Cos(wp.PsiRad)
}

// TrackBoundsMarkers builds cube markers outlining both track edges from
// a down-sampled subset of the waypoints.
func TrackBoundsMarkers(wpts []Waypoint) MarkerArray {
	stride := markerStride(len(wpts), maxBoundaryMarkers)

	markers := []Marker{}
	sampleCount := 0
	for i := 0; i < len(wpts); i += stride {
		x, y := wpts[i].LeftBoundary()
		markers = append(markers, newMarker(NamespaceBoundsLeft, sampleCount, markerCube, x, y, 0.1, colorBoundary))
		sampleCount++
	}
	sampleCount = 0
	for i := 0; i < len(wpts); i += stride {
		x, y := wpts[i].RightBoundary()
		markers = append(markers, newMarker(NamespaceBoundsRight, rightBoundaryIDBase+sampleCount, markerCube, x, y, 0.1, colorBoundary))
		sampleCount++
	}
	return MarkerArray{Markers: markers}
}

// Trace collects marker positions, optionally filtered by namespace.
// Used by the plotting tool to recover boundary outlines from a
// document; markers from other namespaces are ignored.
func (ma MarkerArray) Trace(ns string) (xs, ys []float64) {
	for _, m := range ma.Markers {
		if ns != "" && m.Ns != ns {
			continue
		}
		xs = append(xs, m.Pose.Position.X)
		ys = append(ys, m.Pose.Position.Y)
	}
	return xs, ys
}
