package raceline

import (
	"errors"

	"github.com/trackside-data/raceline.convert/internal/monitoring"
)

// Waypoint is one sample of a global trajectory in the map frame.
// Field order matches the wire schema of the consuming stack.
type Waypoint struct {
	ID         int     `json:"id"`
	SM         float64 `json:"s_m"`
	DM         float64 `json:"d_m"`
	XM         float64 `json:"x_m"`
	YM         float64 `json:"y_m"`
	DRight     float64 `json:"d_right"`
	DLeft      float64 `json:"d_left"`
	PsiRad     float64 `json:"psi_rad"`
	KappaRadpm float64 `json:"kappa_radpm"`
	VxMps      float64 `json:"vx_mps"`
	AxMps2     float64 `json:"ax_mps2"`
}

// Variant selects which parameterization a waypoint is projected from.
type Variant int

const (
	// Centerline follows the reference centerline with heavily reduced
	// speed and acceleration targets.
	Centerline Variant = iota
	// Moderate (SP) follows the reference racing line with a mild
	// speed reduction.
	Moderate
	// Aggressive (IQP) follows the raw racing line at full speed.
	Aggressive
)

func (v Variant) String() string {
	switch v {
	case Centerline:
		return "centerline"
	case Moderate:
		return "sp"
	case Aggressive:
		return "iqp"
	}
	return "unknown"
}

// Derating applied to the raw racing-line speed/acceleration profile.
var variantScaling = [...]struct{ Speed, Accel float64 }{
	Centerline: {Speed: 0.70, Accel: 0.50},
	Moderate:   {Speed: 0.85, Accel: 0.80},
	Aggressive: {Speed: 1.00, Accel: 1.00},
}

// ProjectWaypoint derives one waypoint of the given variant from a row.
// It is a pure function of (row, variant, id): geometry comes from the
// variant's column subset, the speed profile always from the raw racing
// line scaled by the variant's derating. A row that is short or carries
// a non-numeric required field fails as a whole.
func ProjectWaypoint(row Row, variant Variant, id int) (Waypoint, error) {
	var err error
	read := func(col int) float64 {
		if err != nil {
			return 0
		}
		var v float64
		v, err = row.Field(col)
		return v
	}

	wp := Waypoint{ID: id}
	switch variant {
	case Centerline:
		wp.SM = read(colRefCLArc)
		wp.XM = read(colRefCLX)
		wp.YM = read(colRefCLY)
		wp.PsiRad = read(colRefCLHeading)
		wp.KappaRadpm = read(colRefCLCurvature)
		wp.DRight = read(colRefCLWidthRight)
		wp.DLeft = read(colRefCLWidthLeft)
	case Moderate:
		wp.SM = read(colRefRLArc)
		wp.XM = read(colRefRLX)
		wp.YM = read(colRefRLY)
		wp.PsiRad = read(colRefRLHeading)
		wp.KappaRadpm = read(colRefRLCurvature)
		wp.DRight = read(colRefRLWidthRight)
		wp.DLeft = read(colRefRLWidthLeft)
	case Aggressive:
		// Position and heading from the raw line; arc length, curvature
		// and track widths from the reference racing line, which shares
		// its parameterization and is numerically more stable.
		wp.XM = read(colRawX)
		wp.YM = read(colRawY)
		wp.PsiRad = read(colRawHeading)
		wp.SM = read(colRefRLArc)
		wp.KappaRadpm = read(colRefRLCurvature)
		wp.DRight = read(colRefRLWidthRight)
		wp.DLeft = read(colRefRLWidthLeft)
	}

	rawSpeed := read(colRawSpeed)
	rawAccel := read(colRawAccel)
	if err != nil {
		return Waypoint{}, err
	}

	sc := variantScaling[variant]
	wp.VxMps = rawSpeed * sc.Speed
	wp.AxMps2 = rawAccel * sc.Accel
	return wp, nil
}

// TrajectorySet holds the three parallel waypoint lists derived from one
// export. The lists always have equal length: a row either contributes a
// waypoint to all three variants or is skipped entirely.
type TrajectorySet struct {
	Centerline []Waypoint
	Moderate   []Waypoint
	Aggressive []Waypoint
}

// ProjectTrajectories projects every valid row into the three variants.
// Malformed rows are skipped with a warning and leave no gap in the id
// numbering. An empty result is an error.
func ProjectTrajectories(rows []Row) (*TrajectorySet, error) {
	ts := &TrajectorySet{}
	for i, row := range rows {
		cl, err := ProjectWaypoint(row, Centerline, len(ts.Centerline))
		if err == nil {
			var sp, iqp Waypoint
			sp, err = ProjectWaypoint(row, Moderate, len(ts.Moderate))
			if err == nil {
				iqp, err = ProjectWaypoint(row, Aggressive, len(ts.Aggressive))
			}
			if err == nil {
				ts.Centerline = append(ts.Centerline, cl)
				ts.Moderate = append(ts.Moderate, sp)
				ts.Aggressive = append(ts.Aggressive, iqp)
				continue
			}
		}
		monitoring.Warnf("skipping row %d: %v", i, err)
	}

	if len(ts.Centerline) == 0 {
		return nil, errors.New("no valid waypoints could be parsed from input")
	}
	return ts, nil
}
