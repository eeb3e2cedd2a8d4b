// Package raceline converts a racing-line CSV export into the map bundle
// consumed by the race stack: a global waypoints document with three
// trajectory variants plus the map georeference, overtaking-sector and
// speed-scaling configuration files.
package raceline

// NumColumns is the width of the CSV schema. Each row carries four
// parallel parameterizations of the same lap: the raw racing line, the
// reference racing line, the reference centerline, and sampled
// track-boundary points.
const NumColumns = 46

// Raw racing line (the unscaled optimizer output, fastest variant).
const (
	colRawX         = 0 // x_rl_m
	colRawY         = 1 // y_rl_m
	colRawSpeed     = 3 // v_rl_mps
	colRawLatOffset = 4 // n_rl_m
	colRawHeading   = 5 // chi_rl_rad
	colRawAccel     = 6 // ax_rl_mps2
)

// Reference racing line (refined, smoother parameterization).
const (
	colRefRLArc        = 11 // s_ref_rl_m
	colRefRLX          = 12 // x_ref_rl_m
	colRefRLY          = 13 // y_ref_rl_m
	colRefRLHeading    = 15 // theta_ref_rl_rad
	colRefRLCurvature  = 18 // dtheta_ref_rl_radpm
	colRefRLWidthRight = 21 // w_tr_right_ref_rl_m
	colRefRLWidthLeft  = 22 // w_tr_left_ref_rl_m
)

// Reference centerline (track center, most conservative geometry).
const (
	colRefCLArc        = 26 // s_ref_cl_m
	colRefCLX          = 27 // x_ref_cl_m
	colRefCLY          = 28 // y_ref_cl_m
	colRefCLHeading    = 30 // theta_ref_cl_rad
	colRefCLCurvature  = 33 // dtheta_ref_cl_radpm
	colRefCLWidthRight = 36 // w_tr_right_ref_cl_m
	colRefCLWidthLeft  = 37 // w_tr_left_ref_cl_m
)

// Track-boundary samples along the reference racing line.
const (
	colBoundLeftX  = 41 // tb_left_x_ref_rl_m
	colBoundLeftY  = 42 // tb_left_y_ref_rl_m
	colBoundRightX = 44 // tb_right_x_ref_rl_m
	colBoundRightY = 45 // tb_right_y_ref_rl_m
)
