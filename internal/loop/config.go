package loop

import "time"

// Frame loop tunables.
// All tunable session parameters are centralized here for easy adjustment.

// Rendering
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	MaxTermWidth    = 160 // Columns; larger terminals get a centered field and a border
	MaxTermHeight   = 60  // Rows
)

// Field decoration
const (
	netDash = 20.0 // Logical units
	netGap  = 15.0
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Announcements from other sessions
const (
	AnnouncementSeconds = 5.0
)
