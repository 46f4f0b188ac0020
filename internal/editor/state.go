package editor

import (
	"github.com/philipparndt/goplan/pkg/geometry"
)

// Config holds the tunable sketching parameters
type Config struct {
	GridSize   float64 // Spacing of the snap grid
	SnapRadius float64 // Capture distance for vertex snapping
	MinAngle   float64 // Smallest allowed angle between adjoining walls (radians)
}

// DefaultConfig returns the standard sketching parameters
func DefaultConfig() Config {
	return Config{
		GridSize:   geometry.DefaultGridSize,
		SnapRadius: geometry.DefaultSnapRadius,
		MinAngle:   geometry.MinWallAngle,
	}
}

// SnapSettings holds the live snapping switches
type SnapSettings struct {
	gridEnabled bool
}

// sessionState holds the transient state of one in-progress wall
// placement, from first click to commit or cancellation
type sessionState struct {
	drawing      bool
	start        geometry.Point2 // Anchor vertex of the wall being drawn
	current      geometry.Point2 // Latest snapped pointer position
	blocked      bool            // Placement would be too sharp or cross a wall
	previewAngle *float64        // Angle at the anchor, radians; nil if no wall shares it
}

func (s *sessionState) reset() {
	*s = sessionState{}
}

// Session is a read-only snapshot of the drawing session, as presented
// to the viewer after each event
type Session struct {
	Drawing      bool
	Start        geometry.Point2
	Current      geometry.Point2
	Blocked      bool
	AngleDegrees *float64 // Preview angle at the anchor vertex, if any
}

// CameraController is implemented by the viewer so the editor can request
// a view change without reaching into rendering state
type CameraController interface {
	ResetView()
}
