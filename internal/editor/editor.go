// Package editor implements the interactive wall-sketching engine: it
// sequences pointer events into a drawing session, validates placements
// against the existing plan, and records every committed change in an
// undo/redo history. Rendering, camera control, and pointer-to-plane
// projection are collaborators on the outside; the editor only consumes
// projected plane points and answers state queries.
package editor

import (
	"io"
	"log/slog"
	"math"

	"github.com/philipparndt/goplan/pkg/plan"
)

// Editor owns the drawing session and the wall-plan history. All methods
// must be called from a single goroutine; events are processed in the
// order they arrive.
type Editor struct {
	cfg      Config
	logger   *slog.Logger
	camera   CameraController
	history  *History
	session  sessionState
	snap     SnapSettings
	selected string // Selected segment id, empty for none
}

// Option configures an Editor
type Option func(*Editor)

// WithLogger sets the structured logger. Without it, log output is
// discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) {
		e.logger = logger
	}
}

// WithCamera attaches the viewer's camera controller so the editor can
// request view resets
func WithCamera(camera CameraController) Option {
	return func(e *Editor) {
		e.camera = camera
	}
}

// WithConfig overrides the default sketching parameters
func WithConfig(cfg Config) Option {
	return func(e *Editor) {
		e.cfg = cfg
	}
}

// New creates an editor with an empty plan, grid snapping enabled
func New(opts ...Option) *Editor {
	e := &Editor{
		cfg:     DefaultConfig(),
		history: NewHistory(),
		snap:    SnapSettings{gridEnabled: true},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return e
}

// Walls returns the current wall set, in insertion order
func (e *Editor) Walls() plan.WallSet {
	return e.history.Walls()
}

// Session returns a snapshot of the in-progress wall placement
func (e *Editor) Session() Session {
	s := Session{
		Drawing: e.session.drawing,
		Start:   e.session.start,
		Current: e.session.current,
		Blocked: e.session.blocked,
	}
	if e.session.previewAngle != nil {
		deg := *e.session.previewAngle * 180 / math.Pi
		s.AngleDegrees = &deg
	}
	return s
}

// SelectedID returns the id of the selected segment, or "" when nothing
// is selected
func (e *Editor) SelectedID() string {
	return e.selected
}

// Select marks the segment with the given id as selected. An empty id
// clears the selection; unknown ids are ignored.
func (e *Editor) Select(id string) {
	if id == "" {
		e.selected = ""
		return
	}
	if _, ok := e.history.Walls().Find(id); ok {
		e.selected = id
	}
}

// Undo reverts the most recent committed change, if any
func (e *Editor) Undo() {
	if e.history.Undo() {
		e.selected = ""
		e.logger.Info("undo", "walls", len(e.history.Walls()))
	}
}

// Redo reapplies the most recently undone change, if any
func (e *Editor) Redo() {
	if e.history.Redo() {
		e.selected = ""
		e.logger.Info("redo", "walls", len(e.history.Walls()))
	}
}

// DeleteSegment removes the wall with the given id as a committed
// change. Unknown or empty ids are ignored.
func (e *Editor) DeleteSegment(id string) {
	walls := e.history.Walls()
	idx := walls.IndexOf(id)
	if idx < 0 {
		return
	}

	next := make(plan.WallSet, 0, len(walls)-1)
	next = append(next, walls[:idx]...)
	next = append(next, walls[idx+1:]...)
	e.history.Commit(next)

	if e.selected == id {
		e.selected = ""
	}
	e.logger.Info("segment deleted", "id", id, "walls", len(next))
}

// ResetView asks the attached camera controller to restore the default
// view. Safe to call without a camera.
func (e *Editor) ResetView() {
	if e.camera != nil {
		e.camera.ResetView()
	}
}
