package editor

import (
	"github.com/philipparndt/goplan/pkg/geometry"
	"github.com/philipparndt/goplan/pkg/plan"
)

// OnPointerClick handles a click whose pointer ray was projected onto the
// drawing plane. A nil point means the ray missed the plane and the click
// is ignored. The first click anchors a new wall; the second click
// commits it, either as a plain append or as a T-junction split when the
// new wall crosses an existing one.
func (e *Editor) OnPointerClick(planePoint *geometry.Vector3) {
	point := e.applySnap(planePoint)
	if point == nil {
		return
	}

	if !e.session.drawing {
		e.beginDrawing(*point)
		return
	}
	e.commit(*point)
}

// OnPointerMove updates the live preview while a wall is being drawn.
// Moves outside a drawing session or off the plane are ignored.
func (e *Editor) OnPointerMove(planePoint *geometry.Vector3) {
	if !e.session.drawing {
		return
	}
	point := e.applySnap(planePoint)
	if point == nil {
		return
	}
	e.session.current = *point

	tooSharp := e.updatePreviewAngle(*point)
	intersects := e.crossesAnyWall(e.session.start, *point)
	e.session.blocked = tooSharp || intersects
}

// OnExitDrawingMode abandons any in-progress wall placement. Safe to
// call in any state.
func (e *Editor) OnExitDrawingMode() {
	e.session.reset()
}

// OnToggleSnapGrid enables or disables grid snapping for subsequent
// pointer events
func (e *Editor) OnToggleSnapGrid(enabled bool) {
	e.snap.gridEnabled = enabled
}

func (e *Editor) beginDrawing(point geometry.Point2) {
	e.session.reset()
	e.session.drawing = true
	e.session.start = point
	e.session.current = point
	e.selected = ""
	e.logger.Debug("drawing started", "x", point.X, "z", point.Z)
}

// commit attempts to finish the wall at the given endpoint. A crossing
// with an existing wall always commits as a T-junction split, even when
// the preview was blocked; a plain append only commits when unblocked.
func (e *Editor) commit(end geometry.Point2) {
	start := e.session.start
	walls := e.history.Walls()

	if hit, hitWall, ok := e.earliestCrossing(start, end); ok {
		at := geometry.SnapToGrid(hit.Point, e.cfg.GridSize)
		if start.Distance(at) < plan.MinSegmentLength {
			// Snapping moved the junction onto the anchor; nothing to insert
			return
		}
		next := plan.SplitAndInsert(walls, hitWall.ID, at, start)
		e.history.Commit(next)
		e.session.reset()
		e.logger.Info("wall committed with junction", "split", hitWall.ID, "walls", len(next))
		return
	}

	if e.session.blocked {
		e.logger.Debug("blocked placement ignored")
		return
	}
	if start.Distance(end) < plan.MinSegmentLength {
		return
	}

	next := plan.Append(walls, start, end)
	e.history.Commit(next)
	e.session.reset()
	e.logger.Info("wall committed", "walls", len(next))
}

// applySnap projects a pointer point onto the plane grid and vertex
// snap targets. Returns nil when the pointer missed the plane.
func (e *Editor) applySnap(planePoint *geometry.Vector3) *geometry.Point2 {
	var raw *geometry.Point2
	if planePoint != nil {
		p := planePoint.Planar()
		raw = &p
	}
	vertices := e.history.Walls().Vertices()
	return geometry.ApplySnap(raw, e.snap.gridEnabled, vertices, e.cfg.GridSize, e.cfg.SnapRadius)
}

// updatePreviewAngle computes the angle at the session anchor between
// the last wall touching that vertex and the wall being drawn. Reports
// whether the placement is too sharp.
func (e *Editor) updatePreviewAngle(current geometry.Point2) bool {
	e.session.previewAngle = nil

	walls := e.history.Walls()
	for i := len(walls) - 1; i >= 0; i-- {
		if !walls[i].HasEndpoint(e.session.start) {
			continue
		}
		far := walls[i].OppositeEndpoint(e.session.start)
		angle := geometry.AngleAtVertex(far, e.session.start, current)
		e.session.previewAngle = &angle
		return angle < e.cfg.MinAngle
	}
	return false
}

// crossesAnyWall reports whether the candidate segment properly crosses
// any existing wall
func (e *Editor) crossesAnyWall(start, end geometry.Point2) bool {
	for _, w := range e.history.Walls() {
		if _, ok := geometry.SegmentIntersection(start, end, w.Start, w.End); ok {
			return true
		}
	}
	return false
}

// earliestCrossing finds the proper crossing with the smallest parametric
// position along start-end, scanning every existing wall
func (e *Editor) earliestCrossing(start, end geometry.Point2) (geometry.Intersection, plan.Segment, bool) {
	var (
		best     geometry.Intersection
		bestWall plan.Segment
		found    bool
	)
	for _, w := range e.history.Walls() {
		hit, ok := geometry.SegmentIntersection(start, end, w.Start, w.End)
		if !ok {
			continue
		}
		if !found || hit.T < best.T {
			best = hit
			bestWall = w
			found = true
		}
	}
	return best, bestWall, found
}
