package sashiko

// Editor wires pointer input to the pattern: two-click stitch authoring in
// draw mode, click and drag-rectangle selection in select mode. It owns the
// transient DrawingState and Selection, and keeps the instance cache from
// the latest redraw for hit-testing.
//
// The editor, renderer and hit tester all run on the caller's event loop;
// every state change triggers a full synchronous redraw, so the cache is
// always rebuilt before the next hit-test can observe it.
type Editor struct {
	Pattern    *Pattern
	Appearance Appearance

	renderer *Renderer
	state    DrawingState
	sel      Selection
	cache    []RenderedInstance
}

// NewEditor creates an editor for the pattern, rendering onto the canvas.
func NewEditor(p *Pattern, c Canvas, app Appearance) *Editor {
	return &Editor{
		Pattern:    p,
		Appearance: app,
		renderer:   NewRenderer(c, app),
		state:      DrawingState{Mode: ModeSelect},
		sel:        NewSelection(),
	}
}

// Mode returns the active interaction mode.
func (e *Editor) Mode() Mode {
	return e.state.Mode
}

// SetMode switches the interaction mode. Leaving draw mode drops a pending
// first point.
func (e *Editor) SetMode(m Mode) {
	if m != ModeDraw {
		e.state.FirstPoint = nil
	}
	e.state.Mode = m
}

// Selection returns the current selection set.
func (e *Editor) Selection() Selection {
	return e.sel
}

// Redraw repaints the surface and refreshes the hit-test cache.
func (e *Editor) Redraw() []RenderedInstance {
	e.renderer.SetAppearance(e.Appearance)
	e.cache = e.renderer.Redraw(e.Pattern, e.sel)
	return e.cache
}

// Click handles a pointer click at a canvas pixel position. toggle is the
// multi-select modifier. In draw mode the click places the first point or
// completes a stitch; in select mode it selects the closest stitch within
// threshold, toggles it when the modifier is held, or clears the selection
// when nothing is hit.
//
// The completed stitch, if any, is returned after being added to the
// pattern with the appearance defaults applied.
func (e *Editor) Click(p Vec2, toggle bool) *Stitch {
	switch e.state.Mode {
	case ModeDraw:
		return e.clickDraw(p)
	case ModeSelect:
		e.clickSelect(p, toggle)
	}
	return nil
}

func (e *Editor) clickDraw(p Vec2) *Stitch {
	snapped, ok := SnapToGrid(p, e.Pattern.Geometry)
	if !ok {
		return nil
	}

	if e.state.FirstPoint == nil {
		e.state.FirstPoint = &snapped
		return nil
	}

	first := *e.state.FirstPoint
	e.state.FirstPoint = nil

	start, end, rep, ok := NormalizeSegment(first, snapped, e.Pattern.Geometry, e.Appearance.RepeatByDefault)
	if !ok {
		return nil
	}

	st := NewStitch(start, end, rep)
	st.Size = e.Appearance.StitchSize
	st.Width = e.Appearance.StitchWidth
	st.Gap = e.Appearance.StitchGap
	e.Pattern.Add(st)
	e.Redraw()
	return st
}

func (e *Editor) clickSelect(p Vec2, toggle bool) {
	id, hit := HitPoint(p, e.cache)
	switch {
	case !hit && !toggle:
		e.sel.Replace()
	case hit && toggle:
		e.sel.Toggle(id)
	case hit:
		e.sel.Replace(id)
	}
	e.Redraw()
}

// Drag handles a completed pointer drag in select mode. A drag below the
// click threshold on both axes falls through to point selection; otherwise
// every stitch caught by the rectangle is selected (added to the selection
// when the modifier is held, replacing it otherwise).
func (e *Editor) Drag(from, to Vec2, toggle bool) {
	if e.state.Mode != ModeSelect {
		return
	}
	if IsClickDrag(from, to) {
		e.clickSelect(to, toggle)
		return
	}

	ids := HitRect(NormalizedRect(from, to), e.cache)
	if toggle {
		for _, id := range ids {
			e.sel[id] = true
		}
	} else {
		e.sel.Replace(ids...)
	}
	e.Redraw()
}
