package rowlist

import (
	"image"
	"time"

	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
)

// LongPressDuration is how long a press must be held before it dispatches
// as a long click.
const LongPressDuration = 500 * time.Millisecond

// Row holds the persistent interactive state for a single recycled row. A
// Row is owned by a List: it is mounted while bound to a visible index and
// pooled for reuse once its slot leaves the window.
//
// Row implements click.RowView. The handler slots are managed by the click
// package; applications normally never touch them directly.
type Row struct {
	click gesture.Click

	// pressedAt is when the in-progress press began.
	pressedAt time.Time
	pressed   bool
	// longFired records that the in-progress press already dispatched a
	// long click, and longConsumed the handler's verdict for it.
	longFired    bool
	longConsumed bool

	onClick     func()
	onLongClick func() bool
}

// SetClickHandler installs the row's single click handler. nil clears it.
func (r *Row) SetClickHandler(h func()) {
	r.onClick = h
}

// SetLongClickHandler installs the row's single long-click handler. nil
// clears it.
func (r *Row) SetLongClickHandler(h func() bool) {
	r.onLongClick = h
}

// Pressed reports whether a pointer is currently pressing the row.
func (r *Row) Pressed() bool {
	return r.pressed
}

// Hovered reports whether a pointer is hovering the row.
func (r *Row) Hovered() bool {
	return r.click.Hovered()
}

// layout processes the row's pending pointer events and lays out w within
// the row's input area.
func (r *Row) layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	r.update(gtx)
	dims := w(gtx)
	defer clip.Rect(image.Rectangle{Max: dims.Size}).Push(gtx.Ops).Pop()
	pointer.CursorPointer.Add(gtx.Ops)
	r.click.Add(gtx.Ops)
	return dims
}

// update drains gesture events and fires the installed handlers. A long
// click fires as soon as a press has been held for LongPressDuration; if
// its handler consumes it, the eventual release is swallowed, otherwise
// the release dispatches as a normal click.
func (r *Row) update(gtx layout.Context) {
	for _, e := range r.click.Events(gtx) {
		switch e.Type {
		case gesture.TypePress:
			r.pressed = true
			r.pressedAt = gtx.Now
			r.longFired = false
			r.longConsumed = false
		case gesture.TypeCancel:
			r.pressed = false
			r.longFired = false
		case gesture.TypeClick:
			r.pressed = false
			if r.longFired && r.longConsumed {
				break
			}
			if r.onClick != nil {
				r.onClick()
			}
		}
	}
	if r.pressed && !r.longFired {
		deadline := r.pressedAt.Add(LongPressDuration)
		if !gtx.Now.Before(deadline) {
			r.longFired = true
			if r.onLongClick != nil {
				r.longConsumed = r.onLongClick()
			}
		} else {
			// Wake the frame loop when the press crosses the
			// long-click threshold.
			op.InvalidateOp{At: deadline}.Add(gtx.Ops)
		}
	}
}

// reset clears transient press state when the row is recycled. Handler
// slots are left alone: they belong to the click manager, which clears
// them on unmount.
func (r *Row) reset() {
	r.pressed = false
	r.longFired = false
	r.longConsumed = false
}
