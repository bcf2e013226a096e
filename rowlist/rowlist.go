/*
Package rowlist provides a scrollable Gio list that recycles the interactive
state of its rows and exposes the row lifecycle as a click.Container.

Gio's layout.List already performs the windowing: only rows within the
viewport are laid out each frame. This package adds a pool of persistent row
state on top of that window. A row state is mounted when its slot enters the
window, rebound in place as scrolling moves different indices through the
slot, and unmounted back into the pool when the slot leaves the window.

Because a mounted row may represent a different index on every frame, the
index a row represents is resolved through the List at event time rather
than stored on the row.
*/
package rowlist

import (
	"gioui.org/layout"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"git.sr.ht/~gioverse/click"
)

// maxPooled bounds how many unmounted rows are retained for reuse. Rows
// beyond this are released for collection.
const maxPooled = 16

// RowWidget presents the data at index within the given row. The same row
// may present different indices on different frames, so implementations
// must key any per-item lookups off index, not off the row.
type RowWidget func(gtx layout.Context, row *Row, index int) layout.Dimensions

// watcherEntry pairs a subscribed watcher with the handle used to cancel
// it.
type watcherEntry struct {
	id int
	w  click.Watcher
}

// List is a vertical scrollable container of recycled rows. The zero value
// is ready to use.
//
// List implements click.Container, so click support can be attached with
// click.AddTo(&list). All methods must be called from the event loop that
// lays the list out.
type List struct {
	// list holds the scrollbar and viewport state.
	list widget.List

	// active holds the rows bound to the visible window, ordered by
	// slot: active[0] presents the first visible index, and so on.
	active []*Row
	// pool holds unmounted rows available for reuse.
	pool []*Row
	// positions maps each active row to the index it is bound to this
	// frame. It is the authority consulted by PositionOf.
	positions map[click.RowView]int

	watchers      []watcherEntry
	nextWatcherID int
}

func (l *List) init() {
	if l.positions == nil {
		l.positions = make(map[click.RowView]int)
		l.list.Axis = layout.Vertical
	}
}

// Layout the list with n total rows presented by w. As the viewport moves,
// mounted rows are rebound in place to whichever index occupies their slot,
// and rows whose slots leave the window are unmounted and pooled.
func (l *List) Layout(gtx layout.Context, th *material.Theme, n int, w RowWidget) layout.Dimensions {
	l.init()
	used := 0
	dims := material.List(th, &l.list).Layout(gtx, n, func(gtx layout.Context, index int) layout.Dimensions {
		row := l.bind(used, index)
		used++
		return row.layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return w(gtx, row, index)
		})
	})
	l.retire(used)
	return dims
}

// Subscribe registers a watcher on the row lifecycle stream. Rows that are
// already mounted are replayed to the watcher, so subscribing after the
// first layout behaves the same as subscribing before it. The returned
// cancel removes the watcher.
func (l *List) Subscribe(w click.Watcher) (cancel func()) {
	l.init()
	id := l.nextWatcherID
	l.nextWatcherID++
	l.watchers = append(l.watchers, watcherEntry{id: id, w: w})
	if w.RowMounted != nil {
		for _, row := range l.active {
			w.RowMounted(row)
		}
	}
	return func() {
		for i, e := range l.watchers {
			if e.id == id {
				l.watchers = append(l.watchers[:i], l.watchers[i+1:]...)
				return
			}
		}
	}
}

// PositionOf returns the index the row is bound to on the current frame,
// or click.NoPosition if the row is pooled or foreign to this list.
func (l *List) PositionOf(row click.RowView) int {
	position, ok := l.positions[row]
	if !ok {
		return click.NoPosition
	}
	return position
}

// bind returns the row for a visible slot, mounting a pooled or fresh row
// if the slot is new this frame. Rows already occupying their slot are
// rebound in place: their interactive state carries over, only the bound
// index changes.
func (l *List) bind(slot, index int) *Row {
	if slot < len(l.active) {
		row := l.active[slot]
		l.positions[row] = index
		return row
	}
	var row *Row
	if len(l.pool) > 0 {
		row = l.pool[len(l.pool)-1]
		l.pool = l.pool[:len(l.pool)-1]
	} else {
		row = new(Row)
	}
	l.active = append(l.active, row)
	l.positions[row] = index
	for _, e := range l.watchers {
		if e.w.RowMounted != nil {
			e.w.RowMounted(row)
		}
	}
	return row
}

// retire unmounts the rows whose slots fell outside the window this frame
// and returns them to the pool.
func (l *List) retire(used int) {
	for _, row := range l.active[used:] {
		delete(l.positions, row)
		for _, e := range l.watchers {
			if e.w.RowUnmounted != nil {
				e.w.RowUnmounted(row)
			}
		}
		row.reset()
		if len(l.pool) < maxPooled {
			l.pool = append(l.pool, row)
		}
	}
	l.active = l.active[:used]
}

// ScrollBy offsets the viewport by the given number of rows. Useful for
// programmatic scrolling; user scrolling is handled during Layout.
func (l *List) ScrollBy(rows int) {
	l.init()
	l.list.Position.First += rows
	if l.list.Position.First < 0 {
		l.list.Position.First = 0
	}
	l.list.Position.Offset = 0
	l.list.Position.BeforeEnd = true
}
