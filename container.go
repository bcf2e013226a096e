package click

// NoPosition is the sentinel reported for a row view that is not currently
// bound to any logical position, such as a row that is mid-recycle.
const NoPosition = -1

// RowView is a single recyclable visual unit owned by a Container. At any
// instant a row view is either mounted (bound to a logical position and part
// of the visible tree) or unmounted. The container may silently rebind a
// mounted row view to a different position, which is why positions are
// resolved through the container at event time rather than stored here.
//
// Implementations must be comparable, as managers track mounted rows by
// identity. Pointer types satisfy this naturally.
type RowView interface {
	// SetClickHandler installs the handler invoked when the row view is
	// clicked, replacing any previous handler. A nil handler clears the
	// slot. A row view never has more than one click handler.
	SetClickHandler(func())
	// SetLongClickHandler installs the handler invoked when the row view
	// is long-clicked, replacing any previous handler. The handler reports
	// whether it consumed the event; an unconsumed event is free to
	// propagate to other handlers. A nil handler clears the slot, and a
	// row with an empty slot reports long clicks as unconsumed.
	SetLongClickHandler(func() bool)
}

// Watcher receives the row lifecycle stream of a Container. Either hook may
// be nil if the subscriber does not care about that transition.
type Watcher struct {
	// RowMounted is invoked when a row view is bound to a logical
	// position and joins the container's visible tree.
	RowMounted func(RowView)
	// RowUnmounted is invoked when a row view leaves the visible tree.
	// The container may later remount the same row view bound to
	// different data.
	RowUnmounted func(RowView)
}

// Container is a scrollable item view that recycles its rows, such as a
// rowlist.List. The container owns the row lifecycle and remains the
// authority on which position a row view represents.
//
// Implementations must be comparable, as the package-level registry keys
// managers by container identity.
type Container interface {
	// Subscribe registers a watcher on the container's row lifecycle
	// stream and returns a cancel function that removes it. Containers
	// must report a mount for every row that is already mounted at
	// subscription time, so that subscribing after rows exist behaves the
	// same as subscribing before they do. After cancel returns no further
	// events reach the watcher.
	Subscribe(Watcher) (cancel func())
	// PositionOf returns the logical position the row view is bound to at
	// this instant, or NoPosition if the row is not currently bound to
	// any data. The result must never be cached: the container may rebind
	// a mounted row between any two calls.
	PositionOf(RowView) int
}
