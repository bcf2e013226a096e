// Package click adds item click support to scrollable containers that
// recycle their rows, without the need to wire listeners into the code that
// produces or binds each row.
//
// Use it by adding click support to the desired container:
//
//	click.AddTo(container).SetOnItemClickListener(func(c click.Container, position int, row click.RowView) {
//		// Handle the clicked item.
//	})
//
// A container holds at most one manager: repeated AddTo calls on the same
// container return the same instance. The manager follows the container's
// row lifecycle, so callbacks may be registered before or after any rows
// exist.
package click

// OnItemClick is invoked when a row of a container is clicked. position is
// the logical index the row was bound to at the moment of the click.
type OnItemClick func(c Container, position int, row RowView)

// OnItemLongClick is invoked when a row of a container is long-clicked. It
// reports whether it consumed the event; returning false allows the event
// to propagate to other handlers.
type OnItemLongClick func(c Container, position int, row RowView) bool

// NopClick is an OnItemClick that does nothing. Callers interested only in
// long clicks can register it instead of branching on nil.
var NopClick OnItemClick = func(Container, int, RowView) {}

// Manager delegates the click and long-click events of a single container.
// All methods must be called from the event loop that owns the container.
type Manager struct {
	container Container

	onItemClick     OnItemClick
	onItemLongClick OnItemLongClick

	// mounted tracks the row views currently part of the container's
	// visible tree, maintained from the lifecycle stream. It is what
	// allows late callback registration to reach rows that are already
	// on screen.
	mounted map[RowView]struct{}

	// cancel tears down the lifecycle subscription.
	cancel func()
}

// AddTo ensures that the container's row clicks are delegated through a
// Manager and returns that manager. The manager will be reused if
// previously added to the same container.
func AddTo(c Container) *Manager {
	return managers.addTo(c)
}

// RemoveFrom detaches the manager previously added to the container,
// unsubscribing it from the container's row lifecycle and uninstalling its
// handlers from any still-mounted rows. It returns the detached manager, or
// nil if the container never had one; removing twice is harmless.
func RemoveFrom(c Container) *Manager {
	return managers.removeFrom(c)
}

func newManager(c Container) *Manager {
	m := &Manager{
		container: c,
		mounted:   make(map[RowView]struct{}),
	}
	m.cancel = c.Subscribe(Watcher{
		RowMounted:   m.rowMounted,
		RowUnmounted: m.rowUnmounted,
	})
	return m
}

// SetOnItemClickListener registers the callback invoked when a row is
// clicked, replacing any previous callback. A nil callback disables click
// dispatch. Handlers on currently mounted rows are synchronized
// immediately, so registration order relative to layout does not matter.
// It returns the manager to allow chained configuration.
func (m *Manager) SetOnItemClickListener(h OnItemClick) *Manager {
	m.onItemClick = h
	for row := range m.mounted {
		m.syncClick(row)
	}
	return m
}

// SetOnItemLongClickListener registers the callback invoked when a row is
// long-clicked, replacing any previous callback. A nil callback disables
// long-click dispatch, in which case long clicks report as unconsumed.
// Handlers on currently mounted rows are synchronized immediately. It
// returns the manager to allow chained configuration.
func (m *Manager) SetOnItemLongClickListener(h OnItemLongClick) *Manager {
	m.onItemLongClick = h
	for row := range m.mounted {
		m.syncLongClick(row)
	}
	return m
}

func (m *Manager) rowMounted(row RowView) {
	m.mounted[row] = struct{}{}
	m.syncClick(row)
	m.syncLongClick(row)
}

func (m *Manager) rowUnmounted(row RowView) {
	delete(m.mounted, row)
	// The container is free to recycle this row view for different data,
	// or the caller may remove the manager while the row sits in a pool.
	// Either way, handlers from this mount cycle must not survive it.
	row.SetClickHandler(nil)
	row.SetLongClickHandler(nil)
}

// syncClick aligns the row's installed click handler with the current
// callback state.
func (m *Manager) syncClick(row RowView) {
	if m.onItemClick == nil {
		row.SetClickHandler(nil)
		return
	}
	row.SetClickHandler(func() {
		m.dispatchClick(row)
	})
}

// syncLongClick aligns the row's installed long-click handler with the
// current callback state.
func (m *Manager) syncLongClick(row RowView) {
	if m.onItemLongClick == nil {
		row.SetLongClickHandler(nil)
		return
	}
	row.SetLongClickHandler(func() bool {
		return m.dispatchLongClick(row)
	})
}

// dispatchClick resolves the row's current position and notifies the click
// callback. Rows that do not resolve to a position are ignored: the click
// raced with a rebind and there is no index it can be truthfully attributed
// to.
func (m *Manager) dispatchClick(row RowView) {
	if m.onItemClick == nil {
		return
	}
	position := m.container.PositionOf(row)
	if position == NoPosition {
		return
	}
	m.onItemClick(m.container, position, row)
}

// dispatchLongClick resolves the row's current position and notifies the
// long-click callback, reporting its consumed verdict. Unresolvable rows
// and absent callbacks report unconsumed so the event keeps propagating.
func (m *Manager) dispatchLongClick(row RowView) bool {
	if m.onItemLongClick == nil {
		return false
	}
	position := m.container.PositionOf(row)
	if position == NoPosition {
		return false
	}
	return m.onItemLongClick(m.container, position, row)
}

// detach severs the manager from its container. No lifecycle event fired
// after this point can reach the manager.
func (m *Manager) detach() {
	m.cancel()
	for row := range m.mounted {
		row.SetClickHandler(nil)
		row.SetLongClickHandler(nil)
		delete(m.mounted, row)
	}
}
