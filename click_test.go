package click

import "testing"

// fakeRow is a recyclable row view with simulated native click events.
type fakeRow struct {
	onClick     func()
	onLongClick func() bool
}

func (r *fakeRow) SetClickHandler(h func())          { r.onClick = h }
func (r *fakeRow) SetLongClickHandler(h func() bool) { r.onLongClick = h }

// click simulates a native click event on the row.
func (r *fakeRow) click() {
	if r.onClick != nil {
		r.onClick()
	}
}

// longClick simulates a native long-click event on the row, reporting
// whether any installed handler consumed it.
func (r *fakeRow) longClick() bool {
	if r.onLongClick != nil {
		return r.onLongClick()
	}
	return false
}

// fakeContainer implements Container over an explicit set of rows whose
// bindings the test manipulates directly.
type fakeContainer struct {
	watchers  []*Watcher
	positions map[RowView]int
}

func newFakeContainer() *fakeContainer {
	return &fakeContainer{positions: make(map[RowView]int)}
}

func (c *fakeContainer) Subscribe(w Watcher) func() {
	entry := &w
	c.watchers = append(c.watchers, entry)
	if w.RowMounted != nil {
		for row := range c.positions {
			w.RowMounted(row)
		}
	}
	return func() {
		for i, e := range c.watchers {
			if e == entry {
				c.watchers = append(c.watchers[:i], c.watchers[i+1:]...)
				return
			}
		}
	}
}

func (c *fakeContainer) PositionOf(row RowView) int {
	position, ok := c.positions[row]
	if !ok {
		return NoPosition
	}
	return position
}

// mount binds the row to a position and fires the lifecycle stream.
func (c *fakeContainer) mount(row RowView, position int) {
	c.positions[row] = position
	for _, w := range c.watchers {
		if w.RowMounted != nil {
			w.RowMounted(row)
		}
	}
}

// rebind moves a mounted row to a new position without unmounting it.
func (c *fakeContainer) rebind(row RowView, position int) {
	c.positions[row] = position
}

// unmount removes the row's binding and fires the lifecycle stream.
func (c *fakeContainer) unmount(row RowView) {
	delete(c.positions, row)
	for _, w := range c.watchers {
		if w.RowUnmounted != nil {
			w.RowUnmounted(row)
		}
	}
}

func TestAddToIdempotent(t *testing.T) {
	container := newFakeContainer()
	defer RemoveFrom(container)

	m1 := AddTo(container)
	m2 := AddTo(container)
	if m1 != m2 {
		t.Fatalf("expected AddTo to return the same manager, got %p and %p", m1, m2)
	}
	if len(container.watchers) != 1 {
		t.Fatalf("expected a single lifecycle subscription, got %d", len(container.watchers))
	}

	clicks := 0
	m1.SetOnItemClickListener(func(c Container, position int, row RowView) {
		clicks++
	})
	row := &fakeRow{}
	container.mount(row, 0)
	row.click()
	if clicks != 1 {
		t.Errorf("expected click handler to fire exactly once, fired %d times", clicks)
	}
}

func TestSeparateContainersGetSeparateManagers(t *testing.T) {
	a := newFakeContainer()
	b := newFakeContainer()
	defer RemoveFrom(a)
	defer RemoveFrom(b)

	if AddTo(a) == AddTo(b) {
		t.Error("expected distinct containers to receive distinct managers")
	}
}

func TestRemoveFromStopsDelegation(t *testing.T) {
	container := newFakeContainer()

	clicks := 0
	m := AddTo(container).SetOnItemClickListener(func(c Container, position int, row RowView) {
		clicks++
	})
	mounted := &fakeRow{}
	container.mount(mounted, 0)

	if got := RemoveFrom(container); got != m {
		t.Fatalf("expected RemoveFrom to return the added manager, got %v", got)
	}
	if len(container.watchers) != 0 {
		t.Fatalf("expected lifecycle subscription to be cancelled, %d remain", len(container.watchers))
	}
	if mounted.onClick != nil || mounted.onLongClick != nil {
		t.Error("expected handlers to be uninstalled from mounted rows on removal")
	}

	// A row mounted after removal must not reach the old callback.
	late := &fakeRow{}
	container.mount(late, 1)
	late.click()
	if clicks != 0 {
		t.Errorf("expected no clicks after removal, got %d", clicks)
	}
}

func TestRemoveFromUntaggedContainer(t *testing.T) {
	container := newFakeContainer()
	if m := RemoveFrom(container); m != nil {
		t.Errorf("expected removing an untagged container to return nil, got %v", m)
	}
}

func TestNoCallbackSilence(t *testing.T) {
	container := newFakeContainer()
	defer RemoveFrom(container)

	AddTo(container)
	row := &fakeRow{}
	container.mount(row, 0)

	// Neither callback is registered: a click is a no-op and a long
	// click is unconsumed.
	row.click()
	if consumed := row.longClick(); consumed {
		t.Error("expected long click with no callback to report unconsumed")
	}
}

func TestLongClickPropagation(t *testing.T) {
	type testcase struct {
		name     string
		callback OnItemLongClick
		consumed bool
	}
	for _, tc := range []testcase{
		{
			name: "consuming callback",
			callback: func(Container, int, RowView) bool {
				return true
			},
			consumed: true,
		},
		{
			name: "non-consuming callback",
			callback: func(Container, int, RowView) bool {
				return false
			},
			consumed: false,
		},
		{
			name:     "absent callback",
			callback: nil,
			consumed: false,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			container := newFakeContainer()
			defer RemoveFrom(container)

			AddTo(container).SetOnItemLongClickListener(tc.callback)
			row := &fakeRow{}
			container.mount(row, 0)
			if got := row.longClick(); got != tc.consumed {
				t.Errorf("expected consumed=%v, got %v", tc.consumed, got)
			}
		})
	}
}

func TestIndexFreshness(t *testing.T) {
	container := newFakeContainer()
	defer RemoveFrom(container)

	var positions []int
	AddTo(container).SetOnItemClickListener(func(c Container, position int, row RowView) {
		positions = append(positions, position)
	})
	row := &fakeRow{}
	container.mount(row, 3)
	row.click()

	// The container rebinds the mounted row without an unmount; a click
	// must resolve the new position, never the one it mounted at.
	container.rebind(row, 7)
	row.click()

	if len(positions) != 2 || positions[0] != 3 || positions[1] != 7 {
		t.Errorf("expected clicks at positions [3 7], got %v", positions)
	}
}

func TestUnresolvableIndexGuard(t *testing.T) {
	container := newFakeContainer()
	defer RemoveFrom(container)

	clicks := 0
	longClicks := 0
	AddTo(container).
		SetOnItemClickListener(func(Container, int, RowView) { clicks++ }).
		SetOnItemLongClickListener(func(Container, int, RowView) bool {
			longClicks++
			return true
		})
	row := &fakeRow{}
	container.mount(row, 2)

	// Simulate a mid-recycle row: still physically wired, but no longer
	// bound to any position.
	container.rebind(row, 2)
	delete(container.positions, row)

	row.click()
	if clicks != 0 {
		t.Errorf("expected unresolvable click to be ignored, callback ran %d times", clicks)
	}
	if consumed := row.longClick(); consumed || longClicks != 0 {
		t.Errorf("expected unresolvable long click to be unconsumed and ignored, consumed=%v runs=%d", consumed, longClicks)
	}
}

func TestFluentChaining(t *testing.T) {
	container := newFakeContainer()
	defer RemoveFrom(container)

	clicks := 0
	longClicks := 0
	m := AddTo(container)
	got := m.
		SetOnItemClickListener(func(Container, int, RowView) { clicks++ }).
		SetOnItemLongClickListener(func(Container, int, RowView) bool {
			longClicks++
			return false
		})
	if got != m {
		t.Fatal("expected setters to return the manager for chaining")
	}

	row := &fakeRow{}
	container.mount(row, 0)
	row.click()
	row.longClick()
	if clicks != 1 || longClicks != 1 {
		t.Errorf("expected both chained callbacks to be live, got clicks=%d longClicks=%d", clicks, longClicks)
	}
}

func TestLateRegistrationReachesMountedRows(t *testing.T) {
	container := newFakeContainer()
	defer RemoveFrom(container)

	m := AddTo(container)
	row := &fakeRow{}
	container.mount(row, 4)
	if row.onClick != nil {
		t.Fatal("expected no handler on mount while no callback is registered")
	}

	// Registering after the row is already mounted installs the handler
	// immediately rather than waiting for the next mount cycle.
	var position int
	m.SetOnItemClickListener(func(c Container, p int, r RowView) {
		position = p
	})
	row.click()
	if position != 4 {
		t.Errorf("expected late-registered callback to fire at position 4, got %d", position)
	}
}

func TestClearingCallbackUninstallsHandlers(t *testing.T) {
	container := newFakeContainer()
	defer RemoveFrom(container)

	clicks := 0
	m := AddTo(container).
		SetOnItemClickListener(func(Container, int, RowView) { clicks++ }).
		SetOnItemLongClickListener(func(Container, int, RowView) bool { return true })
	row := &fakeRow{}
	container.mount(row, 0)

	m.SetOnItemClickListener(nil)
	m.SetOnItemLongClickListener(nil)
	if row.onClick != nil || row.onLongClick != nil {
		t.Error("expected clearing callbacks to uninstall handlers from mounted rows")
	}
	row.click()
	if clicks != 0 {
		t.Errorf("expected no dispatch after clearing, got %d", clicks)
	}
}

func TestUnmountCleansHandlers(t *testing.T) {
	// Policy: a row leaving the visible tree sheds its handlers, so a
	// pooled row never carries dispatch wiring from a previous mount
	// cycle into its next one.
	container := newFakeContainer()
	defer RemoveFrom(container)

	AddTo(container).SetOnItemClickListener(NopClick)
	row := &fakeRow{}
	container.mount(row, 0)
	if row.onClick == nil {
		t.Fatal("expected handler installed on mount")
	}
	container.unmount(row)
	if row.onClick != nil || row.onLongClick != nil {
		t.Error("expected handlers removed on unmount")
	}
}

func TestSubscribeBeforeRowsExist(t *testing.T) {
	container := newFakeContainer()
	defer RemoveFrom(container)

	// Callback first, rows second: the mount-time path installs the
	// handler against present-moment callback state.
	var position int
	AddTo(container).SetOnItemClickListener(func(c Container, p int, r RowView) {
		position = p
	})
	row := &fakeRow{}
	container.mount(row, 9)
	row.click()
	if position != 9 {
		t.Errorf("expected callback at position 9, got %d", position)
	}
}
