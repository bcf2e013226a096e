package click

import "sync"

// registry associates each container with its manager, keyed by container
// identity. A single container's events are serialized by its own event
// loop, but separate windows run separate loops and share this
// process-wide table, so the table carries its own lock.
type registry struct {
	mu          sync.Mutex
	byContainer map[Container]*Manager
}

var managers = &registry{
	byContainer: make(map[Container]*Manager),
}

// addTo returns the manager for the container, constructing and
// subscribing one if the container has none. It never creates two managers
// for the same container.
func (r *registry) addTo(c Container) *Manager {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.byContainer[c]
	if !ok {
		m = newManager(c)
		r.byContainer[c] = m
	}
	return m
}

// removeFrom clears the container's registry entry and detaches its
// manager, if any.
func (r *registry) removeFrom(c Container) *Manager {
	r.mu.Lock()
	m := r.byContainer[c]
	delete(r.byContainer, c)
	r.mu.Unlock()
	if m != nil {
		m.detach()
	}
	return m
}
