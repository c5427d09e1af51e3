package router

import "sync"

// Location is the current view plus, after a redirect, the path the user
// originally asked for.
type Location struct {
	Path    string
	From    string
	Pending bool
}

// Navigator records the current location. All guarded navigation goes
// through Go.
type Navigator struct {
	mu    sync.RWMutex
	guard *Guard
	cur   Location
}

// NewNavigator binds a navigator to guard; the guard uses it for forced
// redirects on authorization failures.
func NewNavigator(guard *Guard) *Navigator {
	n := &Navigator{guard: guard}
	guard.nav = n
	return n
}

// Go applies the guard to path. A pending decision returns the requested
// location flagged Pending and leaves the current location unchanged.
func (n *Navigator) Go(path string) Location {
	p := Normalize(path)
	d := n.guard.Check(p)

	var loc Location
	switch d.Kind {
	case Pending:
		return Location{Path: p, Pending: true}
	case Redirect:
		loc = Location{Path: d.To, From: d.From}
	default:
		loc = Location{Path: p}
	}

	n.mu.Lock()
	n.cur = loc
	n.mu.Unlock()
	return loc
}

// Replace moves to path without consulting the guard.
func (n *Navigator) Replace(path string) Location {
	return n.replace(Location{Path: Normalize(path)})
}

func (n *Navigator) replace(loc Location) Location {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cur = loc
	return loc
}

func (n *Navigator) Current() Location {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.cur
}
