// Package selection implements single-selection state for menus, tabs and
// category filters.
//
// A Controller holds at most one active key. Two policies exist:
//
//   - Toggleable: selecting the active key clears it, so "nothing selected" is
//     a reachable state (mega-menu expansion).
//   - Sticky: selecting always activates the key and a key is always active
//     (tab and category filters).
//
// Controllers do not validate keys against a known set. Callers offer only
// valid keys, or check them with Keys.Known before selecting.
package selection

// Policy decides what Select does when the key is already active.
type Policy int

const (
	// Toggleable clears the selection when the active key is selected again.
	Toggleable Policy = iota

	// Sticky keeps exactly one key active at all times.
	Sticky
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Toggleable:
		return "toggleable"
	case Sticky:
		return "sticky"
	default:
		return "unknown"
	}
}

// Controller tracks the active key of a group of mutually exclusive options.
// A Controller is not safe for concurrent use.
type Controller[K comparable] struct {
	policy  Policy
	initial K
	active  K
	set     bool
}

// NewToggleable returns a controller with no active key.
func NewToggleable[K comparable]() *Controller[K] {
	return &Controller[K]{policy: Toggleable}
}

// NewSticky returns a controller with initial as its active key.
func NewSticky[K comparable](initial K) *Controller[K] {
	return &Controller[K]{
		policy:  Sticky,
		initial: initial,
		active:  initial,
		set:     true,
	}
}

// Select applies a click on key according to the controller's policy.
func (c *Controller[K]) Select(key K) {
	if c.policy == Toggleable && c.set && c.active == key {
		var zero K

		c.active = zero
		c.set = false

		return
	}

	c.active = key
	c.set = true
}

// Restore sets key as active without applying the toggle policy.
// It rehydrates state saved between requests.
func (c *Controller[K]) Restore(key K) {
	c.active = key
	c.set = true
}

// Reset returns the controller to its initial state.
func (c *Controller[K]) Reset() {
	if c.policy == Sticky {
		c.active = c.initial
		c.set = true

		return
	}

	var zero K

	c.active = zero
	c.set = false
}

// Active returns the active key and whether there is one.
func (c *Controller[K]) Active() (K, bool) {
	return c.active, c.set
}

// IsActive reports whether key is the active key.
func (c *Controller[K]) IsActive(key K) bool {
	return c.set && c.active == key
}

// Policy returns the controller's policy.
func (c *Controller[K]) Policy() Policy {
	return c.policy
}
