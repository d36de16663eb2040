// Package page defines the page contract of the rostrum framework: the hook
// points every page implements, the optional behavior declarations a page may
// make, the per-navigation page state, and the lifecycle wrapper that applies
// uniform activation behavior to every page.
package page

import (
	"reflect"

	"github.com/rostrum-ui/rostrum/pkg/rostrum/constants"
)

// State records which page variant is active and a key/value bag of
// page-reported data. A fresh State is created for every navigation that
// mounts a page; the previous one is kept around so components can compare
// where the user came from (highlighting, transition decisions, etc.).
//
// The component identity is fixed at construction. The data bag always
// carries the route name under constants.RouteNameKey.
type State struct {
	component string
	data      map[string]any
}

// NewState creates a State for the given page component identity, seeded
// with the reserved route-name entry.
func NewState(component, routeName string) *State {
	return &State{
		component: component,
		data: map[string]any{
			constants.RouteNameKey: routeName,
		},
	}
}

// Component returns the identity of the page variant this state belongs to.
func (s *State) Component() string {
	return s.component
}

// RouteName returns the name of the route the page was mounted under.
func (s *State) RouteName() string {
	name, _ := s.data[constants.RouteNameKey].(string)
	return name
}

// Set inserts or overwrites a data entry.
func (s *State) Set(key string, value any) {
	s.data[key] = value
}

// Get returns the stored value for key. The second return reports whether
// the key has been set; an unset key is not an error.
func (s *State) Get(key string) (any, bool) {
	value, ok := s.data[key]
	return value, ok
}

// Matches reports whether this state belongs to the given component identity
// and every entry of partial is present with an equal value in the data bag.
// A nil or empty partial matches on identity alone.
func (s *State) Matches(component string, partial map[string]any) bool {
	if s.component != component {
		return false
	}

	for key, want := range partial {
		got, ok := s.data[key]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// StateRegistry holds the process-wide current and previous page states.
// Exactly two live states exist at any time; Previous is always the Current
// from immediately before the last completed navigation, or nil before the
// first one.
//
// The only writer is the page lifecycle wrapper. Readers get the registry by
// reference from whoever constructed the navigator, not through a package
// global, so the core stays testable without a live render surface.
type StateRegistry struct {
	current  *State
	previous *State
}

func NewStateRegistry() *StateRegistry {
	return &StateRegistry{}
}

// Begin installs next as the current state and demotes the prior current to
// previous in a single step. No intermediate arrangement is observable.
func (r *StateRegistry) Begin(next *State) {
	r.previous = r.current
	r.current = next
}

// Current returns the state of the page mounted by the last navigation,
// or nil before the first navigation.
func (r *StateRegistry) Current() *State {
	return r.current
}

// Previous returns the state that was current before the last navigation,
// or nil if there has been at most one.
func (r *StateRegistry) Previous() *State {
	return r.previous
}
