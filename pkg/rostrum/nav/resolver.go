// Package nav implements route registration, resolution, and the navigation
// driver of the rostrum framework. A registered route binds a path pattern to
// a page constructor; a resolver turns a route match into a renderable node
// carrying the identity key that governs whether the previous mount is
// reused or replaced.
package nav

import (
	"errors"
	"sort"
	"strings"

	"github.com/rostrum-ui/rostrum/pkg/rostrum/constants"
	"github.com/rostrum-ui/rostrum/pkg/rostrum/page"
)

// ErrSkipRoute is returned by a resolver to decline a route match and let
// the navigator try the next registered route. It is flow control, not a
// failure; check it with errors.Is. The usual use is gating a route behind
// an authorization check.
var ErrSkipRoute = errors.New("nav: skip route")

// Params are the parameters captured from a path by a route pattern.
type Params map[string]string

// Clone returns a copy of the params that can be mutated freely.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// MatchArgs carries the raw outcome of matching a requested path against a
// route pattern.
type MatchArgs struct {
	Params Params
	Path   string // the requested path as navigated to
}

// RouteDescriptor is the registered metadata binding a path pattern to a
// page constructor and resolver configuration.
type RouteDescriptor struct {
	// Name identifies the route. Injected into the mounted page's params
	// and recorded in its page state.
	Name string

	// Pattern is the path template. Segments beginning with ':' capture a
	// parameter; a trailing ':name?' segment is optional.
	Pattern string

	// NewPage constructs the bound page component. Called only when the
	// navigator decides to mount rather than reuse.
	NewPage func() page.Page

	// Component is the page variant identity recorded in page state.
	// Defaults to Name when empty.
	Component string

	// Resolver overrides the resolution behavior for this route.
	// Nil means DefaultResolver.
	Resolver Resolver
}

// Node is a resolved, renderable unit: the bound page constructor tagged
// with the route name, the captured params (including the injected route
// name), and the identity key.
type Node struct {
	RouteName string
	Component string
	Params    Params
	Key       string
	NewPage   func() page.Page
}

// Resolver bridges a raw route match and the (node, key, side effects)
// triple the navigator needs.
type Resolver interface {
	// Resolve turns a match into a node, or returns ErrSkipRoute to fall
	// through to the next matching route.
	Resolve(args MatchArgs, desc RouteDescriptor) (*Node, error)

	// MakeKey derives the identity key for a route match. It must be a
	// pure function of its inputs and total over them: re-navigation to
	// an identical path always yields an identical key.
	MakeKey(routeName string, params Params) string

	// OnPostRender runs strictly after the node's render pass has been
	// committed, whether the mount was fresh or reused.
	OnPostRender(m *Mounted)
}

// NewNode builds the node for a match with an explicit key. Resolvers that
// override key derivation use this to tag nodes with their own keys.
// The route name is injected into the node's params so the mounted page can
// report it.
func NewNode(desc RouteDescriptor, args MatchArgs, key string) *Node {
	params := args.Params.Clone()
	params[constants.RouteNameKey] = desc.Name

	component := desc.Component
	if component == "" {
		component = desc.Name
	}

	return &Node{
		RouteName: desc.Name,
		Component: component,
		Params:    params,
		Key:       key,
		NewPage:   desc.NewPage,
	}
}

// DefaultResolver implements the standard resolution behavior: the key is
// the route name plus a canonical encoding of the captured params, and
// there are no post-render side effects.
type DefaultResolver struct {
	// Gate, when set, runs before a node is produced. Returning an error
	// (typically ErrSkipRoute) declines the match.
	Gate func(args MatchArgs, desc RouteDescriptor) error
}

func (r DefaultResolver) Resolve(args MatchArgs, desc RouteDescriptor) (*Node, error) {
	if r.Gate != nil {
		if err := r.Gate(args, desc); err != nil {
			return nil, err
		}
	}
	return NewNode(desc, args, r.MakeKey(desc.Name, args.Params)), nil
}

// MakeKey concatenates the route name with the captured params encoded as
// sorted k=v pairs, so the result does not depend on map iteration order.
func (r DefaultResolver) MakeKey(routeName string, params Params) string {
	return CanonicalKey(routeName, params)
}

func (r DefaultResolver) OnPostRender(m *Mounted) {}

// CanonicalKey is the shared key encoding used by DefaultResolver and by
// specializations that rewrite params before delegating.
func CanonicalKey(routeName string, params Params) string {
	if len(params) == 0 {
		return routeName
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(routeName)
	b.WriteByte('?')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	return b.String()
}
