package nav

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/rostrum-ui/rostrum/pkg/rostrum/constants"
	"github.com/rostrum-ui/rostrum/pkg/rostrum/internal"
	"github.com/rostrum-ui/rostrum/pkg/rostrum/page"
)

// Sentinel errors for navigation outcomes.
var (
	// ErrNoRoute indicates no registered route produced a node for the
	// requested path, either because nothing matched or because every
	// matching route declined with ErrSkipRoute.
	ErrNoRoute = errors.New("nav: no route for path")

	// ErrEmptyHistory indicates Back was called with no history to pop.
	ErrEmptyHistory = errors.New("nav: history is empty")
)

// Deps are the collaborators a Navigator drives. Registry, Overlay, and
// Surface are required; Logger defaults to the framework logger and
// Localize is optional.
type Deps struct {
	Registry *page.StateRegistry
	Overlay  page.Overlay
	Surface  page.Surface
	Logger   *slog.Logger
	Localize func(messageID string) string
}

// Mounted is the currently mounted node together with its live page
// instance. Resolvers receive it in OnPostRender.
type Mounted struct {
	Node     *Node
	Key      string
	Instance string // unique per mount, stable across reuse

	lifecycle *page.Lifecycle
	queue     *internal.TaskQueue
}

// ActivePage returns the live page instance.
func (m *Mounted) ActivePage() page.Page {
	return m.lifecycle.Page()
}

// After schedules task to run after the current render pass has been
// committed, before the next navigation is processed.
func (m *Mounted) After(task func()) {
	m.queue.Defer(task)
}

// Navigator is the render driver: it matches paths against registered
// routes, compares identity keys to decide mount versus reuse, runs the
// page lifecycle hooks, and flushes deferred tasks after each commit.
//
// All of it runs synchronously on the caller's goroutine; the embedding
// application must serialize navigation requests. At most one navigation is
// in flight at a time.
type Navigator struct {
	deps     Deps
	routes   []RouteDescriptor
	fallback DefaultResolver

	mounted  *Mounted
	history  *History
	scrolls  *scrollCache
	queue    *internal.TaskQueue
	frames   atomic.Uint64
	lastPath string

	inBack bool
}

// New creates a Navigator with no routes registered.
func New(deps Deps) *Navigator {
	if deps.Logger == nil {
		deps.Logger = internal.GetInternalLogger()
	}
	return &Navigator{
		deps:    deps,
		history: NewHistory(),
		scrolls: newScrollCache(),
		queue:   internal.NewTaskQueue(),
	}
}

// Register adds a route. Routes are tried in registration order; the first
// one whose pattern matches and whose resolver does not skip wins.
func (n *Navigator) Register(desc RouteDescriptor) *Navigator {
	n.routes = append(n.routes, desc)
	return n
}

// History returns the back-navigation trail for inspection.
func (n *Navigator) History() *History {
	return n.history
}

// Mounted returns the currently mounted node, or nil before the first
// successful navigation.
func (n *Navigator) Mounted() *Mounted {
	return n.mounted
}

// ActivePage returns the live page instance, or nil before the first
// successful navigation.
func (n *Navigator) ActivePage() page.Page {
	if n.mounted == nil {
		return nil
	}
	return n.mounted.ActivePage()
}

// Navigate resolves path and performs a full navigation pass: resolve,
// mount or reuse by key, render, post-render hook, deferred-task flush.
// It reports whether the page was freshly mounted or reused.
func (n *Navigator) Navigate(path string) (constants.NavAction, error) {
	node, resolver, err := n.resolve(path)
	if err != nil {
		return constants.NavActionSkipped, err
	}

	action := constants.NavActionReused
	if n.mounted == nil || n.mounted.Key != node.Key {
		action = constants.NavActionMounted
		n.mount(node)
	} else {
		// Same identity: the instance continues, only the params refresh.
		n.mounted.Node = node
	}

	seq := n.frames.Inc()
	n.mounted.lifecycle.Render(&page.Frame{Surface: n.deps.Surface, Seq: seq})

	resolver.OnPostRender(n.mounted)
	n.queue.Flush()

	n.lastPath = path
	n.deps.Logger.Debug("navigation complete",
		"path", path, "route", node.RouteName, "key", node.Key, "action", action.String())

	return action, nil
}

// Back pops the most recent history entry and navigates to it. The popped
// navigation itself leaves no new history entry.
func (n *Navigator) Back() (constants.NavAction, error) {
	entry := n.history.Pop()
	if entry == nil {
		return constants.NavActionSkipped, ErrEmptyHistory
	}

	n.inBack = true
	defer func() { n.inBack = false }()

	return n.Navigate(entry.Path)
}

func (n *Navigator) resolve(path string) (*Node, Resolver, error) {
	for _, desc := range n.routes {
		params, ok := matchPath(desc.Pattern, path)
		if !ok {
			continue
		}

		resolver := desc.Resolver
		if resolver == nil {
			resolver = n.fallback
		}

		node, err := resolver.Resolve(MatchArgs{Params: params, Path: path}, desc)
		if errors.Is(err, ErrSkipRoute) {
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("nav: resolve %q: %w", path, err)
		}
		return node, resolver, nil
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrNoRoute, path)
}

func (n *Navigator) mount(node *Node) {
	if n.mounted != nil {
		offset := n.deps.Surface.ScrollOffset()
		n.scrolls.Set(n.mounted.Key, offset)
		if !n.inBack {
			n.history.Push(HistoryEntry{
				Path:      n.lastPath,
				RouteName: n.mounted.Node.RouteName,
				Scroll:    offset,
			})
		}
		n.mounted.lifecycle.Remove()
	}

	lc := page.Wrap(node.NewPage(), node.Component, page.Deps{
		Registry: n.deps.Registry,
		Overlay:  n.deps.Overlay,
		Surface:  n.deps.Surface,
		Logger:   n.deps.Logger,
		Localize: n.deps.Localize,
	})

	n.mounted = &Mounted{
		Node:      node,
		Key:       node.Key,
		Instance:  uuid.NewString(),
		lifecycle: lc,
		queue:     n.queue,
	}

	lc.Activate(node.RouteName)
	lc.Init(&page.Context{RouteName: node.RouteName, Params: node.Params})

	// Returning to a page the reader has visited: put them back where they
	// were, once the new tree has been committed.
	if lc.UseScrollRestoration() {
		if offset, ok := n.scrolls.Get(node.Key); ok {
			n.queue.Defer(func() { n.deps.Surface.ScrollTo(offset) })
		}
	}
}

// matchPath matches a requested path against a route pattern. Segments
// beginning with ':' capture the corresponding path segment; a trailing
// ':name?' segment may be absent. Returns the captured params and whether
// the pattern matched.
func matchPath(pattern, path string) (Params, bool) {
	patSegs := splitPath(pattern)
	reqSegs := splitPath(path)

	if len(reqSegs) > len(patSegs) {
		return nil, false
	}

	params := make(Params)
	for i, seg := range patSegs {
		optional := strings.HasSuffix(seg, "?")
		if optional {
			seg = strings.TrimSuffix(seg, "?")
		}

		if i >= len(reqSegs) {
			if optional {
				continue
			}
			return nil, false
		}

		if strings.HasPrefix(seg, ":") {
			params[seg[1:]] = reqSegs[i]
			continue
		}
		if seg != reqSegs[i] {
			return nil, false
		}
	}
	return params, true
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
