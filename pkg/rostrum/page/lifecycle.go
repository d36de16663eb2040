package page

import "log/slog"

// Deps are the collaborators the lifecycle wrapper acts on. Localize is
// optional; when nil, title message IDs are used verbatim.
type Deps struct {
	Registry *StateRegistry
	Overlay  Overlay
	Surface  Surface
	Logger   *slog.Logger
	Localize func(messageID string) string
}

// Lifecycle wraps a Page and layers the uniform activation behavior every
// page exhibits, independent of page-specific content. It is the sole writer
// of the state registry.
//
// Activation runs exactly once per mount, before the page's first render:
//
//  1. a new State is installed (current becomes previous),
//  2. any open modal and drawer are dismissed,
//  3. the viewport scrolls to top unless the page declares otherwise,
//  4. platform scroll restoration is set per the page's declaration.
//
// The body class declared by the page is applied on every render pass and
// removed on unmount.
type Lifecycle struct {
	page      Page
	component string
	deps      Deps

	routeName string
	bodyClass string
}

// Wrap builds the lifecycle wrapper for a page instance. component is the
// identity of the page variant recorded in its State.
func Wrap(p Page, component string, deps Deps) *Lifecycle {
	return &Lifecycle{
		page:      p,
		component: component,
		deps:      deps,
	}
}

// Page returns the wrapped page.
func (l *Lifecycle) Page() Page {
	return l.page
}

// Component returns the page variant identity.
func (l *Lifecycle) Component() string {
	return l.component
}

// RouteName returns the route the page was activated under, or "" before
// activation.
func (l *Lifecycle) RouteName() string {
	return l.routeName
}

// Activate performs the once-per-mount activation steps for a navigation to
// routeName. The navigator calls it after constructing the page and before
// Init and the first Render.
func (l *Lifecycle) Activate(routeName string) {
	l.routeName = routeName

	l.deps.Registry.Begin(NewState(l.component, routeName))

	l.deps.Overlay.CloseModal()
	l.deps.Overlay.CloseDrawer()

	if l.scrollTopOnCreate() {
		l.deps.Surface.ScrollToTop()
	}
	l.deps.Surface.SetScrollRestoration(l.useScrollRestoration())

	if titled, ok := l.page.(TitleProvider); ok {
		title := titled.Title()
		if l.deps.Localize != nil {
			title = l.deps.Localize(title)
		}
		l.deps.Surface.SetTitle(title)
	}

	if l.deps.Logger != nil {
		l.deps.Logger.Debug("page activated", "component", l.component, "route", routeName)
	}
}

// Init forwards the mount hook to the page. Activate must have run first.
func (l *Lifecycle) Init(ctx *Context) {
	l.page.Init(ctx)
}

// Render applies the page's body class and forwards the render hook.
// The class is re-applied every pass so a page toggling its declaration
// takes effect without a remount.
func (l *Lifecycle) Render(f *Frame) {
	if provider, ok := l.page.(BodyClassProvider); ok {
		class := provider.BodyClass()
		l.deps.Surface.SetBodyClass(class)
		l.bodyClass = class
	}

	l.page.Render(f)
}

// Remove clears the page's body class and forwards the unmount hook.
func (l *Lifecycle) Remove() {
	if l.bodyClass != "" {
		l.deps.Surface.SetBodyClass("")
		l.bodyClass = ""
	}

	l.page.Remove()
}

// UseScrollRestoration reports the page's scroll-restoration declaration,
// defaulting to enabled. The navigator consults it when deciding whether to
// restore a remembered offset on back navigation.
func (l *Lifecycle) UseScrollRestoration() bool {
	return l.useScrollRestoration()
}

func (l *Lifecycle) scrollTopOnCreate() bool {
	if decider, ok := l.page.(ScrollTopDecider); ok {
		return decider.ScrollTopOnCreate()
	}
	return true
}

func (l *Lifecycle) useScrollRestoration() bool {
	if decider, ok := l.page.(ScrollRestorationDecider); ok {
		return decider.UseScrollRestoration()
	}
	return true
}
