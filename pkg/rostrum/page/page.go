package page

// Page is the hook contract every page implements. The navigator invokes the
// hooks in a single-threaded, synchronous pass per navigation: Init once
// after mount, Render on every render pass, Remove once on unmount.
type Page interface {
	Init(ctx *Context)
	Render(f *Frame)
	Remove()
}

// Context carries the route information a page receives at mount time.
type Context struct {
	RouteName string
	Params    map[string]string
}

// Frame is the per-render-pass handle given to Render. Seq increases by one
// for every committed pass across the life of the navigator.
type Frame struct {
	Surface Surface
	Seq     uint64
}

// Surface is the render-surface collaborator: the application root the
// framework scrolls, titles, and classes. Implementations are supplied by
// the embedding application (an SDL window, a webview bridge, a test double).
type Surface interface {
	// SetBodyClass installs class as the sole extension class on the
	// application root, replacing whatever a previous page applied.
	// An empty string clears it.
	SetBodyClass(class string)

	// SetTitle sets the window or document title.
	SetTitle(title string)

	// ScrollToTop moves the viewport to the top of the page.
	ScrollToTop()

	// ScrollTo moves the viewport to an absolute offset.
	ScrollTo(offset int)

	// ScrollOffset returns the current viewport offset.
	ScrollOffset() int

	// SetScrollRestoration enables or disables the platform's automatic
	// scroll restoration for the navigation in progress.
	SetScrollRestoration(enabled bool)
}

// Overlay is the UI-overlay collaborator. Both operations are called
// unconditionally on every page activation and must be no-ops when nothing
// is open.
type Overlay interface {
	CloseModal()
	CloseDrawer()
}

// Optional declaration interfaces. A page opts into non-default activation
// behavior by implementing these; absence means the default applies.

// ScrollTopDecider lets a page suppress the scroll-to-top that normally
// happens on activation. Default when not implemented: scroll to top.
type ScrollTopDecider interface {
	ScrollTopOnCreate() bool
}

// ScrollRestorationDecider lets a page suppress the platform's automatic
// scroll restoration. Default when not implemented: leave it enabled.
type ScrollRestorationDecider interface {
	UseScrollRestoration() bool
}

// BodyClassProvider declares a class applied to the application root while
// the page is mounted.
type BodyClassProvider interface {
	BodyClass() string
}

// TitleProvider declares the page title, as a message ID resolved through
// the application's localizer when one is configured.
type TitleProvider interface {
	Title() string
}

// DisplayedIDer is implemented by pages that show a single identifiable
// resource. Resolvers query it to decide whether a navigation targets the
// resource already on screen.
type DisplayedIDer interface {
	DisplayedID() string
}

// Jumper is implemented by pages that can move the viewport to a numbered
// position within their content without a remount.
type Jumper interface {
	JumpTo(position int)
}
