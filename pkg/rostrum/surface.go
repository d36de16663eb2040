package rostrum

// MemorySurface is an in-memory render surface: it records what the
// framework asked of the application root without drawing anything. It is
// the default surface for headless embedding and the one integration tests
// run against. Real applications supply their own page.Surface backed by a
// window or webview.
type MemorySurface struct {
	bodyClass         string
	title             string
	offset            int
	scrollRestoration bool
}

// NewMemorySurface creates a surface with scroll restoration enabled.
func NewMemorySurface() *MemorySurface {
	return &MemorySurface{scrollRestoration: true}
}

func (s *MemorySurface) SetBodyClass(class string) {
	s.bodyClass = class
}

// BodyClass returns the extension class currently applied to the root.
func (s *MemorySurface) BodyClass() string {
	return s.bodyClass
}

func (s *MemorySurface) SetTitle(title string) {
	s.title = title
}

// Title returns the current document title.
func (s *MemorySurface) Title() string {
	return s.title
}

func (s *MemorySurface) ScrollToTop() {
	s.offset = 0
}

func (s *MemorySurface) ScrollTo(offset int) {
	s.offset = offset
}

func (s *MemorySurface) ScrollOffset() int {
	return s.offset
}

func (s *MemorySurface) SetScrollRestoration(enabled bool) {
	s.scrollRestoration = enabled
}

// ScrollRestoration reports the last restoration setting applied.
func (s *MemorySurface) ScrollRestoration() bool {
	return s.scrollRestoration
}
