package page_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rostrum-ui/rostrum/pkg/rostrum/page"
)

// recordingOverlay and recordingSurface append every call to a shared log so
// tests can assert the activation ordering.

type recordingOverlay struct {
	log *[]string
}

func (o *recordingOverlay) CloseModal()  { *o.log = append(*o.log, "closeModal") }
func (o *recordingOverlay) CloseDrawer() { *o.log = append(*o.log, "closeDrawer") }

type recordingSurface struct {
	log *[]string

	bodyClass   string
	title       string
	offset      int
	restoration bool
}

func (s *recordingSurface) SetBodyClass(class string) {
	*s.log = append(*s.log, "bodyClass:"+class)
	s.bodyClass = class
}

func (s *recordingSurface) SetTitle(title string) {
	*s.log = append(*s.log, "title:"+title)
	s.title = title
}

func (s *recordingSurface) ScrollToTop() {
	*s.log = append(*s.log, "scrollTop")
	s.offset = 0
}

func (s *recordingSurface) ScrollTo(offset int) {
	*s.log = append(*s.log, fmt.Sprintf("scrollTo:%d", offset))
	s.offset = offset
}

func (s *recordingSurface) ScrollOffset() int { return s.offset }

func (s *recordingSurface) SetScrollRestoration(enabled bool) {
	*s.log = append(*s.log, fmt.Sprintf("restoration:%t", enabled))
	s.restoration = enabled
}

// plainPage makes no declarations, so every default applies.
type plainPage struct {
	log *[]string
}

func (p *plainPage) Init(ctx *page.Context) { *p.log = append(*p.log, "init:"+ctx.RouteName) }
func (p *plainPage) Render(f *page.Frame)   { *p.log = append(*p.log, "render") }
func (p *plainPage) Remove()                { *p.log = append(*p.log, "remove") }

// declaredPage opts out of scrolling and restoration and declares a body
// class and title.
type declaredPage struct {
	plainPage
}

func (p *declaredPage) ScrollTopOnCreate() bool    { return false }
func (p *declaredPage) UseScrollRestoration() bool { return false }
func (p *declaredPage) BodyClass() string          { return "page-settings" }
func (p *declaredPage) Title() string              { return "page.settings.title" }

func newDeps(log *[]string, reg *page.StateRegistry) (page.Deps, *recordingSurface) {
	surface := &recordingSurface{log: log}
	return page.Deps{
		Registry: reg,
		Overlay:  &recordingOverlay{log: log},
		Surface:  surface,
	}, surface
}

func TestActivateDefaultOrdering(t *testing.T) {
	var log []string
	reg := page.NewStateRegistry()
	deps, _ := newDeps(&log, reg)

	lc := page.Wrap(&plainPage{log: &log}, "pages.index", deps)
	lc.Activate("index")
	lc.Init(&page.Context{RouteName: "index"})
	lc.Render(&page.Frame{Seq: 1})

	assert.Equal(t, []string{
		"closeModal",
		"closeDrawer",
		"scrollTop",
		"restoration:true",
		"init:index",
		"render",
	}, log)

	require.NotNil(t, reg.Current())
	assert.True(t, reg.Current().Matches("pages.index", nil))
	assert.Equal(t, "index", reg.Current().RouteName())
}

func TestActivateInstallsNewState(t *testing.T) {
	var log []string
	reg := page.NewStateRegistry()
	deps, _ := newDeps(&log, reg)

	first := page.Wrap(&plainPage{log: &log}, "pages.index", deps)
	first.Activate("index")
	prior := reg.Current()

	second := page.Wrap(&plainPage{log: &log}, "pages.discussion", deps)
	second.Activate("discussion")

	assert.Same(t, prior, reg.Previous())
	assert.Equal(t, "discussion", reg.Current().RouteName())
	assert.True(t, reg.Current().Matches("pages.discussion", nil))
}

func TestActivateHonorsDeclarations(t *testing.T) {
	var log []string
	reg := page.NewStateRegistry()
	deps, surface := newDeps(&log, reg)

	p := &declaredPage{plainPage{log: &log}}
	lc := page.Wrap(p, "pages.settings", deps)
	lc.Activate("settings")

	assert.NotContains(t, log, "scrollTop")
	assert.Contains(t, log, "restoration:false")
	assert.False(t, surface.restoration)
	assert.Equal(t, "page.settings.title", surface.title)
}

func TestTitleGoesThroughLocalizer(t *testing.T) {
	var log []string
	reg := page.NewStateRegistry()
	deps, surface := newDeps(&log, reg)
	deps.Localize = func(id string) string { return "Settings" }

	lc := page.Wrap(&declaredPage{plainPage{log: &log}}, "pages.settings", deps)
	lc.Activate("settings")

	assert.Equal(t, "Settings", surface.title)
}

func TestBodyClassAppliedEveryRenderAndRemovedOnUnmount(t *testing.T) {
	var log []string
	reg := page.NewStateRegistry()
	deps, surface := newDeps(&log, reg)

	lc := page.Wrap(&declaredPage{plainPage{log: &log}}, "pages.settings", deps)
	lc.Activate("settings")

	lc.Render(&page.Frame{Seq: 1})
	assert.Equal(t, "page-settings", surface.bodyClass)

	lc.Render(&page.Frame{Seq: 2})
	assert.Equal(t, "page-settings", surface.bodyClass)

	lc.Remove()
	assert.Equal(t, "", surface.bodyClass)
	assert.Contains(t, log, "remove")
}

func TestUseScrollRestorationDefault(t *testing.T) {
	var log []string
	reg := page.NewStateRegistry()
	deps, _ := newDeps(&log, reg)

	plain := page.Wrap(&plainPage{log: &log}, "pages.index", deps)
	assert.True(t, plain.UseScrollRestoration())

	declared := page.Wrap(&declaredPage{plainPage{log: &log}}, "pages.settings", deps)
	assert.False(t, declared.UseScrollRestoration())
}
