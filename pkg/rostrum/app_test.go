package rostrum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rostrum-ui/rostrum/pkg/rostrum"
	"github.com/rostrum-ui/rostrum/pkg/rostrum/config"
	"github.com/rostrum-ui/rostrum/pkg/rostrum/constants"
	"github.com/rostrum-ui/rostrum/pkg/rostrum/discussion"
	"github.com/rostrum-ui/rostrum/pkg/rostrum/page"
)

type forumIndexPage struct{}

func (forumIndexPage) Init(ctx *page.Context) {}
func (forumIndexPage) Render(f *page.Frame)   {}
func (forumIndexPage) Remove()                {}
func (forumIndexPage) BodyClass() string      { return "page-index" }
func (forumIndexPage) Title() string          { return "page.index.title" }

type forumDiscussionPage struct {
	id    string
	jumps []int
}

func (p *forumDiscussionPage) Init(ctx *page.Context) {
	p.id = discussion.LeadingID(ctx.Params[constants.IDParam])
}

func (p *forumDiscussionPage) Render(f *page.Frame) {}
func (p *forumDiscussionPage) Remove()              {}
func (p *forumDiscussionPage) BodyClass() string    { return "page-discussion" }
func (p *forumDiscussionPage) DisplayedID() string  { return p.id }
func (p *forumDiscussionPage) JumpTo(position int)  { p.jumps = append(p.jumps, position) }

func testConfig() *config.Config {
	return &config.Config{
		App: config.App{Title: "Winter Forum"},
		Routes: []config.Route{
			{Name: "index", Path: "/", Page: "index"},
			{Name: "discussion", Path: "/d/:id/:near?", Page: "discussion", Resolver: "discussion"},
		},
	}
}

func testPages(made *[]*forumDiscussionPage) map[string]func() page.Page {
	return map[string]func() page.Page{
		"index": func() page.Page { return forumIndexPage{} },
		"discussion": func() page.Page {
			p := &forumDiscussionPage{}
			*made = append(*made, p)
			return p
		},
	}
}

func TestAppNavigatesConfiguredRoutes(t *testing.T) {
	var made []*forumDiscussionPage
	surface := rostrum.NewMemorySurface()

	app, err := rostrum.New(rostrum.Options{
		Config:  testConfig(),
		Pages:   testPages(&made),
		Surface: surface,
	})
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, "Winter Forum", surface.Title())

	action, err := app.Navigate("/")
	require.NoError(t, err)
	assert.Equal(t, constants.NavActionMounted, action)
	assert.Equal(t, "page-index", surface.BodyClass())
	assert.Equal(t, "index", app.States().Current().RouteName())

	// Untranslated title falls back to the message ID.
	assert.Equal(t, "page.index.title", surface.Title())
}

func TestAppDiscussionFlow(t *testing.T) {
	var made []*forumDiscussionPage

	app, err := rostrum.New(rostrum.Options{
		Config: testConfig(),
		Pages:  testPages(&made),
	})
	require.NoError(t, err)
	defer app.Close()

	_, err = app.Navigate("/d/42-my-title/7")
	require.NoError(t, err)
	require.Len(t, made, 1)

	action, err := app.Navigate("/d/42-my-title/99")
	require.NoError(t, err)
	assert.Equal(t, constants.NavActionReused, action)
	assert.Len(t, made, 1)
	assert.Equal(t, []int{99}, made[0].jumps)
	assert.False(t, app.Discussion().Pending.IsSet())

	prev := app.States().Current()
	action, err = app.Navigate("/")
	require.NoError(t, err)
	assert.Equal(t, constants.NavActionMounted, action)
	assert.Same(t, prev, app.States().Previous())
}

func TestAppRejectsUnknownPageKind(t *testing.T) {
	cfg := &config.Config{
		Routes: []config.Route{{Name: "index", Path: "/", Page: "not-registered"}},
	}

	_, err := rostrum.New(rostrum.Options{Config: cfg, Pages: map[string]func() page.Page{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, rostrum.ErrUnknownPage)
	assert.True(t, rostrum.IsInfrastructureError(err))
}

func TestAppBack(t *testing.T) {
	var made []*forumDiscussionPage

	app, err := rostrum.New(rostrum.Options{
		Config: testConfig(),
		Pages:  testPages(&made),
	})
	require.NoError(t, err)
	defer app.Close()

	_, err = app.Navigate("/")
	require.NoError(t, err)
	_, err = app.Navigate("/d/42-my-title")
	require.NoError(t, err)

	action, err := app.Back()
	require.NoError(t, err)
	assert.Equal(t, constants.NavActionMounted, action)
	assert.Equal(t, "index", app.States().Current().RouteName())
}
