package page_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rostrum-ui/rostrum/pkg/rostrum/constants"
	"github.com/rostrum-ui/rostrum/pkg/rostrum/page"
)

func TestNewStateSeedsRouteName(t *testing.T) {
	st := page.NewState("pages.index", "index")

	assert.Equal(t, "pages.index", st.Component())
	assert.Equal(t, "index", st.RouteName())

	value, ok := st.Get(constants.RouteNameKey)
	require.True(t, ok)
	assert.Equal(t, "index", value)
}

func TestStateGetUnsetKey(t *testing.T) {
	st := page.NewState("pages.index", "index")

	value, ok := st.Get("never-set")
	assert.False(t, ok)
	assert.Nil(t, value)

	// Reading a missing key must not create it.
	_, ok = st.Get("never-set")
	assert.False(t, ok)
}

func TestStateSetOverwrites(t *testing.T) {
	st := page.NewState("pages.index", "index")

	st.Set("filter", "recent")
	st.Set("filter", "top")

	value, ok := st.Get("filter")
	require.True(t, ok)
	assert.Equal(t, "top", value)
}

func TestStateMatches(t *testing.T) {
	st := page.NewState("pages.discussion", "discussion")
	st.Set("id", "42")
	st.Set("unread", 3)

	tests := []struct {
		name      string
		component string
		partial   map[string]any
		want      bool
	}{
		{"identity only", "pages.discussion", nil, true},
		{"empty partial", "pages.discussion", map[string]any{}, true},
		{"wrong identity", "pages.index", nil, false},
		{"matching entry", "pages.discussion", map[string]any{"id": "42"}, true},
		{"several entries", "pages.discussion", map[string]any{"id": "42", "unread": 3}, true},
		{"reserved key", "pages.discussion", map[string]any{constants.RouteNameKey: "discussion"}, true},
		{"unequal value", "pages.discussion", map[string]any{"id": "43"}, false},
		{"missing key", "pages.discussion", map[string]any{"author": "sam"}, false},
		{"one of two off", "pages.discussion", map[string]any{"id": "42", "unread": 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, st.Matches(tt.component, tt.partial))
		})
	}
}

func TestStateRegistrySwap(t *testing.T) {
	reg := page.NewStateRegistry()

	require.Nil(t, reg.Current())
	require.Nil(t, reg.Previous())

	first := page.NewState("pages.index", "index")
	reg.Begin(first)
	assert.Same(t, first, reg.Current())
	assert.Nil(t, reg.Previous())

	second := page.NewState("pages.discussion", "discussion")
	reg.Begin(second)
	assert.Same(t, second, reg.Current())
	assert.Same(t, first, reg.Previous())

	third := page.NewState("pages.index", "index")
	reg.Begin(third)
	assert.Same(t, third, reg.Current())
	assert.Same(t, second, reg.Previous())
}
