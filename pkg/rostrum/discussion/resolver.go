package discussion

import (
	"strconv"

	"github.com/rostrum-ui/rostrum/pkg/rostrum/constants"
	"github.com/rostrum-ui/rostrum/pkg/rostrum/nav"
	"github.com/rostrum-ui/rostrum/pkg/rostrum/page"
)

// Resolver resolves discussion routes. Its key discards the near position
// and collapses the slug id, so navigating from post 5 to post 12 of the
// same discussion reuses the mounted page, while a different discussion
// still remounts. When the requested discussion is already on screen, the
// requested position is recorded and reached by a deferred jump after the
// render pass commits.
type Resolver struct {
	nav.DefaultResolver

	// ExtractID reduces the id param to its stable identifier.
	// Defaults to LeadingID.
	ExtractID IDExtractor

	// Displayed reports the id of the discussion currently on screen, or
	// "" when none. Wired by the embedder, typically to the active page's
	// DisplayedID.
	Displayed func() string

	// Pending is the single-slot scroll target. A zero Resolver is not
	// usable; construct with NewResolver.
	Pending *PendingScroll
}

// NewResolver creates a discussion resolver with the default slug strategy
// and an empty pending-scroll slot.
func NewResolver() *Resolver {
	return &Resolver{
		ExtractID: LeadingID,
		Pending:   NewPendingScroll(),
	}
}

// MakeKey strips the near param and collapses the id before delegating to
// the canonical encoding. Pure and total: absent or malformed params are
// treated as absent, never as an error.
func (r *Resolver) MakeKey(routeName string, params nav.Params) string {
	reduced := params.Clone()
	delete(reduced, constants.NearParam)

	if raw, ok := reduced[constants.IDParam]; ok {
		reduced[constants.IDParam] = r.extract(raw)
	}

	return nav.CanonicalKey(routeName, reduced)
}

// Resolve records the requested near position into the pending slot when
// the navigation targets the discussion already on screen. This happens
// during route matching, before the mount/reuse decision, so the position
// is captured even when no remount occurs.
func (r *Resolver) Resolve(args nav.MatchArgs, desc nav.RouteDescriptor) (*nav.Node, error) {
	if raw, ok := args.Params[constants.IDParam]; ok {
		requested := r.extract(raw)
		if requested != "" && r.Displayed != nil && r.Displayed() == requested {
			if near, ok := parseNear(args.Params); ok {
				r.Pending.Set(near)
			}
		}
	}

	if r.Gate != nil {
		if err := r.Gate(args, desc); err != nil {
			return nil, err
		}
	}
	return nav.NewNode(desc, args, r.MakeKey(desc.Name, args.Params)), nil
}

// OnPostRender schedules the deferred jump to the pending position, if one
// is set. The jump must not run synchronously: the target post may not
// exist in the committed tree until the current render pass completes. The
// slot is consumed at fire time, so overlapping schedules collapse to one
// jump at the latest target.
func (r *Resolver) OnPostRender(m *nav.Mounted) {
	if !r.Pending.IsSet() {
		return
	}

	m.After(func() {
		target, ok := r.Pending.Take()
		if !ok {
			return
		}
		if jumper, ok := m.ActivePage().(page.Jumper); ok {
			jumper.JumpTo(target)
		}
	})
}

func (r *Resolver) extract(raw string) string {
	if r.ExtractID != nil {
		return r.ExtractID(raw)
	}
	return LeadingID(raw)
}

func parseNear(params nav.Params) (int, bool) {
	raw, ok := params[constants.NearParam]
	if !ok || raw == "" {
		return 0, false
	}
	near, err := strconv.Atoi(raw)
	if err != nil || near < 0 {
		return 0, false
	}
	return near, true
}
