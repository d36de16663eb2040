// Package constants defines shared constants, types, and configuration values
// used throughout the rostrum navigation framework.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// DebugEnvVar is the environment variable name that enables debug logging
// for the framework's internal logger.
const DebugEnvVar = "ROSTRUM_DEBUG"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// RouteNameKey is the reserved page-state key holding the name of the route
// the page was mounted under. Every page state carries this entry.
const RouteNameKey = "routeName"

// NearParam is the route parameter naming a position within a discussion.
// It is stripped from identity keys so that jumping between positions in the
// same discussion does not force a remount.
const NearParam = "near"

// IDParam is the route parameter carrying a resource identifier, possibly in
// compound slug form ("42-winter-cleanup").
const IDParam = "id"

// DefaultLocale is the locale used when the application config does not name one.
const DefaultLocale = "en"

// NavAction represents the outcome of a navigation request.
type NavAction int

const (
	NavActionMounted NavAction = iota // A new page instance was mounted
	NavActionReused                   // The existing page instance was kept
	NavActionSkipped                  // All matching routes declined the path
)

func (a NavAction) String() string {
	switch a {
	case NavActionMounted:
		return "mounted"
	case NavActionReused:
		return "reused"
	case NavActionSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Default timing constants.
const (
	DefaultInputDelay = 20 * time.Millisecond // Debounce delay between hardware input events
)
