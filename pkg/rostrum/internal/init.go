// Package internal contains the core infrastructure for the rostrum
// navigation framework: logging and the after-commit task queue.
// Types and functions in this package are not part of the public API.
package internal

import _ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
