// Package rostrum is a page navigation and state framework for forum client
// applications. It resolves requested paths against a registered route
// table, derives the identity key that decides whether the mounted page is
// reused or replaced, maintains the process-wide current/previous page
// states, and applies uniform activation behavior (overlay dismissal,
// scroll handling, body class) to every page.
//
// The render surface itself is supplied by the embedding application
// through the page.Surface interface; rostrum ships an in-memory surface
// for headless use and testing.
package rostrum

import (
	"log/slog"
	"os"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/rostrum-ui/rostrum/pkg/rostrum/config"
	"github.com/rostrum-ui/rostrum/pkg/rostrum/constants"
	"github.com/rostrum-ui/rostrum/pkg/rostrum/discussion"
	"github.com/rostrum-ui/rostrum/pkg/rostrum/internal"
	"github.com/rostrum-ui/rostrum/pkg/rostrum/locale"
	"github.com/rostrum-ui/rostrum/pkg/rostrum/nav"
	"github.com/rostrum-ui/rostrum/pkg/rostrum/page"
)

// Options configures application construction.
type Options struct {
	ConfigPath string         // Path to the TOML configuration file
	Config     *config.Config // Pre-parsed configuration; takes precedence over ConfigPath

	// Pages maps the page kinds named in the route table to constructors.
	Pages map[string]func() page.Page

	// Surface is the render surface. Defaults to a MemorySurface.
	Surface page.Surface

	// LogPath overrides the configured log file path.
	LogPath string
}

// App wires the navigator, overlay, state registry, and localization
// together from configuration. Construct one with New.
type App struct {
	cfg        *config.Config
	registry   *page.StateRegistry
	overlay    *Overlay
	surface    page.Surface
	navigator  *nav.Navigator
	discussion *discussion.Resolver
	bundle     *i18n.Bundle
	localizer  *i18n.Localizer
}

// New builds an App from options: loads configuration, sets up logging and
// localization, and registers the configured routes on a fresh navigator.
func New(options Options) (*App, error) {
	cfg := options.Config
	if cfg == nil && options.ConfigPath != "" {
		loaded, err := config.Load(options.ConfigPath)
		if err != nil {
			return nil, NewInfrastructureError("load_config", err)
		}
		cfg = loaded
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	} else if cfg.App.LogPath != "" {
		internal.SetLogPath(cfg.App.LogPath)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
	if cfg.App.LogLevel != "" {
		internal.SetRawLogLevel(cfg.App.LogLevel)
	}

	bundle := locale.NewBundle()
	if cfg.App.MessagesPath != "" {
		if err := locale.Load(bundle, cfg.App.MessagesPath); err != nil {
			return nil, NewInfrastructureError("load_messages", err)
		}
	}
	tag := cfg.App.Locale
	if tag == "" {
		tag = constants.DefaultLocale
	}
	localizer := locale.Localizer(bundle, tag)

	surface := options.Surface
	if surface == nil {
		surface = NewMemorySurface()
	}
	if cfg.App.Title != "" {
		surface.SetTitle(cfg.App.Title)
	}

	app := &App{
		cfg:       cfg,
		registry:  page.NewStateRegistry(),
		overlay:   NewOverlay(internal.GetInternalLogger()),
		surface:   surface,
		bundle:    bundle,
		localizer: localizer,
	}

	app.navigator = nav.New(nav.Deps{
		Registry: app.registry,
		Overlay:  app.overlay,
		Surface:  surface,
		Logger:   internal.GetLogger(),
		Localize: app.Localize,
	})

	app.discussion = discussion.NewResolver()
	app.discussion.Displayed = func() string {
		if shown, ok := app.navigator.ActivePage().(page.DisplayedIDer); ok {
			return shown.DisplayedID()
		}
		return ""
	}

	for _, r := range cfg.Routes {
		newPage, ok := options.Pages[r.Page]
		if !ok {
			return nil, NewInfrastructureError("register_routes",
				&unknownPageError{kind: r.Page, route: r.Name})
		}

		desc := nav.RouteDescriptor{
			Name:    r.Name,
			Pattern: r.Path,
			NewPage: newPage,
		}
		if r.Resolver == "discussion" {
			desc.Resolver = app.discussion
		}
		app.navigator.Register(desc)
	}

	return app, nil
}

// Navigate resolves path and runs a full navigation pass.
func (a *App) Navigate(path string) (constants.NavAction, error) {
	return a.navigator.Navigate(path)
}

// Back returns to the most recent history entry.
func (a *App) Back() (constants.NavAction, error) {
	return a.navigator.Back()
}

// Navigator returns the underlying navigator, for registering routes beyond
// the configured table or wiring platform input.
func (a *App) Navigator() *nav.Navigator {
	return a.navigator
}

// Overlay returns the modal/drawer controller.
func (a *App) Overlay() *Overlay {
	return a.overlay
}

// Surface returns the render surface the app was built with.
func (a *App) Surface() page.Surface {
	return a.surface
}

// Config returns the configuration the app was built from.
func (a *App) Config() *config.Config {
	return a.cfg
}

// States returns the current/previous page-state registry.
func (a *App) States() *page.StateRegistry {
	return a.registry
}

// Discussion returns the discussion resolver, for swapping the slug
// strategy or inspecting the pending scroll slot.
func (a *App) Discussion() *discussion.Resolver {
	return a.discussion
}

// Localize resolves a message ID through the application locale, falling
// back to the ID itself.
func (a *App) Localize(messageID string) string {
	return locale.PageTitle(a.localizer, messageID, nil)
}

// Close releases framework resources. Call before program exit.
func (a *App) Close() {
	internal.CloseLogger()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before New() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
