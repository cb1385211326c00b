// Package lehar generates and serves a static landing page for a
// magazine-style site. A build is a single pass: read metadata.json, sort
// the issues by the date embedded in their pdf references, render HTML
// fragments and substitute them into a placeholder template. Serve mode
// puts an Echo server in front of the generated site with an admin
// dashboard for editing the issue list and optional visit analytics.
package lehar

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mandeepsmagh/lehar-magazine/analytics"
)

// App is the serve-mode application. It wires together the metadata
// store, cache, handlers, middleware and the admin UI.
type App struct {
	Config Config
	Echo   *echo.Echo
	Store  *MetadataStore
	Cache  *MetaCache

	loginLimiter   *LoginLimiter
	analyticsStore *analytics.Store
	customRoutes   []func(*App)
}

// New creates a serve-mode App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start initializes the store, cache, middleware and routes, then runs
// the server until it shuts down.
func (a *App) Start() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("lehar: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("lehar: SessionSecret is required")
	}

	a.Store = NewMetadataStore(a.Config.MetadataPath)
	a.Cache = NewMetaCache(a.Store, a.Config.MetaCacheTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	if a.Config.AnalyticsEnabled {
		store, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("lehar: init analytics: %w", err)
		}
		a.analyticsStore = store
		if err := analytics.InitSalt(store); err != nil {
			return fmt.Errorf("lehar: init analytics salt: %w", err)
		}
		stopCleanup := store.StartCleanupScheduler(365, 24*time.Hour)
		defer stopCleanup()
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Public surface: the generated site plus live feed/sitemap/robots.
	// Explicit routes win over the static catch-all.
	e.GET("/", a.handleHome)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/robots.txt", a.handleRobots)
	e.Static("/", a.Config.SiteDir)

	// Admin surface: plain form posts, no client-side script needed.
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.GET("/admin/new/", a.handleAdminNewIssue)
	e.GET("/admin/issue/:idx/", a.handleAdminIssue)
	e.POST("/admin/save/", a.handleAdminSave)
	e.POST("/admin/delete/:idx/", a.handleAdminDelete)

	if a.analyticsStore != nil {
		e.GET("/admin/stats/", a.handleAdminStats)
	}
}

// Close cleans up resources. Call when the app is shutting down.
func (a *App) Close() error {
	if a.analyticsStore != nil {
		return a.analyticsStore.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("lehar: required environment variable %s is not set", key)
	}
	return v
}
