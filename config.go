package lehar

import "time"

// Config holds all configuration for a lehar site.
type Config struct {
	MetadataPath string // Issue metadata document (default "metadata.json")
	TemplatePath string // HTML template with placeholder tokens (default "index.template.html")
	OutputPath   string // Generated landing page (default "index.html")
	SiteDir      string // Directory served in serve mode and receiving extra outputs (default ".")

	FeedPath    string // RSS output (default "feed.xml")
	SitemapPath string // Sitemap output (default "sitemap.xml")
	RobotsPath  string // robots.txt output (default "robots.txt")
	WriteFeeds  bool   // Also write feed/sitemap/robots during a build

	Addr string // Listen address for serve mode (default ":3000")

	AdminPassword string // Required for serve mode: admin login password
	SessionSecret string // Required for serve mode: session encryption secret
	CookieSecure  bool   // Set true behind HTTPS

	AnalyticsEnabled      bool   // Track visits in serve mode
	AnalyticsDatabasePath string // Analytics SQLite path (default "data/analytics.db")

	MetaCacheTTL time.Duration // Metadata cache TTL in serve mode (default 5min)
}

func (c *Config) setDefaults() {
	if c.MetadataPath == "" {
		c.MetadataPath = "metadata.json"
	}
	if c.TemplatePath == "" {
		c.TemplatePath = "index.template.html"
	}
	if c.OutputPath == "" {
		c.OutputPath = "index.html"
	}
	if c.SiteDir == "" {
		c.SiteDir = "."
	}
	if c.FeedPath == "" {
		c.FeedPath = "feed.xml"
	}
	if c.SitemapPath == "" {
		c.SitemapPath = "sitemap.xml"
	}
	if c.RobotsPath == "" {
		c.RobotsPath = "robots.txt"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.AnalyticsDatabasePath == "" {
		c.AnalyticsDatabasePath = "data/analytics.db"
	}
	if c.MetaCacheTTL == 0 {
		c.MetaCacheTTL = 5 * time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
