package main

import (
	"github.com/mandeepsmagh/lehar-magazine"
)

func runServe() error {
	cfg := buildConfig()
	cfg.Addr = lehar.EnvOr("LEHAR_ADDR", "")
	cfg.AdminPassword = lehar.MustEnv("LEHAR_ADMIN_PASSWORD")
	cfg.SessionSecret = lehar.MustEnv("LEHAR_SESSION_SECRET")
	cfg.CookieSecure = lehar.EnvOr("LEHAR_COOKIE_SECURE", "") == "true"
	cfg.AnalyticsEnabled = lehar.EnvOr("LEHAR_ANALYTICS", "") == "true"
	cfg.AnalyticsDatabasePath = lehar.EnvOr("LEHAR_ANALYTICS_DB", "")

	app := lehar.New(cfg)
	defer app.Close()
	return app.Start()
}
