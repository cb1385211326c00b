package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	cmd := "generate"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "generate":
		if err := runGenerate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "init":
		force := len(os.Args) > 2 && os.Args[2] == "-force"
		if err := runInit(force); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("lehar %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`lehar - A static landing page generator for magazine sites

Usage:
  lehar [command]

Commands:
  generate      Build index.html from metadata.json and the template (default)
  serve         Serve the site with the admin dashboard
  init          Write starter metadata.json and index.template.html
  version       Print the lehar version
  help          Show this help message

Environment:
  LEHAR_METADATA          Metadata document (default "metadata.json")
  LEHAR_TEMPLATE          Page template (default "index.template.html")
  LEHAR_OUTPUT            Generated page (default "index.html")
  LEHAR_SITE_DIR          Site directory for serve mode (default ".")
  LEHAR_FEEDS             Set to "true" to also write feed.xml, sitemap.xml, robots.txt
  LEHAR_ADDR              Listen address for serve mode (default ":3000")
  LEHAR_ADMIN_PASSWORD    Admin password, required for serve mode
  LEHAR_SESSION_SECRET    Session secret, required for serve mode
  LEHAR_COOKIE_SECURE     Set to "true" behind HTTPS
  LEHAR_ANALYTICS         Set to "true" to record visits in serve mode
  LEHAR_ANALYTICS_DB      Analytics database path (default "data/analytics.db")`)
}
