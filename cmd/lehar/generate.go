package main

import (
	"fmt"

	"github.com/mandeepsmagh/lehar-magazine"
)

func buildConfig() lehar.Config {
	return lehar.Config{
		MetadataPath: lehar.EnvOr("LEHAR_METADATA", ""),
		TemplatePath: lehar.EnvOr("LEHAR_TEMPLATE", ""),
		OutputPath:   lehar.EnvOr("LEHAR_OUTPUT", ""),
		SiteDir:      lehar.EnvOr("LEHAR_SITE_DIR", ""),
		WriteFeeds:   lehar.EnvOr("LEHAR_FEEDS", "") == "true",
	}
}

func runGenerate() error {
	cfg := buildConfig()
	n, err := lehar.Generate(cfg)
	if err != nil {
		return err
	}
	out := cfg.OutputPath
	if out == "" {
		out = "index.html"
	}
	fmt.Printf("Successfully generated %s with %d issues\n", out, n)
	return nil
}
