package lehar

// RenderFragments produces the four template fragments from loaded
// metadata. The issues must already be in final order; the first one is
// treated as the latest for the social tags.
func RenderFragments(sm SiteMeta, sorted []Issue) Fragments {
	og := DefaultOGTags(sm)
	if len(sorted) > 0 {
		og = OGTags(sm, sorted[0])
	}
	return Fragments{
		OGTags:     og,
		IssueCards: IssueCards(sorted),
		PageTitle:  sm.SiteName,
		Logo:       LogoHTML(sm),
	}
}

// Generate runs one build: load metadata, sort the issues, render the
// fragments and compose the output page. With cfg.WriteFeeds set it also
// writes feed.xml, sitemap.xml and robots.txt next to the page. It
// returns the number of issues rendered.
//
// There is no partial recovery: the first failing step aborts the build
// and its error carries one of ErrRead, ErrParse or ErrWrite.
func Generate(cfg Config) (int, error) {
	cfg.setDefaults()

	meta, err := LoadMetadata(cfg.MetadataPath)
	if err != nil {
		return 0, err
	}
	sorted := SortIssues(meta.Issues)

	if err := ComposeFile(cfg.TemplatePath, cfg.OutputPath, RenderFragments(meta.SiteMeta, sorted)); err != nil {
		return 0, err
	}

	if cfg.WriteFeeds {
		if err := WriteFeed(cfg.FeedPath, meta.SiteMeta, sorted); err != nil {
			return 0, err
		}
		if err := WriteSitemap(cfg.SitemapPath, meta.SiteMeta, sorted); err != nil {
			return 0, err
		}
		if err := WriteRobots(cfg.RobotsPath, meta.SiteMeta); err != nil {
			return 0, err
		}
	}

	return len(sorted), nil
}
