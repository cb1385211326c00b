package lehar

import (
	"net/url"
	"path"
	"strings"
)

// BuildURL joins path segments onto a base URL. Unlike page URLs, issue
// assets are files, so no trailing slash is appended.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	if len(pathSegments) > 0 {
		u.Path = path.Join(u.Path, path.Join(pathSegments...))
	}
	return u.String()
}

// issueDateString returns the YYYY-MM-DD substring embedded in the issue's
// pdf reference, or "" when there is none.
func issueDateString(is Issue) string {
	return issueDate.FindString(is.PDF)
}

// siteRoot returns the base URL with a single trailing slash, used as the
// canonical landing page location in the feed and sitemap.
func siteRoot(sm SiteMeta) string {
	return strings.TrimRight(sm.BaseURL, "/") + "/"
}
