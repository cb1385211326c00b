package lehar

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/natefinch/atomic"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// SitemapXML renders a sitemap covering the landing page and every issue
// PDF, with lastmod taken from the date embedded in the pdf reference
// when present.
func SitemapXML(sm SiteMeta, issues []Issue) ([]byte, error) {
	urls := []sitemapURL{
		{Loc: siteRoot(sm)},
	}
	for _, is := range issues {
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(sm.BaseURL, is.PDF),
			LastMod: issueDateString(is),
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(sitemap); err != nil {
		return nil, fmt.Errorf("lehar: encode sitemap: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteSitemap renders the sitemap and writes it atomically to path.
func WriteSitemap(path string, sm SiteMeta, issues []Issue) error {
	data, err := SitemapXML(sm, issues)
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: sitemap %s: %v", ErrWrite, path, err)
	}
	return nil
}

// RobotsTxt renders an allow-all robots.txt pointing at the sitemap.
func RobotsTxt(sm SiteMeta) string {
	return fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %ssitemap.xml\n", siteRoot(sm))
}

// WriteRobots writes robots.txt atomically to path.
func WriteRobots(path string, sm SiteMeta) error {
	if err := atomic.WriteFile(path, bytes.NewReader([]byte(RobotsTxt(sm)))); err != nil {
		return fmt.Errorf("%w: robots %s: %v", ErrWrite, path, err)
	}
	return nil
}
