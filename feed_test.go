package lehar

import (
	"strings"
	"testing"
)

func feedSiteMeta() SiteMeta {
	return SiteMeta{
		SiteName:           "Punjabi Times",
		DefaultDescription: "A Punjabi magazine.",
		BaseURL:            "https://x.com",
	}
}

func TestFeedXML(t *testing.T) {
	issues := []Issue{
		{Title: "Summer Edition", PDF: "issues/2024-06-10-summer.pdf", Cover: "covers/summer.jpg", Description: strptr("Hot off the press.")},
		{Title: "Spring Edition", PDF: "issues/2024-01-05-spring.pdf", Cover: "covers/spring.jpg"},
	}

	data, err := FeedXML(feedSiteMeta(), issues)
	if err != nil {
		t.Fatalf("FeedXML failed: %v", err)
	}
	feed := string(data)

	if !strings.HasPrefix(feed, "<?xml") {
		t.Errorf("feed missing xml header:\n%s", feed)
	}
	if !strings.Contains(feed, "<title>Punjabi Times</title>") {
		t.Errorf("channel title missing:\n%s", feed)
	}
	if !strings.Contains(feed, "<link>https://x.com/</link>") {
		t.Errorf("channel link missing:\n%s", feed)
	}
	if !strings.Contains(feed, "<link>https://x.com/issues/2024-06-10-summer.pdf</link>") {
		t.Errorf("item link missing:\n%s", feed)
	}
	if !strings.Contains(feed, "<pubDate>Mon, 10 Jun 2024 00:00:00 +0000</pubDate>") {
		t.Errorf("pubDate missing:\n%s", feed)
	}
	if !strings.Contains(feed, "<description>Hot off the press.</description>") {
		t.Errorf("item description missing:\n%s", feed)
	}
	if !strings.Contains(feed, "<description>Download this issue to read the full content.</description>") {
		t.Errorf("fallback description missing:\n%s", feed)
	}
}

func TestFeedXMLDatelessIssue(t *testing.T) {
	issues := []Issue{{Title: "Special", PDF: "issues/special.pdf", Cover: "covers/special.jpg"}}

	data, err := FeedXML(feedSiteMeta(), issues)
	if err != nil {
		t.Fatalf("FeedXML failed: %v", err)
	}
	if !strings.Contains(string(data), "<pubDate></pubDate>") {
		t.Errorf("dateless issue should have an empty pubDate:\n%s", data)
	}
}

func TestSitemapXML(t *testing.T) {
	issues := []Issue{
		{Title: "Spring Edition", PDF: "issues/2024-01-05-spring.pdf", Cover: "covers/spring.jpg"},
		{Title: "Special", PDF: "issues/special.pdf", Cover: "covers/special.jpg"},
	}

	data, err := SitemapXML(feedSiteMeta(), issues)
	if err != nil {
		t.Fatalf("SitemapXML failed: %v", err)
	}
	sitemap := string(data)

	if !strings.Contains(sitemap, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`) {
		t.Errorf("namespace missing:\n%s", sitemap)
	}
	if !strings.Contains(sitemap, "<loc>https://x.com/</loc>") {
		t.Errorf("landing page loc missing:\n%s", sitemap)
	}
	if !strings.Contains(sitemap, "<loc>https://x.com/issues/2024-01-05-spring.pdf</loc>") {
		t.Errorf("issue loc missing:\n%s", sitemap)
	}
	if !strings.Contains(sitemap, "<lastmod>2024-01-05</lastmod>") {
		t.Errorf("lastmod missing:\n%s", sitemap)
	}
	// Dateless issues carry no lastmod at all.
	if strings.Count(sitemap, "<lastmod>") != 1 {
		t.Errorf("expected exactly one lastmod:\n%s", sitemap)
	}
}

func TestRobotsTxt(t *testing.T) {
	got := RobotsTxt(feedSiteMeta())
	want := "User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: https://x.com/sitemap.xml\n"
	if got != want {
		t.Errorf("RobotsTxt = %q, want %q", got, want)
	}
}
