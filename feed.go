package lehar

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/natefinch/atomic"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// FeedXML renders an RSS 2.0 feed with one item per issue, in the order
// given (callers pass the sorted slice, newest first). Issues without an
// embedded date get an empty pubDate.
func FeedXML(sm SiteMeta, issues []Issue) ([]byte, error) {
	items := make([]rssItem, 0, len(issues))
	for _, is := range issues {
		pubDate := ""
		if d := issueDateString(is); d != "" {
			if t, err := time.Parse("2006-01-02", d); err == nil {
				pubDate = t.Format(time.RFC1123Z)
			}
		}
		link := BuildURL(sm.BaseURL, is.PDF)
		items = append(items, rssItem{
			Title:       is.Title,
			Link:        link,
			Description: issueDescription(is),
			PubDate:     pubDate,
			GUID:        link,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       sm.SiteName,
			Link:        siteRoot(sm),
			Description: sm.DefaultDescription,
			Items:       items,
		},
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(feed); err != nil {
		return nil, fmt.Errorf("lehar: encode feed: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFeed renders the feed and writes it atomically to path.
func WriteFeed(path string, sm SiteMeta, issues []Issue) error {
	data, err := FeedXML(sm, issues)
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: feed %s: %v", ErrWrite, path, err)
	}
	return nil
}
