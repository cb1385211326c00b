package analytics

import (
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "analytics.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSettingsRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	val, err := s.GetSetting("hash_salt")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if val != "" {
		t.Errorf("unset setting = %q, want empty", val)
	}

	if err := s.SetSetting("hash_salt", "abc123"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	val, err = s.GetSetting("hash_salt")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if val != "abc123" {
		t.Errorf("setting = %q, want %q", val, "abc123")
	}
}

func TestRecordVisitAndStats(t *testing.T) {
	s := setupTestStore(t)
	now := time.Now().UTC()

	visits := []Visit{
		{VisitorID: "v1", IPHash: "h1", Browser: "Chrome", Device: "Desktop", Path: "/", Referrer: "Direct", Timestamp: now},
		{VisitorID: "v1", IPHash: "h1", Browser: "Chrome", Device: "Desktop", Path: "/feed.xml", Referrer: "Direct", Timestamp: now},
		{VisitorID: "v2", IPHash: "h2", Browser: "Firefox", Device: "Mobile", Path: "/", Referrer: "google.com", Timestamp: now},
		{VisitorID: "v3", IPHash: "h3", Browser: "Other", Device: "Desktop", Path: "/", Referrer: "Direct", Bot: true, Timestamp: now},
	}
	for _, v := range visits {
		if err := s.RecordVisit(v); err != nil {
			t.Fatalf("RecordVisit failed: %v", err)
		}
	}

	stats, err := s.Stats(30)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if stats.TotalViews != 3 {
		t.Errorf("TotalViews = %d, want 3", stats.TotalViews)
	}
	if stats.UniqueVisitors != 2 {
		t.Errorf("UniqueVisitors = %d, want 2", stats.UniqueVisitors)
	}
	if stats.BotViews != 1 {
		t.Errorf("BotViews = %d, want 1", stats.BotViews)
	}
	if len(stats.TopPages) == 0 || stats.TopPages[0].Path != "/" || stats.TopPages[0].Views != 2 {
		t.Errorf("TopPages = %+v, want / with 2 views first", stats.TopPages)
	}
	if len(stats.DailyViews) != 1 || stats.DailyViews[0].Views != 3 {
		t.Errorf("DailyViews = %+v, want one day with 3 views", stats.DailyViews)
	}
}

func TestDeleteOlderThan(t *testing.T) {
	s := setupTestStore(t)
	now := time.Now().UTC()

	old := Visit{VisitorID: "v1", IPHash: "h1", Path: "/", Referrer: "Direct", Timestamp: now.AddDate(0, 0, -400)}
	recent := Visit{VisitorID: "v2", IPHash: "h2", Path: "/", Referrer: "Direct", Timestamp: now}
	if err := s.RecordVisit(old); err != nil {
		t.Fatalf("RecordVisit failed: %v", err)
	}
	if err := s.RecordVisit(recent); err != nil {
		t.Fatalf("RecordVisit failed: %v", err)
	}

	if err := s.DeleteOlderThan(365); err != nil {
		t.Fatalf("DeleteOlderThan failed: %v", err)
	}

	stats, err := s.Stats(500)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalViews != 1 {
		t.Errorf("TotalViews = %d, want 1 after pruning", stats.TotalViews)
	}
}
