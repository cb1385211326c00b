package lehar

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validMetadata = `{
  "site_meta": {
    "site_name": "Punjabi Times",
    "default_description": "A Punjabi magazine.",
    "base_url": "https://x.com/",
    "logo": "logo.png"
  },
  "issues": [
    {"title": "Spring", "pdf": "issues/2024-01-05-spring.pdf", "cover": "covers/spring.jpg", "description": "Spring issue."},
    {"title": "Summer", "pdf": "issues/2024-06-10-summer.pdf", "cover": "covers/summer.jpg"}
  ]
}`

func TestParseMetadata(t *testing.T) {
	meta, err := ParseMetadata([]byte(validMetadata))
	if err != nil {
		t.Fatalf("ParseMetadata failed: %v", err)
	}

	if meta.SiteMeta.SiteName != "Punjabi Times" {
		t.Errorf("SiteName = %q, want %q", meta.SiteMeta.SiteName, "Punjabi Times")
	}
	if len(meta.Issues) != 2 {
		t.Fatalf("len(Issues) = %d, want 2", len(meta.Issues))
	}
	if meta.Issues[0].Description == nil || *meta.Issues[0].Description != "Spring issue." {
		t.Errorf("Issues[0].Description = %v, want %q", meta.Issues[0].Description, "Spring issue.")
	}
	if meta.Issues[1].Description != nil {
		t.Errorf("Issues[1].Description = %q, want absent", *meta.Issues[1].Description)
	}
}

func TestParseMetadataMalformed(t *testing.T) {
	_, err := ParseMetadata([]byte("{not json"))
	if !errors.Is(err, ErrParse) {
		t.Errorf("error = %v, want ErrParse kind", err)
	}
}

func TestParseMetadataMissingSiteMeta(t *testing.T) {
	_, err := ParseMetadata([]byte(`{"issues": []}`))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("error = %v, want ErrParse kind", err)
	}
	if !strings.Contains(err.Error(), "site_meta") {
		t.Errorf("error = %v, want mention of site_meta", err)
	}
}

func TestParseMetadataMissingIssues(t *testing.T) {
	docs := []string{
		`{"site_meta": {"site_name": "M", "default_description": "d", "base_url": "https://m", "logo": ""}}`,
		`{"site_meta": {"site_name": "M", "default_description": "d", "base_url": "https://m", "logo": ""}, "issues": null}`,
	}
	for _, doc := range docs {
		_, err := ParseMetadata([]byte(doc))
		if !errors.Is(err, ErrParse) {
			t.Fatalf("ParseMetadata(%s) error = %v, want ErrParse kind", doc, err)
		}
		if !strings.Contains(err.Error(), "issues") {
			t.Errorf("error = %v, want mention of issues", err)
		}
	}
}

func TestParseMetadataMissingSiteField(t *testing.T) {
	doc := `{"site_meta": {"site_name": "M", "default_description": "d", "logo": ""}, "issues": []}`
	_, err := ParseMetadata([]byte(doc))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("error = %v, want ErrParse kind", err)
	}
	if !strings.Contains(err.Error(), "base_url") {
		t.Errorf("error = %v, want mention of base_url", err)
	}
}

func TestParseMetadataMissingIssueField(t *testing.T) {
	doc := `{
  "site_meta": {"site_name": "M", "default_description": "d", "base_url": "https://m", "logo": ""},
  "issues": [{"title": "T", "cover": "c.jpg"}]
}`
	_, err := ParseMetadata([]byte(doc))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("error = %v, want ErrParse kind", err)
	}
	if !strings.Contains(err.Error(), "pdf") {
		t.Errorf("error = %v, want mention of pdf", err)
	}
}

func TestParseMetadataEmptyStringsAllowed(t *testing.T) {
	doc := `{
  "site_meta": {"site_name": "", "default_description": "", "base_url": "", "logo": ""},
  "issues": [{"title": "", "pdf": "", "cover": ""}]
}`
	meta, err := ParseMetadata([]byte(doc))
	if err != nil {
		t.Fatalf("ParseMetadata failed: %v", err)
	}
	if len(meta.Issues) != 1 {
		t.Errorf("len(Issues) = %d, want 1", len(meta.Issues))
	}
}

func TestParseMetadataEmptyIssuesRoundTrips(t *testing.T) {
	doc := `{"site_meta": {"site_name": "M", "default_description": "d", "base_url": "https://m", "logo": ""}, "issues": []}`
	meta, err := ParseMetadata([]byte(doc))
	if err != nil {
		t.Fatalf("ParseMetadata failed: %v", err)
	}
	if meta.Issues == nil {
		t.Fatal("empty issues list should parse to a non-nil slice")
	}

	data, err := json.Marshal(meta)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := ParseMetadata(data); err != nil {
		t.Errorf("re-parse after marshal failed: %v", err)
	}
}

func TestLoadMetadataMissingFile(t *testing.T) {
	_, err := LoadMetadata(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrRead) {
		t.Errorf("error = %v, want ErrRead kind", err)
	}
}

func setupTestMetadata(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metadata.json")
	if err := os.WriteFile(path, []byte(validMetadata), 0o644); err != nil {
		t.Fatalf("write metadata: %v", err)
	}
	return path
}

func TestMetadataStoreRoundTrip(t *testing.T) {
	s := NewMetadataStore(setupTestMetadata(t))

	meta, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := s.Save(meta); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	again, err := s.Load()
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if len(again.Issues) != len(meta.Issues) {
		t.Errorf("len(Issues) = %d, want %d", len(again.Issues), len(meta.Issues))
	}
	if again.Issues[1].Description != nil {
		t.Errorf("absent description reappeared after round trip")
	}
}

func TestMetadataStoreAddIssue(t *testing.T) {
	s := NewMetadataStore(setupTestMetadata(t))

	if err := s.AddIssue(Issue{Title: "Autumn", PDF: "issues/2024-09-01-autumn.pdf", Cover: "covers/autumn.jpg"}); err != nil {
		t.Fatalf("AddIssue failed: %v", err)
	}

	meta, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(meta.Issues) != 3 {
		t.Fatalf("len(Issues) = %d, want 3", len(meta.Issues))
	}
	if meta.Issues[2].Title != "Autumn" {
		t.Errorf("Issues[2].Title = %q, want %q", meta.Issues[2].Title, "Autumn")
	}
}

func TestMetadataStoreUpdateIssue(t *testing.T) {
	s := NewMetadataStore(setupTestMetadata(t))

	updated := Issue{Title: "Spring Revised", PDF: "issues/2024-01-05-spring.pdf", Cover: "covers/spring.jpg"}
	if err := s.UpdateIssue(0, updated); err != nil {
		t.Fatalf("UpdateIssue failed: %v", err)
	}

	meta, _ := s.Load()
	if meta.Issues[0].Title != "Spring Revised" {
		t.Errorf("Issues[0].Title = %q, want %q", meta.Issues[0].Title, "Spring Revised")
	}

	if err := s.UpdateIssue(5, updated); err == nil {
		t.Error("expected error for out-of-range index")
	}
}

func TestMetadataStoreDeleteIssue(t *testing.T) {
	s := NewMetadataStore(setupTestMetadata(t))

	if err := s.DeleteIssue(0); err != nil {
		t.Fatalf("DeleteIssue failed: %v", err)
	}

	meta, _ := s.Load()
	if len(meta.Issues) != 1 {
		t.Fatalf("len(Issues) = %d, want 1", len(meta.Issues))
	}
	if meta.Issues[0].Title != "Summer" {
		t.Errorf("Issues[0].Title = %q, want %q", meta.Issues[0].Title, "Summer")
	}

	if err := s.DeleteIssue(-1); err == nil {
		t.Error("expected error for negative index")
	}
}
