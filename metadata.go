package lehar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/atomic"
)

// Intermediate decode targets. Required fields are pointers so a missing
// key is detected as such; an empty string present in the document is
// legal and passes through untouched.
type rawMetadata struct {
	SiteMeta *rawSiteMeta `json:"site_meta"`
	Issues   *[]rawIssue  `json:"issues"`
}

type rawSiteMeta struct {
	SiteName           *string `json:"site_name"`
	DefaultDescription *string `json:"default_description"`
	BaseURL            *string `json:"base_url"`
	Logo               *string `json:"logo"`
}

type rawIssue struct {
	Title       *string `json:"title"`
	PDF         *string `json:"pdf"`
	Cover       *string `json:"cover"`
	Description *string `json:"description"`
}

// LoadMetadata reads and parses the metadata document at path.
// A missing or unreadable file wraps ErrRead; a document that does not
// conform to the schema wraps ErrParse. Both are fatal to a build.
func LoadMetadata(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: metadata %s: %v", ErrRead, path, err)
	}
	return ParseMetadata(data)
}

// ParseMetadata decodes a metadata document and checks the schema:
// site_meta with its four fields, the issues list (which may be empty
// but not absent) and title/pdf/cover per issue are required;
// description is optional. Field values are never validated
// beyond presence — empty strings are the caller's problem.
func ParseMetadata(data []byte) (Metadata, error) {
	var raw rawMetadata
	if err := json.Unmarshal(data, &raw); err != nil {
		return Metadata{}, fmt.Errorf("%w: metadata: %v", ErrParse, err)
	}
	if raw.SiteMeta == nil {
		return Metadata{}, fmt.Errorf("%w: metadata: missing required field %q", ErrParse, "site_meta")
	}
	if raw.Issues == nil {
		return Metadata{}, fmt.Errorf("%w: metadata: missing required field %q", ErrParse, "issues")
	}
	sm := raw.SiteMeta
	for _, f := range []struct {
		name string
		val  *string
	}{
		{"site_name", sm.SiteName},
		{"default_description", sm.DefaultDescription},
		{"base_url", sm.BaseURL},
		{"logo", sm.Logo},
	} {
		if f.val == nil {
			return Metadata{}, fmt.Errorf("%w: site_meta: missing required field %q", ErrParse, f.name)
		}
	}

	// Issues stays non-nil even when empty so a round trip through
	// MetadataStore.Save writes [] rather than null.
	meta := Metadata{
		SiteMeta: SiteMeta{
			SiteName:           *sm.SiteName,
			DefaultDescription: *sm.DefaultDescription,
			BaseURL:            *sm.BaseURL,
			Logo:               *sm.Logo,
		},
		Issues: make([]Issue, 0, len(*raw.Issues)),
	}
	for i, ri := range *raw.Issues {
		for _, f := range []struct {
			name string
			val  *string
		}{
			{"title", ri.Title},
			{"pdf", ri.PDF},
			{"cover", ri.Cover},
		} {
			if f.val == nil {
				return Metadata{}, fmt.Errorf("%w: issue %d: missing required field %q", ErrParse, i, f.name)
			}
		}
		meta.Issues = append(meta.Issues, Issue{
			Title:       *ri.Title,
			PDF:         *ri.PDF,
			Cover:       *ri.Cover,
			Description: ri.Description,
		})
	}
	return meta, nil
}

// MetadataStore provides concurrency-safe read/modify/write access to the
// metadata document for the admin UI. Generator runs read the file
// directly; only mutations go through here.
type MetadataStore struct {
	mu   sync.Mutex
	path string
}

// NewMetadataStore creates a store over the metadata document at path.
func NewMetadataStore(path string) *MetadataStore {
	return &MetadataStore{path: path}
}

// Path returns the location of the backing document.
func (s *MetadataStore) Path() string {
	return s.path
}

// Load reads the current document.
func (s *MetadataStore) Load() (Metadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return LoadMetadata(s.path)
}

// Save writes the document back atomically, pretty-printed so the file
// stays hand-editable.
func (s *MetadataStore) Save(meta Metadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(meta)
}

func (s *MetadataStore) save(meta Metadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: metadata: %v", ErrWrite, err)
	}
	data = append(data, '\n')
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: metadata %s: %v", ErrWrite, s.path, err)
		}
	}
	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: metadata %s: %v", ErrWrite, s.path, err)
	}
	return nil
}

// AddIssue appends a new issue to the document.
func (s *MetadataStore) AddIssue(is Issue) error {
	return s.update(func(meta *Metadata) error {
		meta.Issues = append(meta.Issues, is)
		return nil
	})
}

// UpdateIssue replaces the issue at idx. Issues carry no uniqueness
// constraint (duplicates are allowed), so the slice index is the only
// usable identity.
func (s *MetadataStore) UpdateIssue(idx int, is Issue) error {
	return s.update(func(meta *Metadata) error {
		if idx < 0 || idx >= len(meta.Issues) {
			return fmt.Errorf("lehar: issue index %d out of range", idx)
		}
		meta.Issues[idx] = is
		return nil
	})
}

// DeleteIssue removes the issue at idx.
func (s *MetadataStore) DeleteIssue(idx int) error {
	return s.update(func(meta *Metadata) error {
		if idx < 0 || idx >= len(meta.Issues) {
			return fmt.Errorf("lehar: issue index %d out of range", idx)
		}
		meta.Issues = append(meta.Issues[:idx], meta.Issues[idx+1:]...)
		return nil
	})
}

func (s *MetadataStore) update(fn func(*Metadata) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	meta, err := LoadMetadata(s.path)
	if err != nil {
		return err
	}
	if err := fn(&meta); err != nil {
		return err
	}
	return s.save(meta)
}
