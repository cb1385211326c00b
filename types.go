package lehar

// SiteMeta holds the site-wide values from the site_meta block of metadata.json.
type SiteMeta struct {
	SiteName           string `json:"site_name"`
	DefaultDescription string `json:"default_description"`
	BaseURL            string `json:"base_url"`
	Logo               string `json:"logo"` // empty means no logo fragment is rendered
}

// Issue is one published magazine issue. Description is a pointer so an
// absent field stays distinguishable from an empty one; the fallback text
// is applied at render time, not here.
type Issue struct {
	Title       string  `json:"title"`
	PDF         string  `json:"pdf"`
	Cover       string  `json:"cover"`
	Description *string `json:"description,omitempty"`
}

// Metadata is the root document of metadata.json. The order of Issues as
// loaded carries no meaning; SortIssues decides the final order.
type Metadata struct {
	SiteMeta SiteMeta `json:"site_meta"`
	Issues   []Issue  `json:"issues"`
}
