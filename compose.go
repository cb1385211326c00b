package lehar

import (
	"fmt"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// The four placeholder tokens a template may carry. Each occurrence is
// replaced wholesale; tokens that never appear are simply unused.
const (
	TokenOGTags     = "{{OG_TAGS}}"
	TokenIssueCards = "{{ISSUE_CARDS}}"
	TokenPageTitle  = "{{PAGE_TITLE}}"
	TokenLogo       = "{{LOGO}}"
)

// Fragments carries the rendered pieces a template is composed from.
// PageTitle is substituted verbatim, without HTML escaping; the other
// fragments were escaped when rendered.
type Fragments struct {
	OGTags     string
	IssueCards string
	PageTitle  string
	Logo       string
}

// ComposeTemplate substitutes the placeholder tokens in tmpl with the
// given fragments. Replacements are literal and non-recursive.
func ComposeTemplate(tmpl string, f Fragments) string {
	out := strings.ReplaceAll(tmpl, TokenOGTags, f.OGTags)
	out = strings.ReplaceAll(out, TokenIssueCards, f.IssueCards)
	out = strings.ReplaceAll(out, TokenPageTitle, f.PageTitle)
	out = strings.ReplaceAll(out, TokenLogo, f.Logo)
	return out
}

// ComposeFile reads the template at tmplPath, substitutes the fragments
// and writes the result to outPath. The write goes through a temp file
// and rename, so a failure never leaves a truncated page behind.
func ComposeFile(tmplPath, outPath string, f Fragments) error {
	tmpl, err := os.ReadFile(tmplPath)
	if err != nil {
		return fmt.Errorf("%w: template %s: %v", ErrRead, tmplPath, err)
	}
	out := ComposeTemplate(string(tmpl), f)
	if err := atomic.WriteFile(outPath, strings.NewReader(out)); err != nil {
		return fmt.Errorf("%w: output %s: %v", ErrWrite, outPath, err)
	}
	return nil
}
