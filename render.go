package lehar

import "strings"

// defaultIssueDescription is shown on cards whose issue has no description.
const defaultIssueDescription = "Download this issue to read the full content."

// emptyStateHTML is rendered instead of cards when there are no issues.
const emptyStateHTML = `<div class="empty-state">
    <h2>No Issues Available</h2>
    <p>Check back soon for new content!</p>
</div>`

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// EscapeHTML escapes the five HTML-significant characters. It is a one-way
// mapping: escaping already-escaped text double-encodes the ampersands.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// IssueCards renders one card per issue, in the order given, joined by
// newlines. An empty slice yields the fixed empty-state fragment.
func IssueCards(issues []Issue) string {
	if len(issues) == 0 {
		return emptyStateHTML
	}
	cards := make([]string, 0, len(issues))
	for _, is := range issues {
		var b strings.Builder
		title := EscapeHTML(is.Title)
		b.WriteString("<div class=\"issue-card\">\n")
		b.WriteString("    <div class=\"image-container\">\n")
		b.WriteString("        <img src=\"" + EscapeHTML(is.Cover) + "\" alt=\"" + title + "\" loading=\"lazy\">\n")
		b.WriteString("    </div>\n")
		b.WriteString("    <div class=\"content\">\n")
		b.WriteString("        <h3>" + title + "</h3>\n")
		b.WriteString("        <p>" + EscapeHTML(issueDescription(is)) + "</p>\n")
		b.WriteString("        <a href=\"" + EscapeHTML(is.PDF) + "\" class=\"download-btn\" download>Download PDF</a>\n")
		b.WriteString("    </div>\n")
		b.WriteString("</div>")
		cards = append(cards, b.String())
	}
	return strings.Join(cards, "\n")
}

// issueDescription returns the issue's description or the fixed fallback.
func issueDescription(is Issue) string {
	if is.Description == nil {
		return defaultIssueDescription
	}
	return *is.Description
}

// OGTags renders the social-preview tag block for the latest issue.
// The base URL is interpolated as-is after stripping trailing slashes;
// everything else passes through EscapeHTML.
func OGTags(sm SiteMeta, latest Issue) string {
	desc := sm.DefaultDescription
	if latest.Description != nil {
		desc = *latest.Description
	}
	title := EscapeHTML(latest.Title)
	site := EscapeHTML(sm.SiteName)
	escDesc := EscapeHTML(desc)
	image := strings.TrimRight(sm.BaseURL, "/") + "/" + EscapeHTML(latest.Cover)

	var b strings.Builder
	b.WriteString(`<meta property="og:title" content="` + title + " | " + site + "\">\n")
	b.WriteString(`    <meta property="og:description" content="` + escDesc + "\">\n")
	b.WriteString(`    <meta property="og:image" content="` + image + "\">\n")
	b.WriteString(`    <meta property="og:site_name" content="` + site + "\">\n")
	b.WriteString("    <meta property=\"og:type\" content=\"website\">\n")
	b.WriteString("    <meta property=\"og:locale\" content=\"pa_IN\">\n")
	b.WriteString("    <meta name=\"twitter:card\" content=\"summary_large_image\">\n")
	b.WriteString(`    <meta name="twitter:image" content="` + image + "\">\n")
	b.WriteString(`    <meta name="description" content="` + escDesc + "\">")
	return b.String()
}

// DefaultOGTags renders the reduced tag block used when there are no
// issues: site name and default description only, no image tags.
func DefaultOGTags(sm SiteMeta) string {
	site := EscapeHTML(sm.SiteName)
	desc := EscapeHTML(sm.DefaultDescription)

	var b strings.Builder
	b.WriteString(`<meta property="og:title" content="` + site + "\">\n")
	b.WriteString(`    <meta property="og:description" content="` + desc + "\">\n")
	b.WriteString(`    <meta property="og:site_name" content="` + site + "\">\n")
	b.WriteString("    <meta property=\"og:type\" content=\"website\">\n")
	b.WriteString("    <meta property=\"og:locale\" content=\"pa_IN\">\n")
	b.WriteString("    <meta name=\"twitter:card\" content=\"summary\">\n")
	b.WriteString(`    <meta name="description" content="` + desc + "\">")
	return b.String()
}

// LogoHTML renders the header logo image, or nothing when no logo is set.
func LogoHTML(sm SiteMeta) string {
	if sm.Logo == "" {
		return ""
	}
	return `<img src="` + sm.Logo + `" alt="` + sm.SiteName + ` Logo">`
}
