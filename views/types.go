// Package views renders the admin and error pages as templ components.
// The components are written by hand against bytes.Buffer; the public
// landing page is not rendered here — that is the placeholder template's
// job.
package views

// Site carries the site branding the admin UI shows.
type Site struct {
	Name string
}

// IssueForm is an issue as presented in the admin dashboard and editor.
// Index is the issue's position in metadata.json (-1 for a new issue);
// issues have no other identity, duplicates included. Description empty
// means the field is absent. Date is display-only, derived from the pdf
// reference.
type IssueForm struct {
	Index       int
	Title       string
	PDF         string
	Cover       string
	Description string
	Date        string
}
