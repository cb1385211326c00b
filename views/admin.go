package views

import (
	"bytes"
	"context"
	"html"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

func page(title string, body func(buf *bytes.Buffer)) func(ctx context.Context, w io.Writer) error {
	return func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
		buf.WriteString("<meta charset=\"utf-8\">\n")
		buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		buf.WriteString("<meta name=\"robots\" content=\"noindex\">\n")
		buf.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
		buf.WriteString("<style>" + adminCSS + "</style>\n")
		buf.WriteString("</head>\n<body>\n")
		body(&buf)
		buf.WriteString("\n</body>\n</html>\n")
		_, err := w.Write(buf.Bytes())
		return err
	}
}

const adminCSS = `body{font-family:system-ui,sans-serif;max-width:56rem;margin:2rem auto;padding:0 1rem;color:#1c1917}
h1{font-size:1.4rem}table{width:100%;border-collapse:collapse}th,td{text-align:left;padding:.5rem;border-bottom:1px solid #e7e5e4}
input,textarea{width:100%;padding:.4rem;margin:.25rem 0 .75rem;border:1px solid #a8a29e;border-radius:4px;font:inherit}
button{padding:.4rem 1rem;border:1px solid #1c1917;border-radius:4px;background:#1c1917;color:#fff;cursor:pointer}
button.plain{background:#fff;color:#1c1917}.msg{background:#fef3c7;padding:.5rem .75rem;border-radius:4px}
.error{color:#b91c1c}form.inline{display:inline}`

func pageTitle(site Site, section string) string {
	if site.Name == "" {
		return section
	}
	return section + " | " + site.Name
}

func csrfField(buf *bytes.Buffer, token string) {
	buf.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + html.EscapeString(token) + "\">")
}

// AdminLogin renders the password prompt, with an error notice after a
// failed attempt.
func AdminLogin(site Site, showError bool, csrfToken string) templ.Component {
	return templ.ComponentFunc(page(pageTitle(site, "Admin Login"), func(buf *bytes.Buffer) {
		buf.WriteString("<h1>" + html.EscapeString(site.Name) + " Admin</h1>\n")
		if showError {
			buf.WriteString("<p class=\"error\">Wrong password.</p>\n")
		}
		buf.WriteString("<form method=\"post\" action=\"/admin/login/\">\n")
		csrfField(buf, csrfToken)
		buf.WriteString("<label>Password <input type=\"password\" name=\"password\" autofocus></label>\n")
		buf.WriteString("<button type=\"submit\">Log in</button>\n</form>")
	}))
}

// AdminDashboard renders the issue list in metadata.json file order with
// edit and delete controls per row.
func AdminDashboard(site Site, issues []IssueForm, message, csrfToken string) templ.Component {
	return templ.ComponentFunc(page(pageTitle(site, "Issues"), func(buf *bytes.Buffer) {
		buf.WriteString("<h1>" + html.EscapeString(site.Name) + " Issues</h1>\n")
		if message != "" {
			buf.WriteString("<p class=\"msg\">" + html.EscapeString(message) + "</p>\n")
		}
		buf.WriteString("<p><a href=\"/admin/new/\">Add issue</a> · <a href=\"/\">View site</a></p>\n")
		if len(issues) == 0 {
			buf.WriteString("<p>No issues yet.</p>\n")
		} else {
			buf.WriteString("<table>\n<tr><th>#</th><th>Title</th><th>Date</th><th>PDF</th><th></th></tr>\n")
			for _, is := range issues {
				idx := strconv.Itoa(is.Index)
				buf.WriteString("<tr><td>" + idx + "</td>")
				buf.WriteString("<td>" + html.EscapeString(is.Title) + "</td>")
				buf.WriteString("<td>" + html.EscapeString(is.Date) + "</td>")
				buf.WriteString("<td>" + html.EscapeString(is.PDF) + "</td>")
				buf.WriteString("<td><a href=\"/admin/issue/" + idx + "/\">Edit</a> ")
				buf.WriteString("<form class=\"inline\" method=\"post\" action=\"/admin/delete/" + idx + "/\">")
				csrfField(buf, csrfToken)
				buf.WriteString("<button class=\"plain\" type=\"submit\">Delete</button></form></td></tr>\n")
			}
			buf.WriteString("</table>\n")
		}
		buf.WriteString("<form method=\"post\" action=\"/admin/logout/\">")
		csrfField(buf, csrfToken)
		buf.WriteString("<button class=\"plain\" type=\"submit\">Log out</button></form>")
	}))
}

// IssueEditor renders the add/edit form for a single issue.
func IssueEditor(site Site, is IssueForm, csrfToken string) templ.Component {
	heading := "Edit Issue"
	if is.Index < 0 {
		heading = "New Issue"
	}
	return templ.ComponentFunc(page(pageTitle(site, heading), func(buf *bytes.Buffer) {
		buf.WriteString("<h1>" + heading + "</h1>\n")
		buf.WriteString("<form method=\"post\" action=\"/admin/save/\">\n")
		csrfField(buf, csrfToken)
		buf.WriteString("<input type=\"hidden\" name=\"index\" value=\"" + strconv.Itoa(is.Index) + "\">\n")
		buf.WriteString("<label>Title <input name=\"title\" value=\"" + html.EscapeString(is.Title) + "\"></label>\n")
		buf.WriteString("<label>PDF <input name=\"pdf\" value=\"" + html.EscapeString(is.PDF) + "\" placeholder=\"issues/2024-06-10-summer.pdf\"></label>\n")
		buf.WriteString("<label>Cover <input name=\"cover\" value=\"" + html.EscapeString(is.Cover) + "\" placeholder=\"covers/summer.jpg\"></label>\n")
		buf.WriteString("<label>Description <textarea name=\"description\" rows=\"3\">" + html.EscapeString(is.Description) + "</textarea></label>\n")
		buf.WriteString("<button type=\"submit\">Save</button> <a href=\"/admin/\">Cancel</a>\n</form>")
	}))
}

// NotFound renders the styled 404 page.
func NotFound(site Site) templ.Component {
	return templ.ComponentFunc(page(pageTitle(site, "Not Found"), func(buf *bytes.Buffer) {
		buf.WriteString("<h1>Page not found</h1>\n<p><a href=\"/\">Back to the latest issues</a></p>")
	}))
}

// ServerError renders the styled 500 page.
func ServerError(site Site) templ.Component {
	return templ.ComponentFunc(page(pageTitle(site, "Server Error"), func(buf *bytes.Buffer) {
		buf.WriteString("<h1>Something went wrong</h1>\n<p>Try again in a moment.</p>")
	}))
}
