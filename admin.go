package lehar

import (
	"crypto/subtle"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mandeepsmagh/lehar-magazine/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, views.AdminLogin(a.siteView(), false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return Render(c, views.AdminLogin(a.siteView(), true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminNewIssue(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return Render(c, views.IssueEditor(a.siteView(), views.IssueForm{Index: -1}, CsrfToken(c)))
}

func (a *App) handleAdminIssue(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	meta, err := a.Store.Load()
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(meta.Issues) {
		return c.NoContent(http.StatusNotFound)
	}
	return Render(c, views.IssueEditor(a.siteView(), issueForm(idx, meta.Issues[idx]), CsrfToken(c)))
}

func (a *App) handleAdminSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	idx, err := strconv.Atoi(c.FormValue("index"))
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	is := Issue{
		Title: strings.TrimSpace(c.FormValue("title")),
		PDF:   strings.TrimSpace(c.FormValue("pdf")),
		Cover: strings.TrimSpace(c.FormValue("cover")),
	}
	if is.Title == "" || is.PDF == "" || is.Cover == "" {
		return a.adminRedirect(c, "Title, PDF and cover are all required.")
	}
	// An empty description box means "absent" so the card fallback text
	// keeps applying, rather than rendering an empty paragraph.
	if desc := strings.TrimSpace(c.FormValue("description")); desc != "" {
		is.Description = &desc
	}

	if idx < 0 {
		err = a.Store.AddIssue(is)
	} else {
		err = a.Store.UpdateIssue(idx, is)
	}
	if err != nil {
		return err
	}
	return a.afterMutation(c, "saved")
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	if err := a.Store.DeleteIssue(idx); err != nil {
		return err
	}
	return a.afterMutation(c, "deleted")
}

func (a *App) handleAdminStats(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	days, err := strconv.Atoi(c.QueryParam("days"))
	if err != nil || days <= 0 {
		days = 30
	}
	stats, err := a.analyticsStore.Stats(days)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// afterMutation regenerates the site and lands back on the dashboard.
// A broken rebuild is reported there instead of failing the save, which
// already went through.
func (a *App) afterMutation(c echo.Context, msg string) error {
	a.Cache.Invalidate()
	if _, err := Generate(a.Config); err != nil {
		a.Echo.Logger.Errorf("rebuild after %s: %v", msg, err)
		return a.adminRedirect(c, "Saved, but rebuilding the site failed: "+err.Error())
	}
	return a.adminRedirect(c, msg)
}

func (a *App) adminRedirect(c echo.Context, msg string) error {
	return c.Redirect(http.StatusSeeOther, "/admin/?msg="+url.QueryEscape(msg))
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	meta, err := a.Store.Load()
	if err != nil {
		return err
	}
	// Dashboard lists issues in file order: the index is the identity an
	// edit or delete targets, so the rows must match the document.
	forms := make([]views.IssueForm, 0, len(meta.Issues))
	for i, is := range meta.Issues {
		forms = append(forms, issueForm(i, is))
	}
	site := views.Site{Name: meta.SiteMeta.SiteName}
	return Render(c, views.AdminDashboard(site, forms, msg, CsrfToken(c)))
}

func issueForm(idx int, is Issue) views.IssueForm {
	f := views.IssueForm{
		Index: idx,
		Title: is.Title,
		PDF:   is.PDF,
		Cover: is.Cover,
		Date:  issueDateString(is),
	}
	if is.Description != nil {
		f.Description = *is.Description
	}
	return f
}
