package lehar

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/mandeepsmagh/lehar-magazine/views"
)

func (a *App) handleHome(c echo.Context) error {
	page := filepath.Join(a.Config.SiteDir, filepath.Base(a.Config.OutputPath))
	if _, err := os.Stat(page); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "no generated page; run `lehar generate` first")
	}
	return c.File(page)
}

func (a *App) handleFeed(c echo.Context) error {
	site, issues, err := a.Cache.ensureLoaded()
	if err != nil {
		return err
	}
	data, err := FeedXML(site, issues)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/rss+xml; charset=utf-8", data)
}

func (a *App) handleSitemap(c echo.Context) error {
	site, issues, err := a.Cache.ensureLoaded()
	if err != nil {
		return err
	}
	data, err := SitemapXML(site, issues)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", data)
}

func (a *App) handleRobots(c echo.Context) error {
	site, err := a.Cache.Site()
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, RobotsTxt(site))
}

// siteView returns the site branding for error and admin pages; a broken
// metadata file must not take those pages down too.
func (a *App) siteView() views.Site {
	site, err := a.Cache.Site()
	if err != nil {
		return views.Site{}
	}
	return views.Site{Name: site.SiteName}
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.siteView()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.siteView()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}
