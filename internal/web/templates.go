package web

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/justestif/go-fyyur/internal/db"
	"github.com/justestif/go-fyyur/internal/listings"
)

// Templates manages HTML template rendering.
type Templates struct {
	templates map[string]*template.Template
	funcs     template.FuncMap
}

// NewTemplates creates a new template manager by loading templates from the given filesystem.
func NewTemplates(templatesFS fs.FS) (*Templates, error) {
	t := &Templates{
		templates: make(map[string]*template.Template),
		funcs:     defaultFuncs(),
	}

	if err := t.load(templatesFS); err != nil {
		return nil, err
	}

	return t, nil
}

// Render renders a page template with the given data.
func (t *Templates) Render(w io.Writer, page string, data any) error {
	tmpl, ok := t.templates[page]
	if !ok {
		return fmt.Errorf("template %q not found", page)
	}

	// Execute the "base" template which includes the page content
	return tmpl.ExecuteTemplate(w, "base", data)
}

// Has reports whether a page template was loaded.
func (t *Templates) Has(page string) bool {
	_, ok := t.templates[page]
	return ok
}

// load parses all templates from the filesystem.
func (t *Templates) load(templatesFS fs.FS) error {
	layouts, err := fs.Glob(templatesFS, "layouts/*.html")
	if err != nil {
		return fmt.Errorf("finding layouts: %w", err)
	}

	partials, err := fs.Glob(templatesFS, "partials/*.html")
	if err != nil {
		return fmt.Errorf("finding partials: %w", err)
	}

	pages, err := fs.Glob(templatesFS, "pages/*.html")
	if err != nil {
		return fmt.Errorf("finding pages: %w", err)
	}

	// Common files to include with every page
	commonFiles := append(layouts, partials...)

	for _, page := range pages {
		name := strings.TrimSuffix(path.Base(page), ".html")

		files := append([]string{page}, commonFiles...)

		tmpl, err := template.New(name).Funcs(t.funcs).ParseFS(templatesFS, files...)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}

		t.templates[name] = tmpl
	}

	return nil
}

// Date layouts for the datetime template function.
const (
	fullDateTime   = "Monday January, 2, 2006 at 3:04PM"
	mediumDateTime = "Mon 01, 02, 2006 3:04PM"
)

// formatDateTime renders t in the named format ("full" or "medium").
// Unknown names fall back to medium.
func formatDateTime(format string, t time.Time) string {
	if format == "full" {
		return t.Format(fullDateTime)
	}
	return t.Format(mediumDateTime)
}

// defaultFuncs returns the default template functions.
func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		// datetime is used as a pipeline filter: {{ .StartTime | datetime "full" }}
		"datetime": formatDateTime,
	}
}

// PageData contains common data passed to all page templates.
type PageData struct {
	Title       string
	Flash       *FlashMessage
	CurrentPath string
}

// FlashMessage represents a temporary notification message.
type FlashMessage struct {
	Type    string `json:"type"` // "success", "error"
	Message string `json:"message"`
}

// VenuesPageData lists venues grouped by area.
type VenuesPageData struct {
	PageData
	Areas []listings.Area
}

// ArtistsPageData lists every artist.
type ArtistsPageData struct {
	PageData
	Artists []db.NameMatch
}

// SearchPageData holds the results of a venue or artist search.
type SearchPageData struct {
	PageData
	SearchTerm string
	Results    listings.SearchResult
}

// VenuePageData contains data for the venue detail page.
type VenuePageData struct {
	PageData
	Venue *listings.VenueDetail
}

// ArtistPageData contains data for the artist detail page.
type ArtistPageData struct {
	PageData
	Artist *listings.ArtistDetail
}

// ShowsPageData contains data for the shows page.
type ShowsPageData struct {
	PageData
	Shows []listings.ShowSummary
}

// FormPageData contains data for the venue and artist forms.
type FormPageData struct {
	PageData
	Form    EntityForm
	Choices FormChoices
	Seeking SeekingOption
}

// ShowFormPageData contains data for the show form.
type ShowFormPageData struct {
	PageData
	DefaultStartTime string
}
