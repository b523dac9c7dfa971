// Package web provides HTTP handlers for the page shell.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"

	"github.com/go-pkgz/routegroup"

	"github.com/umputun/themeshell/app/shell"
)

//go:generate moq -out mocks/mounts.go -pkg mocks -skip-ensure -fmt goimports . Mounts

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// Mounts defines the interface for the registry of live page mounts.
type Mounts interface {
	Mount() (string, *shell.App, error)
	Get(id string) (*shell.App, error)
	Unmount(id string)
}

// Config holds web handler configuration.
type Config struct {
	BaseURL string
}

// Handler handles web UI requests.
type Handler struct {
	mounts  Mounts
	tmpl    *template.Template
	baseURL string
}

// New creates a new web handler.
func New(mounts Mounts, cfg Config) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Handler{
		mounts:  mounts,
		tmpl:    tmpl,
		baseURL: cfg.BaseURL,
	}, nil
}

// Register registers web UI routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("POST /web/theme/{mount}", h.handleThemeToggle)
	r.HandleFunc("DELETE /web/mount/{mount}", h.handleUnmount)
}

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"pathEscape": url.PathEscape,
	}
}

// parseTemplates parses all templates from embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl := template.New("").Funcs(templateFuncs())

	// parse base template
	baseContent, err := templatesFS.ReadFile("templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("read base.html: %w", err)
	}
	tmpl, err = tmpl.New("base.html").Parse(string(baseContent))
	if err != nil {
		return nil, fmt.Errorf("parse base.html: %w", err)
	}

	// parse partials
	partials := []string{"app", "header", "main", "footer", "icon"}
	for _, name := range partials {
		content, readErr := templatesFS.ReadFile("templates/partials/" + name + ".html")
		if readErr != nil {
			return nil, fmt.Errorf("read partial %s: %w", name, readErr)
		}
		_, parseErr := tmpl.New(name).Parse(string(content))
		if parseErr != nil {
			return nil, fmt.Errorf("parse partial %s: %w", name, parseErr)
		}
	}

	return tmpl, nil
}

// templateData holds data passed to templates.
type templateData struct {
	MountID string
	BaseURL string
	Page    shell.Page

	// style-class reference
	AppClass     string
	HeaderClass  string
	TitleClass   string
	ToggleClass  string
	MainClass    string
	HeadingClass string
	FooterClass  string
}

// newTemplateData builds template data for a mount.
func (h *Handler) newTemplateData(id string, app *shell.App) templateData {
	return templateData{
		MountID:      id,
		BaseURL:      h.baseURL,
		Page:         app.Page(),
		AppClass:     shell.AppClasses.String(),
		HeaderClass:  shell.HeaderClasses.String(),
		TitleClass:   shell.TitleClasses.String(),
		ToggleClass:  shell.ToggleClasses.String(),
		MainClass:    shell.MainClasses.String(),
		HeadingClass: shell.HeadingClasses.String(),
		FooterClass:  shell.FooterClasses.String(),
	}
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}

// mountURL returns the page URL of an existing mount.
func (h *Handler) mountURL(id string) string {
	return h.url("/?mount=" + url.QueryEscape(id))
}

// isHTMX reports whether the request was issued by htmx.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
