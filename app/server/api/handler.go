// Package api provides JSON handlers for inspecting and switching mounted shells.
package api

import (
	"errors"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/themeshell/app/mount"
	"github.com/umputun/themeshell/app/shell"
	"github.com/umputun/themeshell/app/theme"
)

// Mounts defines the interface for the registry of live page mounts.
type Mounts interface {
	Mount() (string, *shell.App, error)
	Get(id string) (*shell.App, error)
}

// Handler handles API requests for /api/* endpoints.
type Handler struct {
	mounts Mounts
}

// New creates a new API handler.
func New(mounts Mounts) *Handler {
	return &Handler{mounts: mounts}
}

// Register registers API routes on the given router.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("POST /mount", h.handleMount)
	r.HandleFunc("GET /mount/{mount}", h.handleGet)
	r.HandleFunc("POST /mount/{mount}/toggle", h.handleToggle)
}

// stateResponse is the JSON view of a mount.
type stateResponse struct {
	Mount string     `json:"mount"`
	Mode  string     `json:"mode"`
	Icon  theme.Icon `json:"icon"`
}

func newStateResponse(id string, app *shell.App) stateResponse {
	hv := app.Header().View()
	return stateResponse{Mount: id, Mode: hv.Mode.String(), Icon: hv.Indicator.Icon}
}

// handleMount creates a new mount in light mode.
// POST /api/mount
func (h *Handler) handleMount(w http.ResponseWriter, r *http.Request) {
	id, app, err := h.mounts.Mount()
	if err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to mount")
		return
	}
	rest.RenderJSON(w, newStateResponse(id, app))
}

// handleGet returns the current mode of a mount.
// GET /api/mount/{mount}
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("mount")
	app, ok := h.lookup(w, r, id)
	if !ok {
		return
	}
	rest.RenderJSON(w, newStateResponse(id, app))
}

// handleToggle flips the mode of a mount once and returns the new state.
// POST /api/mount/{mount}/toggle
func (h *Handler) handleToggle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("mount")
	app, ok := h.lookup(w, r, id)
	if !ok {
		return
	}
	app.Header().Activate()
	rest.RenderJSON(w, newStateResponse(id, app))
}

// lookup finds a mount, writing the error response when it can't.
func (h *Handler) lookup(w http.ResponseWriter, r *http.Request, id string) (*shell.App, bool) {
	app, err := h.mounts.Get(id)
	if err == nil {
		return app, true
	}
	if errors.Is(err, mount.ErrNotMounted) {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusNotFound, err, "mount not found")
		return nil, false
	}
	rest.SendErrorJSON(w, r, log.Default(), http.StatusInternalServerError, err, "failed to get mount")
	return nil, false
}
