package web

import (
	"errors"
	"net/http"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/themeshell/app/mount"
	"github.com/umputun/themeshell/app/shell"
)

// handleIndex renders the page. A request without a known mount id starts a fresh mount.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	id, app, err := h.resolveMount(r.URL.Query().Get("mount"))
	if err != nil {
		log.Printf("[ERROR] failed to mount: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	if err := h.tmpl.ExecuteTemplate(w, "base.html", h.newTemplateData(id, app)); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
	}
}

// resolveMount returns the requested mount if it is live, otherwise creates a new one.
func (h *Handler) resolveMount(id string) (string, *shell.App, error) {
	if id != "" {
		app, err := h.mounts.Get(id)
		if err == nil {
			return id, app, nil
		}
		if !errors.Is(err, mount.ErrNotMounted) {
			return "", nil, err //nolint:wrapcheck // logged by caller
		}
		log.Printf("[DEBUG] mount %s is gone, starting a new one", id)
	}
	newID, app, err := h.mounts.Mount()
	if err != nil {
		return "", nil, err //nolint:wrapcheck // logged by caller
	}
	return newID, app, nil
}

// handleThemeToggle activates the header toggle of a mount once.
// Requests with HX-Request get the re-rendered shell, form posts are redirected back to the page.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("mount")
	app, err := h.mounts.Get(id)
	if err != nil {
		if !errors.Is(err, mount.ErrNotMounted) {
			log.Printf("[ERROR] failed to get mount %s: %v", id, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		log.Printf("[DEBUG] toggle for unknown mount %s", id)
		if isHTMX(r) {
			// the page is stale, reload it to get a new mount
			w.Header().Set("HX-Refresh", "true")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.Redirect(w, r, h.url("/"), http.StatusSeeOther)
		return
	}

	app.Header().Activate()

	if !isHTMX(r) {
		http.Redirect(w, r, h.mountURL(id), http.StatusSeeOther)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	if err := h.tmpl.ExecuteTemplate(w, "app", h.newTemplateData(id, app)); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
	}
}

// handleUnmount drops a mount. Called by clients that know their page is gone, the page itself
// relies on expiration.
func (h *Handler) handleUnmount(w http.ResponseWriter, r *http.Request) {
	h.mounts.Unmount(r.PathValue("mount"))
	w.WriteHeader(http.StatusNoContent)
}
