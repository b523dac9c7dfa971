package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-pkgz/routegroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/themeshell/app/mount"
	"github.com/umputun/themeshell/app/shell"
	"github.com/umputun/themeshell/app/theme"
)

func TestHandler_Lifecycle(t *testing.T) {
	router := newTestRouter(t, newTestRegistry(t))

	rec := do(t, router, http.MethodPost, "/api/mount")
	require.Equal(t, http.StatusOK, rec.Code)
	st := decode(t, rec)
	require.NotEmpty(t, st.Mount)
	assert.Equal(t, "light", st.Mode)
	assert.Equal(t, theme.IconSun, st.Icon)

	rec = do(t, router, http.MethodPost, "/api/mount/"+st.Mount+"/toggle")
	require.Equal(t, http.StatusOK, rec.Code)
	toggled := decode(t, rec)
	assert.Equal(t, "dark", toggled.Mode)
	assert.Equal(t, theme.IconMoon, toggled.Icon)

	rec = do(t, router, http.MethodGet, "/api/mount/"+st.Mount)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dark", decode(t, rec).Mode)

	rec = do(t, router, http.MethodPost, "/api/mount/"+st.Mount+"/toggle")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "light", decode(t, rec).Mode)
	assert.Equal(t, theme.IconSun, decode(t, rec).Icon)
}

func TestHandler_UnknownMount(t *testing.T) {
	router := newTestRouter(t, newTestRegistry(t))

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/mount/nope"},
		{http.MethodPost, "/api/mount/nope/toggle"},
	} {
		t.Run(tc.method, func(t *testing.T) {
			rec := do(t, router, tc.method, tc.path)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Contains(t, rec.Body.String(), "mount not found")
		})
	}
}

func TestHandler_RegistryErrors(t *testing.T) {
	router := newTestRouter(t, failingMounts{})

	rec := do(t, router, http.MethodPost, "/api/mount")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to mount")

	rec = do(t, router, http.MethodGet, "/api/mount/x")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to get mount")
}

type failingMounts struct{}

func (failingMounts) Mount() (string, *shell.App, error) { return "", nil, assert.AnError }
func (failingMounts) Get(string) (*shell.App, error)     { return nil, assert.AnError }

func newTestRegistry(t *testing.T) *mount.Registry {
	t.Helper()
	r, err := mount.NewRegistry(mount.Config{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func newTestRouter(t *testing.T, mounts Mounts) http.Handler {
	t.Helper()
	router := routegroup.New(http.NewServeMux())
	router.Mount("/api").Route(func(b *routegroup.Bundle) {
		New(mounts).Register(b)
	})
	return router
}

func do(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, http.NoBody)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) stateResponse {
	t.Helper()
	var st stateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	return st
}
