package web

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/themeshell/app/mount"
	"github.com/umputun/themeshell/app/server/web/mocks"
	"github.com/umputun/themeshell/app/shell"
)

func TestStaticFS(t *testing.T) {
	sfs, err := StaticFS()
	require.NoError(t, err)
	data, err := fs.ReadFile(sfs, "style.css")
	require.NoError(t, err)
	assert.Contains(t, string(data), `.dark .dark\:bg-gray-800`)
}

func TestParseTemplates(t *testing.T) {
	tmpl, err := parseTemplates()
	require.NoError(t, err)
	for _, name := range []string{"base.html", "app", "header", "main", "footer", "icon"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestHandler_URL(t *testing.T) {
	tests := []struct {
		baseURL  string
		path     string
		expected string
	}{
		{baseURL: "", path: "/", expected: "/"},
		{baseURL: "/shell", path: "/", expected: "/shell/"},
		{baseURL: "/a/b", path: "/web/theme/x", expected: "/a/b/web/theme/x"},
	}
	for _, tc := range tests {
		t.Run(tc.baseURL+tc.path, func(t *testing.T) {
			h := newTestHandlerWithBaseURL(t, newFakeMounts(), tc.baseURL)
			assert.Equal(t, tc.expected, h.url(tc.path))
		})
	}
}

func TestHandler_MountURL(t *testing.T) {
	h := newTestHandlerWithBaseURL(t, newFakeMounts(), "/shell")
	assert.Equal(t, "/shell/?mount=a+b", h.mountURL("a b"))
}

func TestHandler_TemplateData(t *testing.T) {
	h := newTestHandler(t, newFakeMounts())
	app := shell.NewApp()
	data := h.newTemplateData("id1", app)
	assert.Equal(t, "id1", data.MountID)
	assert.False(t, data.Page.Dark)
	assert.Equal(t, shell.HeaderClasses.String(), data.HeaderClass)
	assert.Equal(t, shell.FooterClasses.String(), data.FooterClass)

	app.Header().Activate()
	assert.True(t, h.newTemplateData("id1", app).Page.Dark)
}

// fakeMounts wires a MountsMock to an in-memory set of shells.
type fakeMounts struct {
	*mocks.MountsMock
	apps map[string]*shell.App
	seq  int
}

func newFakeMounts() *fakeMounts {
	f := &fakeMounts{apps: map[string]*shell.App{}}
	f.MountsMock = &mocks.MountsMock{
		MountFunc: func() (string, *shell.App, error) {
			f.seq++
			id := "mount-" + string(rune('0'+f.seq))
			f.apps[id] = shell.NewApp()
			return id, f.apps[id], nil
		},
		GetFunc: func(id string) (*shell.App, error) {
			app, ok := f.apps[id]
			if !ok {
				return nil, mount.ErrNotMounted
			}
			return app, nil
		},
		UnmountFunc: func(id string) { delete(f.apps, id) },
	}
	return f
}

func newTestHandler(t *testing.T, mounts Mounts) *Handler {
	t.Helper()
	return newTestHandlerWithBaseURL(t, mounts, "")
}

// newTestHandlerWithBaseURL creates a test handler with a specific base URL.
func newTestHandlerWithBaseURL(t *testing.T, mounts Mounts, baseURL string) *Handler {
	t.Helper()
	h, err := New(mounts, Config{BaseURL: baseURL})
	require.NoError(t, err)
	return h
}
