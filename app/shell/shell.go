// Package shell composes the page components (header, main, footer) around a single
// theme state. Components are plain view models; the web templates and the terminal
// preview render them.
package shell

import (
	"errors"
	"strings"

	"github.com/umputun/themeshell/app/enum"
	"github.com/umputun/themeshell/app/theme"
)

// ErrNoProvider is returned when a stateful component is built without a theme provider.
var ErrNoProvider = errors.New("no theme provider")

// fixed page content
const (
	Title     = "React Grundlagen 6"
	Heading   = "Theme Switcher App"
	Lead      = "Use the button in the header to toggle between light and dark themes."
	Copyright = "© 2024 Theme Switcher App. All rights reserved."
)

// Classes is the style-class reference of a component. Dark entries apply on top of
// Base when the shell is in dark mode.
type Classes struct {
	Base []string
	Dark []string
}

// String renders the class list, prefixing dark entries with "dark:".
func (c Classes) String() string {
	parts := make([]string, 0, len(c.Base)+len(c.Dark))
	parts = append(parts, c.Base...)
	for _, d := range c.Dark {
		parts = append(parts, "dark:"+d)
	}
	return strings.Join(parts, " ")
}

// style-class reference for every rendered element
var (
	AppClasses    = Classes{Base: []string{"min-h-screen", "flex", "flex-col"}}
	HeaderClasses = Classes{
		Base: []string{"bg-gray-200", "p-4", "flex", "justify-between", "items-center"},
		Dark: []string{"bg-gray-800"},
	}
	TitleClasses  = Classes{Base: []string{"text-xl", "font-bold"}}
	ToggleClasses = Classes{
		Base: []string{"p-2", "rounded-full", "bg-gray-300"},
		Dark: []string{"bg-gray-700"},
	}
	MainClasses    = Classes{Base: []string{"flex-grow", "p-4"}}
	HeadingClasses = Classes{Base: []string{"text-2xl"}}
	FooterClasses  = Classes{
		Base: []string{"bg-gray-200", "p-4", "text-center"},
		Dark: []string{"bg-gray-800"},
	}
)

// App is the page shell. It owns the theme state of one mount.
type App struct {
	state *theme.State
}

// NewApp creates a shell with a fresh theme state in light mode.
func NewApp() *App {
	return &App{state: theme.New()}
}

// Theme returns the provider handle shared by the shell's components.
func (a *App) Theme() theme.Switch { return a.state }

// Subscribe registers fn to be called with the new mode after every toggle.
func (a *App) Subscribe(fn func(enum.Mode)) (unsubscribe func()) {
	return a.state.Subscribe(fn)
}

// Header returns the header bound to the shell's theme state.
func (a *App) Header() Header {
	return Header{sw: a.state}
}

// Main returns the static main section.
func (a *App) Main() Main { return Main{} }

// Footer returns the static footer.
func (a *App) Footer() Footer { return Footer{} }

// Page is a snapshot of everything needed to render the shell once.
type Page struct {
	Mode   enum.Mode
	Dark   bool
	Header HeaderView
	Main   Main
	Footer Footer
}

// Page renders a snapshot of the shell for the current mode.
func (a *App) Page() Page {
	hv := a.Header().View()
	return Page{
		Mode:   hv.Mode,
		Dark:   hv.Mode == enum.ModeDark,
		Header: hv,
		Main:   a.Main(),
		Footer: a.Footer(),
	}
}
