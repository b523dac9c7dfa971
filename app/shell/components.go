package shell

import (
	"github.com/umputun/themeshell/app/enum"
	"github.com/umputun/themeshell/app/theme"
)

// Header shows the title and the toggle control.
type Header struct {
	sw theme.Switch
}

// NewHeader binds a header to a theme provider.
func NewHeader(sw theme.Switch) (Header, error) {
	if sw == nil {
		return Header{}, ErrNoProvider
	}
	return Header{sw: sw}, nil
}

// HeaderView is the rendered state of the header.
type HeaderView struct {
	Title     string
	Mode      enum.Mode
	Indicator theme.Indicator
}

// View returns the header for the current mode.
func (h Header) View() HeaderView {
	m := h.sw.Mode()
	return HeaderView{Title: Title, Mode: m, Indicator: theme.IndicatorFor(m)}
}

// Activate handles one activation of the toggle control.
func (h Header) Activate() {
	h.sw.Toggle()
}

// Main is the static informational section.
type Main struct{}

// Heading returns the section heading.
func (Main) Heading() string { return Heading }

// Text returns the explanatory line under the heading.
func (Main) Text() string { return Lead }

// Lines returns both lines in display order.
func (m Main) Lines() []string { return []string{m.Heading(), m.Text()} }

// Footer is the static copyright line.
type Footer struct{}

// Text returns the copyright line.
func (Footer) Text() string { return Copyright }
