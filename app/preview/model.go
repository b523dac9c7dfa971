// Package preview renders the page shell in the terminal.
package preview

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/umputun/themeshell/app/shell"
)

const defaultWidth = 72

// Model is the bubbletea model of the terminal preview.
type Model struct {
	app      *shell.App
	width    int
	quitting bool
}

// NewModel creates a preview model over the given shell.
func NewModel(app *shell.App) Model {
	return Model{app: app, width: defaultWidth}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles key presses and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "t", " ", "space", "enter":
			m.app.Header().Activate()
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
	}
	return m, nil
}

// View renders the shell for the current mode.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	page := m.app.Page()
	st := newStyles(page.Mode, page.Header.Indicator, m.width)

	title := st.title.Render(page.Header.Title)
	toggle := st.toggle.Render(page.Header.Indicator.Glyph)
	gap := m.width - 4 - lipgloss.Width(title) - lipgloss.Width(toggle) // 4 is the header padding
	if gap < 1 {
		gap = 1
	}
	header := st.header.Render(lipgloss.JoinHorizontal(lipgloss.Center,
		title, st.title.Render(fmt.Sprintf("%*s", gap, "")), toggle))

	main := st.main.Render(lipgloss.JoinVertical(lipgloss.Left,
		st.heading.Render(page.Main.Heading()), st.text.Render(page.Main.Text())))

	footer := st.footer.Render(page.Footer.Text())
	help := st.help.Render("t/space: switch theme • q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, main, footer, help) + "\n"
}

// Run starts the interactive preview and blocks until the user quits or ctx is canceled.
func Run(ctx context.Context, app *shell.App, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(NewModel(app), tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("preview failed: %w", err)
	}
	return nil
}
