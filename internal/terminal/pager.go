package terminal

import (
	"fmt"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Pager is a bubbletea model that scrolls pre-rendered content
type Pager struct {
	viewport viewport.Model
	title    string
	styles   Styles
	ready    bool // set once the terminal size is known
}

// NewPager creates a pager for content
func NewPager(title, content string, styles Styles) Pager {
	vp := viewport.New(viewport.WithWidth(CardWidth), viewport.WithHeight(20))
	vp.SetContent(content)
	return Pager{viewport: vp, title: title, styles: styles}
}

// Run shows the pager full screen until the user quits
func (m Pager) Run() error {
	_, err := tea.NewProgram(m).Run()
	return err
}

// Init implements tea.Model
func (m Pager) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Pager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		// Reserve two lines for the header and one for the footer
		m.viewport.SetWidth(msg.Width)
		m.viewport.SetHeight(max(msg.Height-3, 1))
		m.ready = true
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Pager) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Pager) render() string {
	// Wait for terminal size to be initialized
	if !m.ready {
		return "Loading..."
	}

	header := m.styles.Title.Render(m.title)
	footer := m.styles.Subtle.Render(fmt.Sprintf("%3.f%%  q to quit", m.viewport.ScrollPercent()*100))
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.viewport.View(), footer)
}
