package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lanerun/internal/core"
)

// MenuItem is a selectable entry on the title screen.
type MenuItem int

const (
	MenuPlay MenuItem = iota
	MenuQuit
)

// String returns the label shown for the item.
func (i MenuItem) String() string {
	switch i {
	case MenuPlay:
		return "Play"
	case MenuQuit:
		return "Quit"
	default:
		return "?"
	}
}

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f2e9c9")).
			Background(lipgloss.Color("#352e4a")).
			Padding(1, 4)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	itemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
)

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	title    string
	items    []MenuItem
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	quitting bool
	selected bool
}

// NewMenuModel creates a title screen for a game called title.
func NewMenuModel(title string, cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		title:  title,
		items:  []MenuItem{MenuPlay, MenuQuit},
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(m.keys, msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if m.items[m.cursor] == MenuQuit {
			m.quitting = true
		} else {
			m.selected = true
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(bannerStyle.Render(strings.ToUpper(m.title)))
	b.WriteString("\n\n")

	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + item.String()))
		} else {
			b.WriteString(itemStyle.Render("  " + item.String()))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Play reports whether the user chose to start a run.
func (m MenuModel) Play() bool {
	return m.selected && !m.quitting
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// RunMenu shows the title screen and reports whether to play, together with
// the runtime config updated to the final terminal size.
func RunMenu(title string, cfg core.RuntimeConfig) (bool, core.RuntimeConfig, error) {
	p := tea.NewProgram(NewMenuModel(title, cfg), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, cfg, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return false, cfg, nil
	}
	return m.Play(), m.Config(), nil
}
