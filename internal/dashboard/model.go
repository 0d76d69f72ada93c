package dashboard

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

// Model is the root Bubble Tea model for the contact browser.
type Model struct {
	browse browseState
	focus  Focus
	width  int
	height int
	keys   browseKeys
	help   help.Model
}

// NewModel creates a browser Model over entries with left-pane focus.
func NewModel(entries []Entry) Model {
	return Model{
		browse: newBrowseState(entries),
		focus:  PaneLeft,
		keys:   BrowseKeyMap(),
		help:   help.New(),
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes key messages.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tab):
		if m.focus == PaneLeft {
			m.focus = PaneRight
		} else {
			m.focus = PaneLeft
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.browse = m.browse.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.browse = m.browse.move(1)
	case key.Matches(msg, m.keys.Top):
		m.browse = m.browse.jump(true)
	case key.Matches(msg, m.keys.Bottom):
		m.browse = m.browse.jump(false)
	}
	return m, nil
}

// Selected returns the name of the contact under the cursor, or "".
func (m Model) Selected() string {
	e, _ := m.browse.Selected()
	return e.Name
}

// contentHeight returns the usable height for pane content,
// accounting for border chrome and the help bar.
func (m Model) contentHeight() int {
	h := m.height - borderChrome - helpBarHeight
	if m.help.ShowAll {
		h -= len(m.keys.FullHelp()[0]) - 1
	}
	if h < 1 {
		return 1
	}
	return h
}

// View renders the two-pane layout with help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	leftWidth, rightWidth := PaneWidths(m.width)
	contentHeight := m.contentHeight()

	var leftStyle, rightStyle lipgloss.Style
	if m.focus == PaneLeft {
		leftStyle = FocusedBorder()
		rightStyle = UnfocusedBorder()
	} else {
		leftStyle = UnfocusedBorder()
		rightStyle = FocusedBorder()
	}

	leftStyle = leftStyle.
		Width(max(leftWidth-borderChrome, 0)).
		Height(contentHeight)
	rightStyle = rightStyle.
		Width(max(rightWidth-borderChrome, 0)).
		Height(contentHeight)

	leftPane := leftStyle.Render(m.browse.View())
	rightPane := rightStyle.Render(m.viewRight())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
	helpView := m.help.View(HelpBindings())

	return lipgloss.JoinVertical(lipgloss.Left, panes, helpView)
}

// viewRight renders the detail of the selected contact.
func (m Model) viewRight() string {
	e, ok := m.browse.Selected()
	if !ok {
		return mutedText.Render("Nothing selected")
	}
	return detailView(e)
}

// Run starts the browser on the given terminal streams and blocks until the
// user quits or ctx is cancelled.
func Run(ctx context.Context, entries []Entry, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(NewModel(entries),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
