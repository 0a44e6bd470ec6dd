package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/emaildiff/internal/models"
	"github.com/desertthunder/emaildiff/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ListView ViewState = iota
	SummaryView
)

// Model represents the TUI application state.
type Model struct {
	view   ViewState
	result *tasks.Result
	lists  []list.Model
	active int
	width  int
	height int
	help   help.Model
	keys   keyMap
}

// NewModel creates a browser over the three listings of result.
func NewModel(result *tasks.Result) *Model {
	lists := make([]list.Model, len(models.Categories))
	for i, cat := range models.Categories {
		lists[i] = newEntryList(cat, result.Comparison.Entries(cat))
	}

	return &Model{
		view:   ListView,
		result: result,
		lists:  lists,
		help:   help.New(),
		keys:   newKeyMap(),
	}
}

// Run starts the browser in the alternate screen and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, result *tasks.Result) error {
	p := tea.NewProgram(NewModel(result), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}

// Init satisfies [tea.Model]; the browser needs no startup command.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for i := range m.lists {
			m.lists[i].SetSize(msg.Width-4, msg.Height-6)
		}
		return m, nil

	case tea.KeyMsg:
		if m.lists[m.active].FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.summary):
			if m.view == SummaryView {
				m.view = ListView
			} else {
				m.view = SummaryView
			}
			return m, nil
		case m.view == SummaryView:
			return m, nil
		case key.Matches(msg, m.keys.next):
			m.active = (m.active + 1) % len(m.lists)
			return m, nil
		case key.Matches(msg, m.keys.prev):
			m.active = (m.active + len(m.lists) - 1) % len(m.lists)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.lists[m.active], cmd = m.lists[m.active].Update(msg)
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case SummaryView:
		return m.renderSummary()
	default:
		return m.renderList()
	}
}

// Active returns the category of the listing currently shown.
func (m *Model) Active() models.Category {
	return models.Categories[m.active]
}

func (m *Model) renderTabs() string {
	tabs := make([]string, len(models.Categories))
	for i, cat := range models.Categories {
		label := fmt.Sprintf("%s (%d)", cat, len(m.result.Comparison.Emails(cat)))
		if i == m.active {
			tabs[i] = styles.active.Render(label)
		} else {
			tabs[i] = styles.tab.Render(label)
		}
	}
	return strings.Join(tabs, " ")
}

func (m *Model) renderList() string {
	helpView := m.help.ShortHelpView(m.keys.ShortHelp())
	return fmt.Sprintf("%s\n\n%s\n\n%s", m.renderTabs(), m.lists[m.active].View(), helpView)
}

func (m *Model) renderSummary() string {
	title := styles.title.Render("Email Comparison Summary")
	files := fmt.Sprintf("Old: %s\nNew: %s\n", m.result.Old.Path, m.result.New.Path)
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.summary, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n%s\n\n%s", title, files, SummaryTable(m.result.Comparison.Summary()), helpView)
}
