package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/ui"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the Bubble Tea model for the interactive todo list.
// It renders from the store's snapshot and never keeps its own copy of
// item state beyond the list rows rebuilt after each mutation.
type Model struct {
	store  *store.TodoStore
	logger *zap.Logger
	keys   keyMap

	list list.Model

	// Add surface
	adding bool
	input  textinput.Model
	addErr string

	width, height int
}

// New builds the model around s. A nil logger disables logging.
func New(s *store.TodoStore, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	keys := newKeyMap()

	l := list.New(toListItems(s.Snapshot()), itemDelegate{}, defaultWidth, defaultHeight)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("tâche", "tâches")
	l.AdditionalShortHelpKeys = keys.listKeys
	l.AdditionalFullHelpKeys = keys.listKeys

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ajouter une nouvelle tâche"

	m := Model{
		store:  s,
		logger: logger,
		keys:   keys,
		list:   l,
		input:  ti,
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.refreshTitle()
	m.resize()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case list.FilterMatchesMsg:
		// Rows rebuilt under an applied filter only become visible here,
		// so the cursor can only be clamped once the matches arrive.
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		m.resize()
		m.clampCursor()
		return m, cmd
	}
	if m.adding {
		return m.updateAdding(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	// While the filter prompt is open every key belongs to it.
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(km, m.keys.Toggle):
		if id, ok := m.selectedID(); ok {
			m.store.Toggle(id)
			return m, m.refresh()
		}
		return m, nil

	case key.Matches(km, m.keys.Delete):
		if id, ok := m.selectedID(); ok {
			m.store.Delete(id)
			return m, m.refresh()
		}
		return m, nil

	case key.Matches(km, m.keys.Add):
		m.adding = true
		m.addErr = ""
		m.input.SetValue("")
		m.resize()
		return m, m.input.Focus()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.keys.ForceQuit):
			return m, tea.Quit

		case key.Matches(km, m.keys.Submit):
			it, err := m.store.Add(m.input.Value())
			if errors.Is(err, store.ErrEmptyTask) {
				m.addErr = "la tâche ne peut pas être vide"
				return m, nil
			} else if err != nil {
				m.addErr = err.Error()
				return m, nil
			}
			m.logger.Info("task added from form", zap.Int("id", it.ID))
			m.closeAdd()
			cmd := m.refresh()
			if m.list.FilterState() == list.Unfiltered {
				m.list.Select(len(m.list.Items()) - 1)
			}
			return m, cmd

		case key.Matches(km, m.keys.Cancel):
			m.closeAdd()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeAdd() {
	m.adding = false
	m.addErr = ""
	m.input.SetValue("")
	m.input.Blur()
	m.resize()
}

func (m Model) selectedID() (int, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return 0, false
	}
	return it.ID, true
}

// refresh rebuilds the list rows from the store and clamps the cursor.
// With a filter applied the visible rows are recomputed asynchronously;
// the returned command delivers them back to Update.
func (m *Model) refresh() tea.Cmd {
	cmd := m.list.SetItems(toListItems(m.store.Snapshot()))
	m.clampCursor()
	m.refreshTitle()
	return cmd
}

func (m *Model) clampCursor() {
	if n := len(m.list.VisibleItems()); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
}

// refreshTitle puts live counts in the list header.
func (m *Model) refreshTitle() {
	done, total := m.store.CompletionCount()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todo List"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), total-done,
		accentStyle.Render("Total"), total,
	)
}

func (m *Model) resize() {
	// frame border+padding, status line, optional add box
	reserved := 4
	if m.adding {
		reserved += 4
	}
	h := m.height - reserved
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.width-4, h)
}

func (m Model) View() string {
	content := m.list.View()

	if m.adding {
		title := "Nouvelle tâche"
		if m.addErr != "" {
			title += ": " + errorStyle.Render(m.addErr)
		}
		content += "\n" + frameStyle.Render(title+"\n"+m.input.View())
	}

	done, total := m.store.CompletionCount()
	status := mutedStyle.Render(ui.StatusLine(done, total)) + "  " + ui.ProgressBar(done, total, 20)
	content += "\n" + status

	return frameStyle.Render(content)
}
