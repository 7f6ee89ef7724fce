package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/todolist/internal/store"
)

// Run starts the interactive list on the alternate screen and blocks until
// the user quits. State lives in s and is discarded with the process.
func Run(s *store.TodoStore, logger *zap.Logger, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(New(s, logger), opts...)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
