package store

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/idilsaglam/todolist/internal/model"
)

// TodoStore owns the todo collection and is its only mutation surface.
// It holds no lock: a single goroutine (the Bubble Tea loop or the CLI)
// owns each store.
type TodoStore struct {
	items  []model.Item
	logger *zap.Logger
}

type Option func(*TodoStore)

// WithLogger attaches a logger; mutations are logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(s *TodoStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// New builds a store seeded with a copy of seed.
func New(seed []model.Item, opts ...Option) (*TodoStore, error) {
	s := &TodoStore{
		items:  make([]model.Item, 0, len(seed)),
		logger: zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}

	seen := make(map[int]struct{}, len(seed))
	for _, it := range seed {
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("seed id %d: %w", it.ID, ErrDuplicateID)
		}
		if strings.TrimSpace(it.Task) == "" {
			return nil, fmt.Errorf("seed id %d: %w", it.ID, ErrEmptyTask)
		}
		seen[it.ID] = struct{}{}
		s.items = append(s.items, it)
	}
	return s, nil
}

// Add appends a new pending item and returns it.
// The task is trimmed; blank text is rejected with ErrEmptyTask and the
// collection is left untouched.
func (s *TodoStore) Add(task string) (model.Item, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return model.Item{}, ErrEmptyTask
	}
	it := model.Item{ID: s.nextID(), Task: task}
	s.items = append(s.items, it)
	s.logger.Debug("item added", zap.Int("id", it.ID), zap.String("task", it.Task))
	return it, nil
}

// Toggle flips Done on the item with the given id. Unknown ids are ignored.
func (s *TodoStore) Toggle(id int) {
	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("toggle: no such item", zap.Int("id", id))
		return
	}
	s.items[i].Done = !s.items[i].Done
	s.logger.Debug("item toggled", zap.Int("id", id), zap.Bool("done", s.items[i].Done))
}

// Delete removes the item with the given id. Unknown ids are ignored.
func (s *TodoStore) Delete(id int) {
	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("delete: no such item", zap.Int("id", id))
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.logger.Debug("item deleted", zap.Int("id", id))
}

// Snapshot returns a copy of the collection in insertion order.
func (s *TodoStore) Snapshot() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// CompletionCount reports how many items are done out of the total.
func (s *TodoStore) CompletionCount() (completed, total int) {
	for _, it := range s.items {
		if it.Done {
			completed++
		}
	}
	return completed, len(s.items)
}

func (s *TodoStore) Len() int { return len(s.items) }

func (s *TodoStore) Get(id int) (model.Item, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Item{}, false
	}
	return s.items[i], true
}

// nextID is max(existing ids)+1, or 1 for an empty collection.
func (s *TodoStore) nextID() int {
	highest := 0
	for _, it := range s.items {
		if it.ID > highest {
			highest = it.ID
		}
	}
	return highest + 1
}

func (s *TodoStore) indexOf(id int) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
