package jsonseed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/idilsaglam/todolist/internal/model"
)

// Read-only JSON seeds. A session may start from a file instead of the
// built-in items; nothing is ever written back.

var ErrSeedNotFound = errors.New("seed file not found")

func Load(path string) ([]model.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrSeedNotFound)
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return items, nil
}

// Encode writes items as indented JSON, used by `ls --json`.
func Encode(w io.Writer, items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(b)); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
