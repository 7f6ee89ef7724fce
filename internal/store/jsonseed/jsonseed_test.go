package jsonseed

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/idilsaglam/todolist/internal/model"
)

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "seed.json")
	data := `[{"id":7,"task":"water plants","done":true},{"id":2,"task":"call mum","done":false}]`
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	got, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []model.Item{{ID: 7, Task: "water plants", Done: true}, {ID: 2, Task: "call mum"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrSeedNotFound) {
		t.Fatalf("err = %v, want ErrSeedNotFound", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(p, []byte(`{"id":1}`), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	if _, err := Load(p); err == nil || !strings.Contains(err.Error(), "json unmarshal") {
		t.Fatalf("expected unmarshal error, got %v", err)
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, []model.Item{{ID: 1, Task: "A"}}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"id": 1`, `"task": "A"`, `"done": false`} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q missing %q", out, want)
		}
	}

	buf.Reset()
	if err := Encode(&buf, nil); err != nil {
		t.Fatalf("encode nil: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("nil encodes as %q, want []", buf.String())
	}
}
