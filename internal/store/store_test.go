package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/idilsaglam/todolist/internal/model"
)

func mustNew(t *testing.T, seed []model.Item) *TodoStore {
	t.Helper()
	s, err := New(seed)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestScenario_AddToggleDelete(t *testing.T) {
	s := mustNew(t, []model.Item{
		{ID: 1, Task: "A"},
		{ID: 2, Task: "B"},
		{ID: 3, Task: "C", Done: true},
	})

	got, err := s.Add("D")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if want := (model.Item{ID: 4, Task: "D"}); got != want {
		t.Fatalf("added %+v, want %+v", got, want)
	}

	s.Toggle(2)
	if it, _ := s.Get(2); !it.Done {
		t.Fatalf("expected item 2 done")
	}

	s.Delete(1)
	want := []model.Item{
		{ID: 2, Task: "B", Done: true},
		{ID: 3, Task: "C", Done: true},
		{ID: 4, Task: "D"},
	}
	if snap := s.Snapshot(); !reflect.DeepEqual(snap, want) {
		t.Fatalf("snapshot = %+v, want %+v", snap, want)
	}

	done, total := s.CompletionCount()
	if done != 2 || total != 3 {
		t.Fatalf("completion = (%d, %d), want (2, 3)", done, total)
	}
}

func TestAdd_IDsStrictlyIncreasing(t *testing.T) {
	s := mustNew(t, model.Seed())
	last := 5
	for _, task := range []string{"x", "y", "z", "w"} {
		it, err := s.Add(task)
		if err != nil {
			t.Fatalf("add %q: %v", task, err)
		}
		if it.ID <= last {
			t.Fatalf("id %d not greater than %d", it.ID, last)
		}
		last = it.ID
	}

	seen := map[int]bool{}
	for _, it := range s.Snapshot() {
		if seen[it.ID] {
			t.Fatalf("duplicate id %d", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestAdd_UsesMaxNotLast(t *testing.T) {
	s := mustNew(t, []model.Item{{ID: 9, Task: "a"}, {ID: 3, Task: "b"}})
	it, err := s.Add("c")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if it.ID != 10 {
		t.Fatalf("id = %d, want 10", it.ID)
	}

	// Deleting the max id lets it be reused: ids only need to exceed the
	// ones still present.
	s.Delete(10)
	s.Delete(9)
	it, _ = s.Add("d")
	if it.ID != 4 {
		t.Fatalf("id = %d, want 4", it.ID)
	}
}

func TestAdd_EmptyCollectionStartsAtOne(t *testing.T) {
	s := mustNew(t, nil)
	it, err := s.Add("first")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if it.ID != 1 {
		t.Fatalf("id = %d, want 1", it.ID)
	}

	s.Delete(1)
	it, _ = s.Add("again")
	if it.ID != 1 {
		t.Fatalf("id after emptying = %d, want 1", it.ID)
	}
}

func TestAdd_TrimsAndRejectsBlank(t *testing.T) {
	s := mustNew(t, model.Seed())
	before := s.Snapshot()

	for _, in := range []string{"", "   ", "\t\n"} {
		if _, err := s.Add(in); !errors.Is(err, ErrEmptyTask) {
			t.Fatalf("add(%q) err = %v, want ErrEmptyTask", in, err)
		}
	}
	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Fatalf("blank add changed the collection")
	}

	it, err := s.Add("  buy milk  ")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if it.Task != "buy milk" || it.Done {
		t.Fatalf("got %+v", it)
	}
}

func TestToggle_TwiceRestores(t *testing.T) {
	s := mustNew(t, model.Seed())
	for _, it := range model.Seed() {
		s.Toggle(it.ID)
		s.Toggle(it.ID)
	}
	if !reflect.DeepEqual(s.Snapshot(), model.Seed()) {
		t.Fatalf("double toggle did not restore state")
	}
}

func TestUnknownID_NoOp(t *testing.T) {
	s := mustNew(t, model.Seed())
	before := s.Snapshot()

	s.Toggle(42)
	s.Delete(42)
	s.Delete(-1)

	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Fatalf("unknown id changed the collection")
	}
}

func TestDelete_RemovesExactlyOnePreservingOrder(t *testing.T) {
	s := mustNew(t, model.Seed())
	s.Delete(3)

	snap := s.Snapshot()
	if len(snap) != 4 {
		t.Fatalf("len = %d, want 4", len(snap))
	}
	wantIDs := []int{1, 2, 4, 5}
	for i, it := range snap {
		if it.ID != wantIDs[i] {
			t.Fatalf("order = %+v, want ids %v", snap, wantIDs)
		}
	}
}

func TestCompletionCount_MatchesSnapshot(t *testing.T) {
	s := mustNew(t, model.Seed())
	steps := []func(){
		func() { s.Toggle(1) },
		func() { s.Delete(3) },
		func() { _, _ = s.Add("new") },
		func() { s.Toggle(6) },
		func() { s.Delete(1) },
	}
	for i, step := range steps {
		step()
		done, total := s.CompletionCount()
		if total != len(s.Snapshot()) {
			t.Fatalf("step %d: total %d != len %d", i, total, len(s.Snapshot()))
		}
		if done > total {
			t.Fatalf("step %d: done %d > total %d", i, done, total)
		}
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	s := mustNew(t, model.Seed())
	snap := s.Snapshot()
	snap[0].Done = true
	snap[0].Task = "mutated"

	it, _ := s.Get(1)
	if it.Done || it.Task != "faire  A" {
		t.Fatalf("snapshot aliases store: %+v", it)
	}
}

func TestNew_RejectsBadSeed(t *testing.T) {
	cases := []struct {
		name string
		seed []model.Item
		want error
	}{
		{"duplicate", []model.Item{{ID: 1, Task: "a"}, {ID: 1, Task: "b"}}, ErrDuplicateID},
		{"blank", []model.Item{{ID: 1, Task: " "}}, ErrEmptyTask},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.seed); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNew_CopiesSeed(t *testing.T) {
	seed := model.Seed()
	s := mustNew(t, seed)
	seed[0].Done = true
	if it, _ := s.Get(1); it.Done {
		t.Fatalf("store aliases seed slice")
	}
}
