package store

import (
	"context"
	"testing"

	"github.com/puzzlecut/puzzlecut/pkg/errors"
	"github.com/puzzlecut/puzzlecut/pkg/puzzle"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); err != ErrNotFound {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
	if !errors.Is(ErrNotFound, errors.ErrCodeNotFound) {
		t.Errorf("ErrNotFound code = %s", errors.GetCode(ErrNotFound))
	}

	p1 := &puzzle.Puzzle{ID: "b-puzzle", Rows: 2, Cols: 2}
	p2 := &puzzle.Puzzle{ID: "a-puzzle", Rows: 3, Cols: 3}
	for _, p := range []*puzzle.Puzzle{p1, p2} {
		if err := s.Put(ctx, p); err != nil {
			t.Fatalf("Put(%s) error = %v", p.ID, err)
		}
	}

	got, err := s.Get(ctx, "b-puzzle")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Rows != 2 {
		t.Errorf("Get() rows = %d, want 2", got.Rows)
	}

	ids, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(ids) != 2 || ids[0] != "a-puzzle" || ids[1] != "b-puzzle" {
		t.Errorf("List() = %v, want sorted [a-puzzle b-puzzle]", ids)
	}

	// Put with the same ID replaces.
	if err := s.Put(ctx, &puzzle.Puzzle{ID: "b-puzzle", Rows: 5, Cols: 5}); err != nil {
		t.Fatal(err)
	}
	got, _ = s.Get(ctx, "b-puzzle")
	if got.Rows != 5 {
		t.Errorf("replaced puzzle rows = %d, want 5", got.Rows)
	}

	if err := s.Delete(ctx, "b-puzzle"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(ctx, "b-puzzle"); err != ErrNotFound {
		t.Errorf("Get(deleted) error = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "b-puzzle"); err != ErrNotFound {
		t.Errorf("Delete(missing) error = %v, want ErrNotFound", err)
	}
}
