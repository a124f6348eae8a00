package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"skyline-samplegen/internal/sampleconfig"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "samples.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	cfg := &sampleconfig.SampleConfig{
		APIName:    "maps",
		APIVersion: "v1",
		Methods: map[string]*sampleconfig.MethodInfo{
			"maps.directions.get": {NameComponents: []string{"directions", "get"}},
		},
	}

	if _, err := s.Save(ctx, cfg, "json", []byte(`{"first":true}`)); err != nil {
		t.Fatalf("save first: %v", err)
	}
	id, err := s.Save(ctx, cfg, "yaml", []byte("second: true\n"))
	if err != nil {
		t.Fatalf("save second: %v", err)
	}

	rec, err := s.Latest(ctx, "maps", "v1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if rec.ID != id {
		t.Fatalf("expected latest id %d, got %d", id, rec.ID)
	}
	if rec.Format != "yaml" || string(rec.Body) != "second: true\n" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.Methods != 1 {
		t.Fatalf("expected 1 method, got %d", rec.Methods)
	}
}

func TestLatestNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Latest(context.Background(), "maps", "v2")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
