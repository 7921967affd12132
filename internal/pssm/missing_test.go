package pssm

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestMissingExactDifference(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "O27002.pssm"))
	touch(t, filepath.Join(dir, "P00002.pssm"))

	got, err := Missing([]string{"O27002", "P00001", "P00002", "P00003"}, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"P00001", "P00003"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestMissingEmptyDirReturnsAllIDs(t *testing.T) {
	got, err := Missing([]string{"A", "B"}, t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Fatalf("expected all ids in order, got %v", got)
	}
}

func TestMissingNoIDs(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "O27002.pssm"))
	got, err := Missing(nil, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty set, got %v", got)
	}
}

func TestMissingDirAbsent(t *testing.T) {
	_, err := Missing([]string{"A"}, filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestMissingUsesNameBeforeFirstDot(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "O27002.asn.pssm"))
	got, err := Missing([]string{"O27002"}, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected O27002 to be present, got missing %v", got)
	}
}
