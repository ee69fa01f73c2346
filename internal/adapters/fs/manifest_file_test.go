package fs

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/bft-labs/barcodegen/internal/domain"
)

func TestManifestFile_SaveLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	store := NewManifestFile(dir)
	ctx := context.Background()

	want := domain.Manifest{
		RunID:            "0b8f2d2e-9c55-4a53-8d0e-3f1c6f0e5b11",
		StartedAt:        time.Date(2024, 10, 19, 14, 32, 0, 0, time.UTC),
		State:            "QuotaMet",
		Complete:         true,
		Quota:            2,
		Attempts:         3,
		Accepted:         2,
		Failed:           1,
		Seed:             42,
		ReverseTransform: "trim",
		Digest:           "abc",
		Outputs:          []string{"idt.csv"},
	}

	path, err := store.Save(ctx, want)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if path != filepath.Join(dir, ManifestFileName) {
		t.Errorf("path = %s", path)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestManifestFile_LoadMissing(t *testing.T) {
	if _, err := NewManifestFile(t.TempDir()).Load(context.Background()); !os.IsNotExist(err) {
		t.Errorf("err = %v, want not exist", err)
	}
}
