package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/bft-labs/barcodegen/internal/domain"
	"github.com/bft-labs/barcodegen/internal/ports"
)

// ManifestFileName is the name of the run manifest inside the output directory.
const ManifestFileName = "run.json"

// ManifestFile implements ports.ManifestStore using a JSON file.
type ManifestFile struct {
	dir string
}

// NewManifestFile creates a ManifestFile for the given directory.
func NewManifestFile(dir string) *ManifestFile {
	return &ManifestFile{dir: dir}
}

// Load reads a previously saved manifest.
func (m *ManifestFile) Load(ctx context.Context) (domain.Manifest, error) {
	data, err := os.ReadFile(m.Path())
	if err != nil {
		return domain.Manifest{}, err
	}
	var manifest domain.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return domain.Manifest{}, err
	}
	return manifest, nil
}

// Save persists the manifest atomically (write to temp file, then rename).
func (m *ManifestFile) Save(ctx context.Context, manifest domain.Manifest) (string, error) {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return "", err
	}

	path := m.Path()
	tmp := path + ".tmp"

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", err
	}
	return path, nil
}

// Path returns the full path to the manifest file.
func (m *ManifestFile) Path() string {
	return filepath.Join(m.dir, ManifestFileName)
}

var _ ports.ManifestStore = (*ManifestFile)(nil)
