package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest describes one mica package, loaded from mica.yaml in the package
// root.
type Manifest struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	// Src is the source directory relative to the package root.
	Src string `yaml:"src"`
}

// DefaultManifest is used when a directory has no manifest file.
func DefaultManifest(dir string) *Manifest {
	return &Manifest{Name: filepath.Base(dir), Version: "0.1.0", Src: "."}
}

// LoadManifest reads the manifest from dir. A missing file yields the
// default manifest; a malformed file is an error.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultManifest(dir), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ManifestFileName, err)
	}
	if m.Name == "" {
		m.Name = filepath.Base(dir)
	}
	if m.Version == "" {
		m.Version = "0.1.0"
	}
	if m.Src == "" {
		m.Src = "."
	}
	return m, nil
}

// SourceDir returns the absolute source directory of the package.
func (m *Manifest) SourceDir(root string) string {
	return filepath.Join(root, m.Src)
}

// IsSourceFile reports whether path has a recognized source extension.
func IsSourceFile(path string) bool {
	ext := filepath.Ext(path)
	for _, known := range SourceFileExtensions {
		if ext == known {
			return true
		}
	}
	return false
}
