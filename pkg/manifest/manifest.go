// Package manifest loads YAML batch manifests listing the workbooks to
// process together.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is the YAML batch description.
type Manifest struct {
	Workbooks []Workbook `yaml:"workbooks"`
}

// Workbook is a single entry: the file to extract.
type Workbook struct {
	File string `yaml:"file"`
}

// Path returns the absolute workbook path, expanding a leading ~.
func (w *Workbook) Path() (string, error) {
	if strings.HasPrefix(w.File, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, w.File[2:]), nil
	}
	return w.File, nil
}

// Load reads a manifest from a YAML file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if len(m.Workbooks) == 0 {
		return nil, fmt.Errorf("manifest has no workbooks")
	}
	return &m, nil
}

// Paths resolves every workbook path in order.
func (m *Manifest) Paths() ([]string, error) {
	paths := make([]string, 0, len(m.Workbooks))
	for _, w := range m.Workbooks {
		p, err := w.Path()
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// Print writes a human-readable preview of the manifest.
func (m *Manifest) Print() {
	for i, w := range m.Workbooks {
		fmt.Printf("[%d] file=%s\n", i+1, w.File)
	}
}
