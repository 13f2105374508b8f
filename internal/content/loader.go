package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDir reads every chapter payload YAML file in dir, in filename order.
// Non-YAML files are ignored. The payloads are returned unvalidated;
// callers run each through Normalize before writing.
func LoadDir(dir string) ([]ChapterPayload, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".yaml") || strings.HasSuffix(e.Name(), ".yml") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	payloads := make([]ChapterPayload, 0, len(names))
	for _, name := range names {
		p, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		payloads = append(payloads, p)
	}
	return payloads, nil
}

// LoadFile reads a single chapter payload YAML file.
func LoadFile(path string) (ChapterPayload, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ChapterPayload{}, fmt.Errorf("read chapter file %s: %w", path, err)
	}

	var p ChapterPayload
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return ChapterPayload{}, fmt.Errorf("parse chapter file %s: %w", path, err)
	}
	return p, nil
}
