package layout

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type fileLayout struct {
	ID   string      `yaml:"id"`
	Rows [][]fileKey `yaml:"rows"`
}

type fileKey struct {
	Main  string   `yaml:"main"`
	Shift string   `yaml:"shift"`
	Alt   string   `yaml:"alt"`
	Width *float64 `yaml:"width"`
}

// Parse decodes a YAML layout document and validates it with Load.
// Keys without a width are one unit wide.
func Parse(data []byte) (*Layout, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc fileLayout
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode layout: %w", err)
	}
	id := strings.TrimSpace(doc.ID)
	if id == "" {
		return nil, fmt.Errorf("layout id is empty")
	}
	rows := make([]Row, len(doc.Rows))
	for y, fr := range doc.Rows {
		row := make(Row, len(fr))
		for x, fk := range fr {
			width := 1.0
			if fk.Width != nil {
				width = *fk.Width
			}
			row[x] = Key{Main: fk.Main, Shift: fk.Shift, Alt: fk.Alt, Width: width}
		}
		rows[y] = row
	}
	return Load(id, rows)
}

// LoadFile reads and parses a single YAML layout file.
func LoadFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// LoadDir registers every *.yaml and *.yml layout in dir. A missing directory is not an error.
func LoadDir(r *Registry, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read layouts directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	loaded := make([]string, 0, len(names))
	for _, name := range names {
		l, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return loaded, err
		}
		if r.IsBuiltin(l.ID()) {
			return loaded, fmt.Errorf("%s: layout %q shadows a built-in layout", name, l.ID())
		}
		if err := r.Register(l); err != nil {
			return loaded, fmt.Errorf("%s: %w", name, err)
		}
		loaded = append(loaded, l.ID())
	}
	return loaded, nil
}
