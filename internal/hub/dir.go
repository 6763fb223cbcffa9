package hub

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// FileName marks a directory as a hub.
const FileName = "hub.json"

// ErrNoHub is returned by Locate when no enclosing hub directory exists.
var ErrNoHub = errors.New("no hub.json found in this directory or any parent")

// Create initializes a hub in dir and writes its hub.json. It fails with
// ErrExists when dir already holds a hub, and refuses any other non-empty
// directory.
func Create(name, description, dir string, opts ...Option) (*Hub, error) {
	switch kind, err := inspectDir(dir); {
	case err != nil:
		return nil, err
	case kind == kindHub:
		return nil, fmt.Errorf("%w at %s", ErrExists, dir)
	case kind == kindOccupied:
		return nil, fmt.Errorf("directory %s is not empty; refusing to initialize hub", dir)
	}
	h := NewHub(name, description, dir, opts...)
	if err := h.Save(); err != nil {
		return nil, err
	}
	return h, nil
}

type dirKind int

const (
	kindMissing dirKind = iota
	kindEmpty
	kindOccupied
	kindHub
)

func inspectDir(dir string) (dirKind, error) {
	entries, err := os.ReadDir(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return kindMissing, nil
	case err != nil:
		return kindMissing, fmt.Errorf("inspect hub directory: %w", err)
	}
	for _, e := range entries {
		if e.Name() == FileName && !e.IsDir() {
			return kindHub, nil
		}
	}
	if len(entries) > 0 {
		return kindOccupied, nil
	}
	return kindEmpty, nil
}

// Locate walks up from start, or the working directory when start is empty,
// to the nearest directory holding a hub.json.
func Locate(start string) (string, error) {
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		start = wd
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	if info, err := os.Stat(dir); err != nil {
		return "", err
	} else if !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		if s, _ := inspectDir(dir); s == kindHub {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoHub
		}
		dir = parent
	}
}

// Names lists the hubs stored directly under root, sorted. A missing root
// holds no hubs.
func Names(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read hubs dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if s, _ := inspectDir(filepath.Join(root, e.Name())); s == kindHub {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
