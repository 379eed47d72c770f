package repo

import (
	"errors"
	"os"
	"path/filepath"
)

// MarkerDir is the directory that marks the root of an rgit repository.
const MarkerDir = ".rgit"

// MarkerState describes what occupies the marker path.
type MarkerState int

const (
	MarkerAbsent MarkerState = iota
	MarkerDirectory
	MarkerOther
)

func (s MarkerState) String() string {
	switch s {
	case MarkerAbsent:
		return "absent"
	case MarkerDirectory:
		return "directory"
	default:
		return "other"
	}
}

// MarkerPath returns <dir>/.rgit
func MarkerPath(dir string) string {
	return filepath.Join(dir, MarkerDir)
}

// Inspect reports what exists at the marker path. Errors other than
// not-exist are returned as is.
func Inspect(markerPath string) (MarkerState, error) {
	fi, err := os.Stat(markerPath)
	if errors.Is(err, os.ErrNotExist) {
		return MarkerAbsent, nil
	}
	if err != nil {
		return MarkerAbsent, err
	}
	if fi.IsDir() {
		return MarkerDirectory, nil
	}
	return MarkerOther, nil
}

// Create makes the marker directory. The parent must already exist and the
// marker must not.
func Create(markerPath string) error {
	return os.Mkdir(markerPath, 0755)
}

// FindRoot searches for a .rgit directory walking up from start
func FindRoot(start string) (string, error) {
	cur, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if st, _ := Inspect(MarkerPath(cur)); st == MarkerDirectory {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", os.ErrNotExist
		}
		cur = parent
	}
}
