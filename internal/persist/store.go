package persist

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const saveFile = "save.json"

// Store owns the save file on disk. Writes go through a temp file and
// rename so a crash mid-write never truncates the previous save.
type Store struct {
	mu      sync.Mutex
	dataDir string
	path    string
}

func NewStore(dataDir string) (*Store, error) {
	dataDir = filepath.Clean(strings.TrimSpace(dataDir))
	if dataDir == "" {
		return nil, fmt.Errorf("data dir is required")
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &Store{
		dataDir: dataDir,
		path:    filepath.Join(dataDir, saveFile),
	}, nil
}

// Path returns the save file location.
func (s *Store) Path() string { return s.path }

// Load reads the raw save. A missing file is not an error; ok reports
// whether a save existed.
func (s *Store) Load() (raw []byte, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

// Save writes the raw snapshot atomically.
func (s *Store) Save(raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dataDir, saveFile+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path)
}

// Rotate copies the current save into a timestamped sibling and prunes
// old copies beyond keep. Called before risky operations (restore,
// rebirth) by the server layer.
func (s *Store) Rotate(keep int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	ts := time.Now().UTC().Format("20060102T150405Z")
	name := fmt.Sprintf("save-%s.json", ts)
	if err := os.WriteFile(filepath.Join(s.dataDir, name), b, 0o644); err != nil {
		return err
	}
	return s.pruneLocked(keep)
}

func (s *Store) pruneLocked(keep int) error {
	if keep <= 0 {
		return nil
	}
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return err
	}
	var rotated []string
	for _, e := range entries {
		name := e.Name()
		if e.Type().IsRegular() && strings.HasPrefix(name, "save-") && strings.HasSuffix(name, ".json") {
			rotated = append(rotated, name)
		}
	}
	if len(rotated) <= keep {
		return nil
	}
	sort.Strings(rotated) // timestamped names sort chronologically
	for _, name := range rotated[:len(rotated)-keep] {
		if err := os.Remove(filepath.Join(s.dataDir, name)); err != nil {
			return err
		}
	}
	return nil
}
