package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goldenanvil/compendium/internal/logger"
)

// Store manages the writable data folder the catalog files live in. All
// paths it hands out are absolute. The folder holds flat JSON files only;
// the Store never rewrites a file it did not create during an import.
type Store struct {
	dataDir string
	logger  logger.Logger
}

func NewStore(dataDir string, log logger.Logger) *Store {
	return &Store{
		dataDir: dataDir,
		logger:  log,
	}
}

func (s *Store) DataDir() string {
	return s.dataDir
}

// EnsureDataDir creates the data folder if it is missing.
func (s *Store) EnsureDataDir() error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir %s: %w", s.dataDir, err)
	}
	return nil
}

// SeedStarterFile copies the bundled starter price list into the data
// folder on first run. A user's existing copy is never overwritten, and a
// missing bundle is not an error. Returns the seeded path, or "" when
// nothing was copied.
func (s *Store) SeedStarterFile(srcPath, name string) (string, error) {
	dst := filepath.Join(s.dataDir, name)
	if _, err := os.Stat(dst); err == nil {
		return "", nil
	}

	if _, err := os.Stat(srcPath); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to stat starter file %s: %w", srcPath, err)
	}

	if err := copyFile(srcPath, dst); err != nil {
		return "", fmt.Errorf("failed to seed starter file: %w", err)
	}

	s.logger.Info("Store", "seeded starter price list", map[string]interface{}{
		"path": dst,
	})
	return dst, nil
}

// ListCatalogFiles returns the absolute paths of every .json file in the
// data folder, sorted by name.
func (s *Store) ListCatalogFiles() ([]string, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data dir %s: %w", s.dataDir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		abs, err := filepath.Abs(filepath.Join(s.dataDir, entry.Name()))
		if err != nil {
			return nil, err
		}
		paths = append(paths, abs)
	}
	sort.Strings(paths)
	return paths, nil
}

// ImportJSON copies an external JSON file into the data folder. The copy
// gets a .json extension if the source lacked one, and a _1, _2, ...
// suffix when the name is already taken.
func (s *Store) ImportJSON(srcPath string) (string, error) {
	info, err := os.Stat(srcPath)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", srcPath, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", srcPath)
	}

	name := filepath.Base(srcPath)
	if !strings.EqualFold(filepath.Ext(name), ".json") {
		name += ".json"
	}
	name = dedupeFilename(s.dataDir, name)

	dst := filepath.Join(s.dataDir, name)
	if err := copyFile(srcPath, dst); err != nil {
		return "", fmt.Errorf("failed to import %s: %w", srcPath, err)
	}

	s.logger.Info("Store", "imported catalog file", map[string]interface{}{
		"source": srcPath,
		"dest":   dst,
	})
	return dst, nil
}

// dedupeFilename appends _1, _2, ... before the extension until the name
// is free in dir.
func dedupeFilename(dir, filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	candidate := filename
	for i := 1; ; i++ {
		if _, err := os.Stat(filepath.Join(dir, candidate)); os.IsNotExist(err) {
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d%s", base, i, ext)
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
