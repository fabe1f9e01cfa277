package soundfs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/barkhq/barksound/internal/config"
	"github.com/barkhq/barksound/internal/domain"
	"github.com/barkhq/barksound/internal/logging"
	"github.com/barkhq/barksound/internal/ports"
)

// lockFileName is the advisory lock kept inside each sound directory
const lockFileName = ".lock"

// Store implements ports.SoundFileStore on the local filesystem.
// Every mutation lands in the primary directory first and is then mirrored
// into the shared directory under the same file name. The two steps are not
// transactional: the result reports each step separately.
type Store struct {
	mu         sync.Mutex
	primaryDir string
	sharedDir  string
}

// Verify interface compliance at compile time
var _ ports.SoundFileStore = (*Store)(nil)

// NewStore creates a store over the configured directories.
// Directories are created lazily, on first access.
func NewStore(paths config.SoundPaths) *Store {
	return &Store{
		primaryDir: paths.PrimaryDir,
		sharedDir:  paths.SharedDir,
	}
}

// PrimaryDir returns the authoritative custom sound directory
func (s *Store) PrimaryDir() string { return s.primaryDir }

// SharedDir returns the mirror read by the notification process
func (s *Store) SharedDir() string { return s.sharedDir }

// Save copies sourcePath into the primary directory under its own file name,
// overwriting, then mirrors it into the shared directory. The shared copy is
// skipped when the primary copy fails.
func (s *Store) Save(sourcePath string) domain.MirrorResult {
	fileName := filepath.Base(sourcePath)
	result := domain.MirrorResult{FileName: fileName, Op: domain.MirrorOpSave}

	if err := domain.ValidateSoundFileName(fileName); err != nil {
		result.Primary = fmt.Errorf("%w: %s", domain.ErrCopyFailed, err)
		return result
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	logging.Logger.Debug("Saving sound", "source", sourcePath, "file", fileName)

	result.Primary = s.copyInto(s.primaryDir, sourcePath, fileName)
	if result.Primary != nil {
		return result
	}

	result.Shared = s.copyInto(s.sharedDir, sourcePath, fileName)
	return result
}

// Delete removes the file named like path from the primary directory, then
// from the shared directory. A shared copy that is already gone is not an error.
func (s *Store) Delete(path string) domain.MirrorResult {
	fileName := filepath.Base(path)
	result := domain.MirrorResult{FileName: fileName, Op: domain.MirrorOpDelete}

	if err := domain.ValidateSoundFileName(fileName); err != nil {
		result.Primary = fmt.Errorf("%w: %s", domain.ErrRemoveFailed, err)
		return result
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	logging.Logger.Debug("Deleting sound", "file", fileName)

	result.Primary = s.removeFrom(s.primaryDir, fileName, false)
	result.Shared = s.removeFrom(s.sharedDir, fileName, true)
	return result
}

// ListFiles returns every regular file in dir whose name ends with suffix, in
// enumeration order. On failure it returns an empty slice alongside
// ErrEnumerationFailed.
func (s *Store) ListFiles(dir, suffix string) ([]string, error) {
	files := []string{}

	// The store's own directories come into existence on first access
	if dir == s.primaryDir || dir == s.sharedDir {
		if err := ensureDir(dir); err != nil {
			return files, err
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return files, fmt.Errorf("%w: %s: %v", domain.ErrEnumerationFailed, dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	return files, nil
}

// ensureDir creates dir if needed
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrDirectoryUnavailable, dir, err)
	}
	return nil
}

// copyInto writes sourcePath to dir/fileName through a temp file and rename,
// so readers in the notification process never see a partial file.
func (s *Store) copyInto(dir, sourcePath, fileName string) error {
	if err := ensureDir(dir); err != nil {
		return err
	}

	unlock, err := lockDir(dir)
	if err != nil {
		return fmt.Errorf("%w: lock %s: %v", domain.ErrCopyFailed, dir, err)
	}
	defer unlock()

	if err := copyFile(sourcePath, dir, fileName); err != nil {
		return fmt.Errorf("%w: %s -> %s: %v", domain.ErrCopyFailed, sourcePath, dir, err)
	}
	return nil
}

func copyFile(sourcePath, dir, fileName string) error {
	src, err := os.Open(sourcePath)
	if err != nil {
		return err
	}
	defer src.Close()

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, src); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), filepath.Join(dir, fileName))
}

// removeFrom deletes dir/fileName. missingOK turns a missing file into success.
func (s *Store) removeFrom(dir, fileName string, missingOK bool) error {
	if err := ensureDir(dir); err != nil {
		return err
	}

	unlock, err := lockDir(dir)
	if err != nil {
		return fmt.Errorf("%w: lock %s: %v", domain.ErrRemoveFailed, dir, err)
	}
	defer unlock()

	err = os.Remove(filepath.Join(dir, fileName))
	if err == nil {
		return nil
	}
	if missingOK && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrRemoveFailed, filepath.Join(dir, fileName), err)
}
