package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/zenone/internal/constants"
	"github.com/julianstephens/zenone/internal/logger"
)

// Info describes one backup file
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager creates and rotates timestamped copies of the storage file. It is
// agnostic to the backend: both the JSON file and the SQLite database are
// copied byte for byte, which is safe because the CLI closes the store (or
// has fully flushed it) before backing up.
type Manager struct {
	storePath string
	backupDir string
}

// NewManager creates a backup manager for the given storage file
func NewManager(storePath string) *Manager {
	return &Manager{
		storePath: storePath,
		backupDir: filepath.Join(filepath.Dir(storePath), constants.BackupDirName),
	}
}

// BackupDir returns the backup directory path
func (m *Manager) BackupDir() string {
	return m.backupDir
}

// Create copies the storage file into the backup directory under a
// timestamped name, then rotates old backups beyond the retention limit.
func (m *Manager) Create() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.storePath); os.IsNotExist(err) {
		return "", fmt.Errorf("storage does not exist: %s", m.storePath)
	}

	name := constants.BackupFilePrefix + time.Now().Format("20060102-150405") + constants.BackupFileSuffix
	dest := filepath.Join(m.backupDir, name)
	if _, err := os.Stat(dest); err == nil {
		return "", fmt.Errorf("backup %s already exists", name)
	}

	if err := copyFile(m.storePath, dest); err != nil {
		return "", fmt.Errorf("failed to copy storage: %w", err)
	}

	if err := m.rotate(); err != nil {
		// Rotation failure should not undo a successful backup.
		logger.Warn("Failed to rotate old backups", "error", err)
	}

	return dest, nil
}

// List returns all backups, newest first.
func (m *Manager) List() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), constants.BackupFileSuffix)
		ts, err := time.Parse("20060102-150405", stamp)
		if err != nil {
			continue
		}

		fi, err := entry.Info()
		if err != nil {
			continue
		}

		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, name),
			Timestamp: ts,
			Size:      fi.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// rotate removes the oldest backups beyond the retention limit.
func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for _, old := range backups[min(len(backups), constants.MaxBackups):] {
		if err := os.Remove(old.Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", old.Path, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
