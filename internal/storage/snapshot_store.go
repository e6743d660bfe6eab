package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"banco-ledger/internal/models"

	"github.com/natefinch/atomic"
	"go.uber.org/multierr"
)

// CorruptSuffix is appended to the snapshot path when an unreadable file is
// set aside during Load.
const CorruptSuffix = ".corrupt"

// LoadReport describes how Load obtained its snapshot.
type LoadReport struct {
	// Missing is true when no snapshot file existed yet.
	Missing bool
	// Warning is set when an existing file could not be decoded and the
	// ledger starts empty.
	Warning error
	// BackupPath holds the copy of the unusable file, if one was written.
	BackupPath string
}

// SnapshotStore reads and writes the ledger snapshot file.
type SnapshotStore struct {
	path string
}

func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

func (s *SnapshotStore) Path() string {
	return s.path
}

// Save replaces the snapshot file. The new content goes to a temporary file
// in the same directory first, so a failed save leaves the previous file
// untouched.
func (s *SnapshotStore) Save(snapshot models.Snapshot) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}()

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}

	dest := bufio.NewWriter(tmp)
	err = Encode(dest, snapshot)
	err = multierr.Combine(err, dest.Flush(), tmp.Sync(), tmp.Close())
	if err == nil {
		err = atomic.ReplaceFile(tmp.Name(), s.path)
	}
	if err != nil {
		return multierr.Append(err, os.Remove(tmp.Name()))
	}
	return nil
}

// Load reads the snapshot. A missing file yields an empty snapshot, and a
// corrupt one yields an empty snapshot plus a warning; the corrupt file is
// copied aside before the next Save overwrites it. A file that exists but
// cannot be read is an ErrPersistence error, and the caller must not save
// over it.
func (s *SnapshotStore) Load() (models.Snapshot, LoadReport, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.Snapshot{}, LoadReport{Missing: true}, nil
	}
	if err != nil {
		return models.Snapshot{}, LoadReport{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	snapshot, err := Decode(bytes.NewReader(data))
	if err == nil {
		return snapshot, LoadReport{}, nil
	}

	report := LoadReport{Warning: err}
	backup := s.path + CorruptSuffix
	if backupErr := atomic.WriteFile(backup, bytes.NewReader(data)); backupErr != nil {
		report.Warning = multierr.Append(err, fmt.Errorf("%w: backup failed: %v", ErrPersistence, backupErr))
	} else {
		report.BackupPath = backup
	}

	return models.Snapshot{NextID: snapshot.NextID}, report, nil
}
