package storage

import (
	"os"
	"path/filepath"
	"testing"

	"banco-ledger/internal/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
)

type SnapshotStoreTestSuite struct {
	suite.Suite
	dir   string
	path  string
	store *SnapshotStore
}

func TestSnapshotStoreTestSuite(t *testing.T) {
	suite.Run(t, new(SnapshotStoreTestSuite))
}

func (s *SnapshotStoreTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.path = filepath.Join(s.dir, "ledger.txt")
	s.store = NewSnapshotStore(s.path)
}

func (s *SnapshotStoreTestSuite) writeFile(content string) {
	s.Require().NoError(os.WriteFile(s.path, []byte(content), 0o644))
}

func (s *SnapshotStoreTestSuite) readFile(path string) string {
	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	return string(data)
}

func (s *SnapshotStoreTestSuite) TestSaveThenLoad() {
	s.Require().NoError(s.store.Save(fixtureSnapshot()))

	golden, err := os.ReadFile(filepath.Join("testdata", "snapshot.golden"))
	s.Require().NoError(err)
	s.Equal(string(golden), s.readFile(s.path))

	got, report, err := s.store.Load()
	s.Require().NoError(err)
	s.False(report.Missing)
	s.NoError(report.Warning)
	s.Empty(report.BackupPath)
	s.Empty(cmp.Diff(fixtureSnapshot(), got))
}

func (s *SnapshotStoreTestSuite) TestSaveReplacesAndCleansUp() {
	s.writeFile("stale content")

	s.Require().NoError(s.store.Save(models.Snapshot{NextID: models.DefaultIDBase}))
	s.Equal("0\n66671001\n", s.readFile(s.path))

	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	s.Len(entries, 1)
}

func (s *SnapshotStoreTestSuite) TestSaveFailureKeepsPreviousFile() {
	s.Require().NoError(s.store.Save(fixtureSnapshot()))
	before := s.readFile(s.path)

	broken := fixtureSnapshot()
	broken.Accounts[2].Name = "Carla, Jr"

	err := s.store.Save(broken)
	s.ErrorIs(err, ErrPersistence)
	s.Equal(before, s.readFile(s.path))

	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	s.Len(entries, 1)
}

func (s *SnapshotStoreTestSuite) TestSaveMissingDirectory() {
	store := NewSnapshotStore(filepath.Join(s.dir, "missing", "ledger.txt"))

	err := store.Save(fixtureSnapshot())
	s.ErrorIs(err, ErrPersistence)

	_, statErr := os.Stat(store.Path())
	s.True(os.IsNotExist(statErr))
}

func (s *SnapshotStoreTestSuite) TestLoadMissing() {
	got, report, err := s.store.Load()
	s.Require().NoError(err)

	s.True(report.Missing)
	s.NoError(report.Warning)
	s.Zero(got.Len())
	s.Zero(got.NextID)
}

func (s *SnapshotStoreTestSuite) TestLoadCorruptBacksUp() {
	content := "2\n66671009\n66671001, A, p, 0, 0, 0, null, null\n"
	s.writeFile(content)

	got, report, err := s.store.Load()
	s.Require().NoError(err)

	s.False(report.Missing)
	s.ErrorIs(report.Warning, ErrCorruptSnapshot)
	s.Equal(s.path+CorruptSuffix, report.BackupPath)
	s.Equal(content, s.readFile(report.BackupPath))
	s.Equal(content, s.readFile(s.path))

	s.Zero(got.Len())
	s.Equal(int64(66671009), got.NextID)
}

func (s *SnapshotStoreTestSuite) TestLoadUnreadable() {
	s.Require().NoError(os.Mkdir(s.path, 0o755))

	got, report, err := s.store.Load()

	s.ErrorIs(err, ErrPersistence)
	s.False(report.Missing)
	s.NoError(report.Warning)
	s.Empty(report.BackupPath)
	s.Zero(got.Len())

	_, statErr := os.Stat(s.path + CorruptSuffix)
	s.True(os.IsNotExist(statErr))
}

func (s *SnapshotStoreTestSuite) TestLoadPermissionDenied() {
	if os.Geteuid() == 0 {
		s.T().Skip("file permissions do not apply to root")
	}
	s.Require().NoError(s.store.Save(fixtureSnapshot()))
	s.Require().NoError(os.Chmod(s.path, 0))
	s.T().Cleanup(func() { _ = os.Chmod(s.path, 0o644) })

	_, _, err := s.store.Load()
	s.ErrorIs(err, ErrPersistence)
	s.Contains(err.Error(), "permission denied")
}

func (s *SnapshotStoreTestSuite) TestSaveReplaceFailureRemovesTempFile() {
	s.Require().NoError(os.Mkdir(s.path, 0o755))
	s.Require().NoError(os.WriteFile(filepath.Join(s.path, "keep"), []byte("x"), 0o644))

	err := s.store.Save(fixtureSnapshot())
	s.ErrorIs(err, ErrPersistence)

	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("ledger.txt", entries[0].Name())
}
