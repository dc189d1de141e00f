package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/sitekb"
)

// Store exports a set of documents with atomic replace semantics. Documents
// are staged in a temporary directory and moved into place on Commit, so an
// interrupted export never leaves a half-written output directory.
type Store struct {
	baseDir string
	name    string
}

// NewStore creates a new Store. baseDir is the parent directory, name is the
// output directory name. Files are staged in baseDir/name.tmp and moved to
// baseDir/name on Commit.
func NewStore(baseDir, name string) *Store {
	return &Store{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *Store) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *Store) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Stage writes a document into the staging directory.
func (s *Store) Stage(doc *sitekb.Document) error {
	return NewWriter(s.tempDir()).WriteDocument(doc)
}

// Commit atomically replaces the output directory with the staged one.
func (s *Store) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the staging directory.
func (s *Store) Abort() error {
	return os.RemoveAll(s.tempDir())
}
