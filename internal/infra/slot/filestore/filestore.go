package filestore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aalvaropc/forecounter/internal/domain"
	"github.com/aalvaropc/forecounter/internal/ports"
)

// DefaultFileName is the slot file created under the data home.
const DefaultFileName = "active-round.json"

// Store keeps the slot in a single file.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

var _ ports.Slot = (*Store)(nil)

func (s *Store) Path() string { return s.path }

func (s *Store) Read() ([]byte, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.OpError{
				Op:   "filestore.read",
				Kind: domain.KindNotFound,
				Path: s.path,
				Err:  domain.ErrNotFound,
			}
		}
		return nil, &domain.OpError{
			Op:   "filestore.read",
			Kind: domain.KindStorage,
			Path: s.path,
			Err:  err,
		}
	}
	return b, nil
}

func (s *Store) Write(payload []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "filestore.mkdir",
			Kind: domain.KindStorage,
			Path: dir,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o600); err != nil {
		return &domain.OpError{
			Op:   "filestore.write",
			Kind: domain.KindStorage,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "filestore.rename",
			Kind: domain.KindStorage,
			Path: s.path,
			Err:  err,
		}
	}
	return nil
}

func (s *Store) Delete() error {
	err := os.Remove(s.path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return &domain.OpError{
		Op:   "filestore.delete",
		Kind: domain.KindStorage,
		Path: s.path,
		Err:  err,
	}
}
