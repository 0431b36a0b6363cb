package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/edenso/boardkit/pkg/board"
)

// FileStore keeps each board as a JSON file under a directory. Intended for
// CLI usage where a database is overkill.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store rooted at dir.
// The directory will be created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Get retrieves a board by id.
func (s *FileStore) Get(ctx context.Context, id string) (*board.Board, error) {
	data, err := os.ReadFile(s.path(id))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var b board.Board
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode board %s: %w", id, err)
	}
	return &b, nil
}

// Put stores a board as pretty-printed JSON.
func (s *FileStore) Put(ctx context.Context, b *board.Board) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("encode board %s: %w", b.ID, err)
	}
	return os.WriteFile(s.path(b.ID), data, 0644)
}

// Delete removes a board file. Missing files are ignored.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	err := os.Remove(s.path(id))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// List scans the directory and returns boards owned by ownerID, newest first.
func (s *FileStore) List(ctx context.Context, ownerID string) ([]*board.Board, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var out []*board.Board
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			return nil, err
		}
		var b board.Board
		if err := json.Unmarshal(data, &b); err != nil {
			// Skip foreign files rather than failing the whole listing.
			continue
		}
		if b.OwnerID == ownerID {
			out = append(out, &b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// path maps a board id to a file path. Ids are hashed so arbitrary id
// strings cannot escape the data directory.
func (s *FileStore) path(id string) string {
	sum := sha256.Sum256([]byte(id))
	return filepath.Join(s.dir, hex.EncodeToString(sum[:8])+".json")
}
