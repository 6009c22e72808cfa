package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/yourusername/cookstore/pkg/errors"
)

// File is a Store that keeps the full key space in memory and writes a JSON
// snapshot to disk on every mutation. The snapshot is written to a temporary
// file and renamed into place, so readers never observe a partial write.
//
// File 是将完整键空间保存在内存中并在每次变更时将JSON快照写入磁盘的存储。
// 快照先写入临时文件再重命名到位，读者永远不会看到部分写入。
type File struct {
	path   string
	mu     sync.Mutex
	m      map[string]string
	closed bool
}

// NewFile opens (or creates) a file-backed store at path.
// An existing snapshot is loaded; a corrupt snapshot starts the store empty
// rather than failing, so a damaged file never blocks startup.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("kv: file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("kv: create data dir: %w", err)
	}
	s := &File{path: path, m: make(map[string]string)}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("kv: read snapshot: %w", err)
		}
		return s, nil
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.m); err != nil {
			s.m = make(map[string]string)
		}
	}
	return s, nil
}

// Get implements Store.
func (s *File) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.ErrKeyEmpty
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", false, errors.ErrClosed
	}
	v, ok := s.m[key]
	return v, ok, nil
}

// Set implements Store.
func (s *File) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.ErrKeyEmpty
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.ErrClosed
	}
	s.m[key] = value
	return s.flushLocked()
}

// Delete implements Store.
func (s *File) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.ErrKeyEmpty
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.ErrClosed
	}
	delete(s.m, key)
	return s.flushLocked()
}

// Close implements Store.
func (s *File) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	err := s.flushLocked()
	s.closed = true
	return err
}

// flushLocked writes the snapshot. Callers must hold s.mu.
func (s *File) flushLocked() error {
	data, err := json.Marshal(s.m)
	if err != nil {
		return errors.NewKeyError(s.path, errors.ErrSerializationFailed)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("kv: write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("kv: replace snapshot: %w", err)
	}
	return nil
}
