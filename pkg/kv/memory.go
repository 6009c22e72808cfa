package kv

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/yourusername/cookstore/pkg/errors"
)

const (
	// defaultShardCount is the default number of shards.
	// Power of 2 is chosen to optimize modulo operations.
	//
	// defaultShardCount 是默认分片数量，选择2的幂次方以优化取模运算。
	defaultShardCount = 16
)

// shard is a mutex-guarded segment of the key space.
// shard 是由互斥锁保护的键空间片段。
type shard struct {
	mu sync.RWMutex
	m  map[string]string
}

// Memory is an in-memory Store sharded by key hash to reduce lock
// contention. Values live only for the process lifetime; it is the
// backend of choice for tests and single-node deployments.
//
// Memory 是按键哈希分片以减少锁竞争的内存存储。
// 值仅在进程生命周期内存在；它是测试和单节点部署的首选后端。
type Memory struct {
	shards []*shard
	mask   uint32
	closed bool
	mu     sync.RWMutex
}

// NewMemory creates an in-memory store. shardCount must be a power of two;
// zero or negative values fall back to the default.
func NewMemory(shardCount int) *Memory {
	if shardCount <= 0 || shardCount&(shardCount-1) != 0 {
		shardCount = defaultShardCount
	}
	shards := make([]*shard, shardCount)
	for i := range shards {
		shards[i] = &shard{m: make(map[string]string)}
	}
	return &Memory{shards: shards, mask: uint32(shardCount - 1)}
}

func (s *Memory) shardFor(key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return s.shards[h.Sum32()&s.mask]
}

// Get implements Store.
func (s *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.ErrKeyEmpty
	}
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return "", false, errors.ErrClosed
	}
	s.mu.RUnlock()

	sh := s.shardFor(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	v, ok := sh.m[key]
	return v, ok, nil
}

// Set implements Store.
func (s *Memory) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.ErrKeyEmpty
	}
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return errors.ErrClosed
	}
	s.mu.RUnlock()

	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.m[key] = value
	return nil
}

// Delete implements Store.
func (s *Memory) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.ErrKeyEmpty
	}
	sh := s.shardFor(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	delete(sh.m, key)
	return nil
}

// Close implements Store.
func (s *Memory) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
