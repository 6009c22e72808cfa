// Package kv provides the durable key-value storage layer used to persist
// per-session cart state. It defines a small synchronous contract and ships
// three backends: an in-memory sharded map, a file-backed snapshot store and
// a Redis-backed store.
//
// Package kv 提供用于持久化会话购物车状态的键值存储层。
// 它定义了一个小的同步契约，并提供三个后端：内存分片映射、
// 基于文件快照的存储和基于Redis的存储。
package kv

import "context"

// Store is the interface for a durable key-value store.
// All methods are safe for concurrent use.
//
// Store 定义键值存储的接口。所有方法都是并发安全的。
type Store interface {
	// Get retrieves the value stored under key.
	// Returns the value and a boolean indicating whether the key was found.
	// A missing key is ("", false, nil), not an error.
	//
	// Get 检索存储在key下的值。
	// 返回值和一个指示是否找到键的布尔值。
	// 缺失的键返回("", false, nil)，而不是错误。
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	//
	// Set 将value存储在key下，替换任何先前的值。
	Set(ctx context.Context, key, value string) error

	// Delete removes the value stored under key.
	// Deleting a missing key is a no-op.
	//
	// Delete 删除存储在key下的值。删除缺失的键是无操作。
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the store.
	// After Close the store must not be used.
	//
	// Close 释放存储占用的资源。调用Close后不应再使用该存储。
	Close() error
}
