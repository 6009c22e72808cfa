// Package errors provides standardized error types for the storefront.
// It defines common error values, error wrapping, and helper functions
// for error checking across the storage and configuration layers.
//
// Package errors 提供商店的标准化错误类型。
// 它定义了常见错误值、错误包装以及用于存储层和配置层的错误检查辅助函数。
package errors

import (
	"errors"
	"fmt"
)

// Standard errors returned by storefront components.
// Catalog lookups never produce errors; absence there is a boolean result.
//
// 商店组件可能返回的标准错误。
// 目录查询不会产生错误；未命中以布尔值表示。
var (
	// ErrNotFound is returned when a key is not present in a storage backend.
	// 当存储后端中不存在某个键时返回ErrNotFound。
	ErrNotFound = errors.New("cookstore: not found")

	// ErrKeyEmpty is returned when an empty storage key is provided.
	// 当提供空的存储键时返回ErrKeyEmpty。
	ErrKeyEmpty = errors.New("cookstore: key is empty")

	// ErrSerializationFailed is returned when state serialization fails.
	// 当状态序列化失败时返回ErrSerializationFailed。
	ErrSerializationFailed = errors.New("cookstore: serialization failed")

	// ErrDeserializationFailed is returned when persisted state cannot be decoded.
	// 当无法解码持久化状态时返回ErrDeserializationFailed。
	ErrDeserializationFailed = errors.New("cookstore: deserialization failed")

	// ErrStorageUnavailable is returned when a storage backend cannot be reached.
	// 当无法访问存储后端时返回ErrStorageUnavailable。
	ErrStorageUnavailable = errors.New("cookstore: storage unavailable")

	// ErrClosed is returned when an operation is performed on a closed store.
	// 当对已关闭的存储执行操作时返回ErrClosed。
	ErrClosed = errors.New("cookstore: store is closed")
)

// KeyError represents an error related to a specific storage key.
// It wraps an underlying error with the key that caused it.
//
// KeyError 表示与特定存储键相关的错误。
// 它用导致错误的键包装底层错误。
type KeyError struct {
	Key string // The key that caused the error / 导致错误的键
	Err error  // The underlying error / 底层错误
}

// Error returns the formatted error message including the key.
func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.Key)
}

// Unwrap returns the underlying error so errors.Is and errors.As work
// with wrapped errors.
func (e *KeyError) Unwrap() error {
	return e.Err
}

// NewKeyError associates a key with an error.
func NewKeyError(key string, err error) *KeyError {
	return &KeyError{Key: key, Err: err}
}

// IsNotFound returns true if the error is or wraps ErrNotFound.
//
// IsNotFound 如果错误是ErrNotFound或包装了它，则返回true。
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsStorageUnavailable returns true if the error is or wraps ErrStorageUnavailable.
func IsStorageUnavailable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}

// IsSerializationError returns true if the error relates to encoding or
// decoding persisted state.
func IsSerializationError(err error) bool {
	return errors.Is(err, ErrSerializationFailed) || errors.Is(err, ErrDeserializationFailed)
}

// IsClosed returns true if the error is or wraps ErrClosed.
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}
