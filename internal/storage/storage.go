// Package storage provides key-value blob storage primitives shared by the
// persistence backends: the not found sentinel, an in-memory store, key
// namespacing and blob codecs.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a key has never been written.
var ErrNotFound = errors.New("key not found")

// Store is a get/set blob store keyed by string.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
