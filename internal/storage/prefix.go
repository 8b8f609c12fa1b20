package storage

import (
	"context"
	"fmt"
)

// Prefixed namespaces every key of an underlying store.
type Prefixed struct {
	store  Store
	prefix string
}

// WithPrefix wraps store so that all keys start with prefix.
func WithPrefix(store Store, prefix string) *Prefixed {
	return &Prefixed{store: store, prefix: prefix}
}

// UserPrefix returns the key namespace of one learner.
func UserPrefix(userID int64) string {
	return fmt.Sprintf("user:%d:", userID)
}

func (p *Prefixed) Get(ctx context.Context, key string) ([]byte, error) {
	return p.store.Get(ctx, p.prefix+key)
}

func (p *Prefixed) Set(ctx context.Context, key string, value []byte) error {
	return p.store.Set(ctx, p.prefix+key, value)
}
