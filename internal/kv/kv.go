// Package kv provides the key-value media the record store persists to.
//
// Every backend stores opaque string values under string keys. A missing key is
// reported as ok=false with a nil error; errors are reserved for a medium that
// could not be read or written.
package kv

import (
	"context"
	"errors"
)

// ErrClosed is returned by backends used after Close.
var ErrClosed = errors.New("kv: backend closed")

// Backend is the read/write primitive behind the record store.
type Backend interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Pinger is implemented by backends that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Ping checks b when it supports it; local backends are always reachable.
func Ping(ctx context.Context, b Backend) error {
	if p, ok := b.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
