package persistcache

import (
	"context"
	"os"

	"github.com/spf13/afero"

	c "github.com/unkn0wn-root/persistcache/codec"
)

// Store is the caller-facing surface of a persistent typed cache. All
// methods are safe for concurrent use. Push/Get/Find/Remove/All operate on
// memory only; Flush and Close block for the full duration of the file
// write, and Open blocks for the full duration of the file read.
type Store[V any] interface {
	// Push inserts the entry, silently replacing any existing value under
	// the same key (last-write-wins). Atomic with respect to concurrent
	// Push/Get calls: no reader ever observes a partially-written entry,
	// and a cancelled caller leaves the entry either fully recorded or
	// absent. Callers needing conflict detection must Get first, which is
	// inherently racy outside the store's internal exclusion.
	Push(ctx context.Context, entry Entry[V]) error

	// Get returns the value under key, with ok=false on a miss.
	Get(ctx context.Context, key Key[V]) (v V, ok bool, err error)

	// Find is Get in entry shape.
	Find(ctx context.Context, key Key[V]) (e Entry[V], ok bool, err error)

	// Remove deletes the entry under key. Removing a missing key is not
	// an error.
	Remove(ctx context.Context, key Key[V]) error

	// All returns a consistent point-in-time snapshot of every entry, in
	// insertion order.
	All(ctx context.Context) ([]Entry[V], error)

	// Len reports the number of entries.
	Len(ctx context.Context) (int, error)

	// Flush saves the current snapshot to the store's path without
	// closing. Blocking.
	Flush(ctx context.Context) error

	// Close performs exactly one final blocking save and makes the handle
	// permanently unusable (further calls return ErrClosed). Idempotent;
	// a second Close returns nil without saving again. A failed save is
	// returned and also routed to Hooks.FlushError; Close never panics.
	Close(ctx context.Context) error
}

// Options tune a Store. Only Path is required; everything else has a
// sensible default.
type Options[V any] struct {
	// Path of the snapshot file. Required. See DefaultPath.
	Path string

	Codec  c.Codec[V] // nil => c.JSON[V]{}
	Fs     afero.Fs   // nil => OS filesystem
	Logger Logger     // nil => NopLogger
	Hooks  Hooks      // nil => NopHooks
}

// Open loads the snapshot at opts.Path (blocking) and returns a ready
// Store. A missing file yields an empty store; a file that exists but does
// not decode fails with *DecodeError, any other filesystem failure with
// *IOError. Open never returns a partially-initialized handle.
func Open[V any](opts Options[V]) (Store[V], error) {
	return newCache[V](opts)
}

const pathEnv = "PERSISTCACHE_PATH"

// DefaultPath returns the snapshot path from the PERSISTCACHE_PATH
// environment variable, falling back to ./.cache.bin.
func DefaultPath() string {
	if p := os.Getenv(pathEnv); p != "" {
		return p
	}
	return "./.cache.bin"
}
