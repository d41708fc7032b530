package persistcache

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/afero"

	c "github.com/unkn0wn-root/persistcache/codec"
)

// cache owns one memstore and one snapshot path for its whole lifetime.
// Construction blocks on the bootstrap load; Close blocks on the final
// save. No other entity mutates the store directly.
type cache[V any] struct {
	path  string
	fs    afero.Fs
	codec c.Codec[V]
	log   Logger
	hooks Hooks

	store *memstore[V]

	// lifeMu serializes Flush/Close against each other and makes the
	// closed transition atomic with the final save.
	lifeMu sync.Mutex
	closed bool
}

func newCache[V any](opts Options[V]) (*cache[V], error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("persistcache: path is required")
	}

	ch := &cache[V]{
		path:  opts.Path,
		store: newMemstore[V](),
	}

	// defaults
	ch.log = coalesce[Logger](opts.Logger, NopLogger{})
	ch.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	if opts.Codec != nil {
		ch.codec = opts.Codec
	} else {
		ch.codec = c.JSON[V]{}
	}
	if opts.Fs != nil {
		ch.fs = opts.Fs
	} else {
		ch.fs = afero.NewOsFs()
	}

	entries, err := loadSnapshot[V](ch.fs, ch.path, ch.codec)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		ch.store.insert(e)
	}

	ch.log.Debug("snapshot loaded", Fields{"path": ch.path, "entries": len(entries)})
	ch.hooks.Loaded(ch.path, len(entries))
	return ch, nil
}

func (ch *cache[V]) Push(_ context.Context, entry Entry[V]) error {
	if err := ch.guard(); err != nil {
		return err
	}
	if ch.store.insert(entry) {
		ch.log.Debug("entry replaced", Fields{"key": entry.key.String()})
		ch.hooks.Replaced(entry.key.String())
	}
	return nil
}

func (ch *cache[V]) Get(_ context.Context, key Key[V]) (V, bool, error) {
	var zero V
	if err := ch.guard(); err != nil {
		return zero, false, err
	}
	v, ok := ch.store.lookup(key)
	return v, ok, nil
}

func (ch *cache[V]) Find(ctx context.Context, key Key[V]) (Entry[V], bool, error) {
	v, ok, err := ch.Get(ctx, key)
	if err != nil || !ok {
		return Entry[V]{}, false, err
	}
	return Entry[V]{key: key, value: v}, true, nil
}

func (ch *cache[V]) Remove(_ context.Context, key Key[V]) error {
	if err := ch.guard(); err != nil {
		return err
	}
	ch.store.remove(key)
	return nil
}

func (ch *cache[V]) All(_ context.Context) ([]Entry[V], error) {
	if err := ch.guard(); err != nil {
		return nil, err
	}
	return ch.store.snapshot(), nil
}

func (ch *cache[V]) Len(_ context.Context) (int, error) {
	if err := ch.guard(); err != nil {
		return 0, err
	}
	return ch.store.size(), nil
}

func (ch *cache[V]) Flush(_ context.Context) error {
	ch.lifeMu.Lock()
	defer ch.lifeMu.Unlock()
	if ch.closed {
		return ErrClosed
	}
	return ch.flushLocked()
}

// Close flips the handle to closed and performs the one release-time save.
// Pushes racing Close may or may not make the final snapshot; callers must
// stop mutating before releasing the handle.
func (ch *cache[V]) Close(_ context.Context) error {
	ch.lifeMu.Lock()
	defer ch.lifeMu.Unlock()
	if ch.closed {
		return nil
	}
	ch.closed = true
	return ch.flushLocked()
}

// flushLocked saves the current snapshot. Callers hold lifeMu. A failure
// is routed to the hooks and the logger in addition to being returned,
// because the Close path has no awaiting caller in scope-exit use.
func (ch *cache[V]) flushLocked() error {
	snap := ch.store.snapshot()
	if err := saveSnapshot[V](ch.fs, ch.path, snap, ch.codec); err != nil {
		ch.log.Error("snapshot save failed", Fields{"path": ch.path, "err": err})
		ch.hooks.FlushError(ch.path, err)
		return err
	}
	ch.log.Debug("snapshot saved", Fields{"path": ch.path, "entries": len(snap)})
	ch.hooks.Flushed(ch.path, len(snap))
	return nil
}

func (ch *cache[V]) guard() error {
	ch.lifeMu.Lock()
	defer ch.lifeMu.Unlock()
	if ch.closed {
		return ErrClosed
	}
	return nil
}
