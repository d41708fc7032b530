// Package asynchook decouples hook delivery from the store's call sites.
// Events are queued on a bounded channel and delivered by worker
// goroutines; when the queue is full events are dropped rather than
// blocking a Push or a release-time save.
//
// usage:
//
//	raw := sloghook.New(slog.Default(), sloghook.Options{
//	    ReplacedEvery: 10, // sample logs: ~every 10th overwrite
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	store, _ := persistcache.Open[User](persistcache.Options[User]{
//	    Path:  "users.cache",
//	    Hooks: hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/persistcache"
)

type Hooks struct {
	inner persistcache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ persistcache.Hooks = (*Hooks)(nil)

func New(inner persistcache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains the queue and stops the workers. Call it after the store's
// Close so the final FlushError/Flushed event is delivered.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) Loaded(path string, n int)  { h.try(func() { h.inner.Loaded(path, n) }) }
func (h *Hooks) Flushed(path string, n int) { h.try(func() { h.inner.Flushed(path, n) }) }
func (h *Hooks) Replaced(key string)        { h.try(func() { h.inner.Replaced(key) }) }
func (h *Hooks) FlushError(path string, err error) {
	h.try(func() { h.inner.FlushError(path, err) })
}
