// Package sloghook implements persistcache.Hooks on top of log/slog with
// sampling for the hot-path events.
package sloghook

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/persistcache"
)

type Options struct {
	// Sampling for Replaced events to avoid floods; 0/1 = log all.
	ReplacedEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	replacedCtr atomic.Uint64
}

var _ persistcache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Loaded(path string, n int) {
	if h.l == nil {
		return
	}
	h.l.Debug("persistcache.loaded",
		"path", path,
		"entries", n)
}

func (h *Hooks) Flushed(path string, n int) {
	if h.l == nil {
		return
	}
	h.l.Debug("persistcache.flushed",
		"path", path,
		"entries", n)
}

// FlushError is never sampled. A failed release-time save is potential
// data loss and the hook is the only channel besides the returned error.
func (h *Hooks) FlushError(path string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("persistcache.flush_error",
		"path", path,
		"err", err)
}

func (h *Hooks) Replaced(key string) {
	if h.l == nil || !sample(h.opts.ReplacedEvery, &h.replacedCtr) {
		return
	}
	h.l.Debug("persistcache.replaced",
		"key", key)
}
