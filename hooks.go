package persistcache

// Hooks are lightweight callbacks for high-signal lifecycle events.
// Implementations MUST be cheap and non-blocking; the store calls them
// inline (wrap with hooks/async to decouple).
type Hooks interface {
	// The bootstrap load completed. n is the number of entries restored
	// (0 for a missing file).
	Loaded(path string, n int)

	// A snapshot save completed (explicit Flush or release-time Close).
	Flushed(path string, n int)

	// A snapshot save failed. During Close this fires alongside the
	// returned error; it is the place to page on potential data loss.
	FlushError(path string, err error)

	// A Push overwrote an existing value under the same key
	// (last-write-wins).
	Replaced(key string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Loaded(string, int)        {}
func (NopHooks) Flushed(string, int)       {}
func (NopHooks) FlushError(string, error)  {}
func (NopHooks) Replaced(string)           {}
