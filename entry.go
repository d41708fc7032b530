package persistcache

// Entry pairs a typed key with its value. Entries are immutable after
// construction; replacing a cached value means pushing a new Entry under
// the same key.
type Entry[V any] struct {
	key   Key[V]
	value V
}

// NewEntry builds the (key, value) pair pushed into a Store.
func NewEntry[V any](key Key[V], value V) Entry[V] {
	return Entry[V]{key: key, value: value}
}

func (e Entry[V]) Key() Key[V] { return e.key }
func (e Entry[V]) Value() V    { return e.value }
