package persistcache

// Key is a string-backed identifier tied to exactly one value type T.
// The type parameter is a compile-time marker only: it has no runtime
// representation, is never serialized, and takes no part in equality.
// A Key[User] cannot be passed where a Key[Article] is expected, even
// when both wrap the same raw string; the same raw string may therefore
// be reused as a key for different value types in different stores.
type Key[T any] struct {
	raw string
}

// NewKey wraps raw in a typed key. Any string is a valid identifier,
// including the empty string; meaningful uniqueness is the caller's job.
func NewKey[T any](raw string) Key[T] { return Key[T]{raw: raw} }

// String returns the raw identifier.
func (k Key[T]) String() string { return k.raw }
