// Package persistcache implements a persistent, type-safe, full-retention
// cache store: an in-memory map from typed keys to serializable values,
// bootstrapped from a snapshot file at Open and flushed back to the same
// file on Close.
//
// Components:
//   - Key[T]: string key tied to exactly one value type at compile time.
//   - Entry[V]: immutable (key, value) pair, the unit of insertion and of
//     persisted storage.
//   - Codec[V]: (de)serializes V <-> []byte (JSON, CBOR, Msgpack, Protobuf).
//   - Store[V]: the concurrency-safe Push/Get/Find/Remove/All surface plus
//     the Flush/Close persistence lifecycle.
//
// Lifecycle:
//
//	store, err := persistcache.Open[User](persistcache.Options[User]{
//	    Path: "users.cache",
//	})
//	if err != nil { ... }
//	_ = store.Push(ctx, persistcache.NewEntry(persistcache.NewKey[User]("u:1"), u))
//	v, ok, _ := store.Get(ctx, persistcache.NewKey[User]("u:1"))
//	_ = store.Close(ctx) // flushes the snapshot; required
//
// Go has no deterministic destruction, so the release-time flush is an
// explicit contract: a Store that is never Closed (or Flushed) loses every
// entry pushed since the last save. Close is idempotent and never panics;
// a failed release save is reported through the returned error and
// Hooks.FlushError.
//
// The store retains every entry (no eviction, no TTL) and keeps insertion
// order stable, so the snapshot file is reproducible for a given push
// history. Two stores opened on the same path are not coordinated; the
// last one to flush wins.
package persistcache
