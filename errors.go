package persistcache

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by every operation after Close. A closed handle is
// permanently unusable; reopen the path with Open.
var ErrClosed = errors.New("persistcache: store is closed")

// IOError reports a filesystem failure while loading or saving a snapshot.
type IOError struct {
	Op   string // "read", "create temp", "write", "close", "rename"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("persistcache: %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// DecodeError reports that the file at Path exists but does not hold a
// valid snapshot (bad framing or an undecodable value payload). The file
// is left untouched so it can be inspected.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("persistcache: decode %q: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports that the value under Key could not be serialized.
// The save is abandoned before anything is written; the previous snapshot
// file, if any, is untouched.
type EncodeError struct {
	Key string
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("persistcache: encode value for key %q: %v", e.Key, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
