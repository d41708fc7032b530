package persistcache

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	c "github.com/unkn0wn-root/persistcache/codec"
	"github.com/unkn0wn-root/persistcache/internal/wire"
)

// loadSnapshot reads and decodes the snapshot at path, blocking for the
// full duration. A missing file is the first-run case and yields no
// entries. Undecodable content (framing or payload) is a *DecodeError;
// any other filesystem failure is an *IOError. The file is never modified
// on the load path.
func loadSnapshot[V any](afs afero.Fs, path string, codec c.Codec[V]) ([]Entry[V], error) {
	raw, err := afero.ReadFile(afs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	recs, err := wire.DecodeSnapshot(raw)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	entries := make([]Entry[V], 0, len(recs))
	for _, r := range recs {
		v, err := codec.Decode(r.Payload)
		if err != nil {
			return nil, &DecodeError{Path: path, Err: fmt.Errorf("record %q: %w", r.Key, err)}
		}
		entries = append(entries, Entry[V]{key: NewKey[V](r.Key), value: v})
	}
	return entries, nil
}

// saveSnapshot encodes entries and writes them to path. Every value is
// encoded before any byte hits the filesystem, so an *EncodeError leaves
// the previous file untouched. The write goes to a temp file in the same
// directory and is renamed into place, so an interrupted or failed save
// never leaves a half-written snapshot behind.
func saveSnapshot[V any](afs afero.Fs, path string, entries []Entry[V], codec c.Codec[V]) error {
	recs := make([]wire.Record, 0, len(entries))
	for _, e := range entries {
		payload, err := codec.Encode(e.value)
		if err != nil {
			return &EncodeError{Key: e.key.String(), Err: err}
		}
		recs = append(recs, wire.Record{Key: e.key.String(), Payload: payload})
	}
	raw := wire.EncodeSnapshot(recs)

	tmp, err := afero.TempFile(afs, filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return &IOError{Op: "create temp", Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = afs.Remove(tmpName)
		return &IOError{Op: "write", Path: tmpName, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = afs.Remove(tmpName)
		return &IOError{Op: "close", Path: tmpName, Err: err}
	}
	if err := afs.Rename(tmpName, path); err != nil {
		_ = afs.Remove(tmpName)
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
