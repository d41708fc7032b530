// Package wire implements the snapshot file framing. A snapshot is an
// ordered sequence of (key, payload) records; payloads are opaque bytes
// produced by the caller's value codec. The framing is self-describing
// (magic, version, kind, explicit lengths) so foreign or truncated files
// are rejected as corrupt instead of being misread.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version      byte = 1
	kindSnapshot byte = 1
)

var (
	ErrCorrupt = errors.New("wire: corrupt snapshot")
	magic4     = [...]byte{'P', 'S', 'N', 'P'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Record is one persisted entry: the raw identifier string and the encoded
// value. The identifier's compile-time type tag is never part of the file.
type Record struct {
	Key     string
	Payload []byte
}

// Snapshot layout:
//
//	magic(4) | ver(1) | kind(1=snapshot) | n(u32 be)
//	keyLen(u32 be) | key(keyLen) | vlen(u32 be) | payload(vlen)  * n
//
// Keys of any length are valid, including empty.
func EncodeSnapshot(recs []Record) []byte {
	total := 4 + 1 + 1 + 4
	for _, r := range recs {
		total += 4 + len(r.Key) + 4 + len(r.Payload)
	}

	var buf bytes.Buffer
	buf.Grow(total)

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindSnapshot)

	var u4 [4]byte

	binary.BigEndian.PutUint32(u4[:], uint32(len(recs)))
	buf.Write(u4[:])

	for _, r := range recs {
		binary.BigEndian.PutUint32(u4[:], uint32(len(r.Key)))
		buf.Write(u4[:])
		buf.WriteString(r.Key)

		binary.BigEndian.PutUint32(u4[:], uint32(len(r.Payload)))
		buf.Write(u4[:])
		buf.Write(r.Payload)
	}

	return buf.Bytes()
}

// DecodeSnapshot parses b into records. Payload slices alias b (zero-copy);
// callers that keep payloads past the lifetime of b must copy them.
// Trailing bytes after the declared records are corruption.
func DecodeSnapshot(b []byte) ([]Record, error) {
	const hdr = 4 + 1 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version || b[5] != kindSnapshot {
		return nil, ErrCorrupt
	}

	off := 6
	n := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4

	recs := make([]Record, 0, min(n, 1024))
	for i := 0; i < n; i++ {
		if off+4 > len(b) {
			return nil, ErrCorrupt
		}
		klen := int(binary.BigEndian.Uint32(b[off : off+4]))
		off += 4
		if klen < 0 || klen > len(b)-off {
			return nil, ErrCorrupt
		}
		key := string(b[off : off+klen])
		off += klen

		if off+4 > len(b) {
			return nil, ErrCorrupt
		}
		vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
		off += 4
		if vlen < 0 || vlen > len(b)-off {
			return nil, ErrCorrupt
		}
		recs = append(recs, Record{Key: key, Payload: b[off : off+vlen]})
		off += vlen
	}

	if off != len(b) {
		return nil, ErrCorrupt
	}
	return recs, nil
}
