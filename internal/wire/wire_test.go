package wire

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"
)

func mustDecode(t *testing.T, b []byte) []Record {
	t.Helper()
	recs, err := DecodeSnapshot(b)
	if err != nil {
		t.Fatalf("DecodeSnapshot error: %v", err)
	}
	return recs
}

func TestSnapshotRoundTrip(t *testing.T) {
	cases := [][]Record{
		nil, // n=0
		{{Key: "a", Payload: []byte("x")}},
		{
			{Key: "a", Payload: []byte("x")},
			{Key: "b", Payload: nil}, // empty payload
			{Key: "c", Payload: []byte{9, 8, 7}},
		},
		// empty key is a valid identifier
		{{Key: "", Payload: []byte("anon")}},
		// duplicates allowed at this layer. decoder preserves both
		{
			{Key: "dup", Payload: []byte("old")},
			{Key: "dup", Payload: []byte("new")},
		},
		// keys longer than a u16 would allow
		{{Key: strings.Repeat("k", 0x10001), Payload: []byte("long")}},
	}
	for _, recs := range cases {
		enc := EncodeSnapshot(recs)
		got := mustDecode(t, enc)
		if len(got) != len(recs) {
			t.Fatalf("len mismatch: got %d want %d", len(got), len(recs))
		}
		for i := range recs {
			if got[i].Key != recs[i].Key || !bytes.Equal(got[i].Payload, recs[i].Payload) {
				t.Fatalf("record %d mismatch: got=%+v want=%+v", i, got[i], recs[i])
			}
		}
	}
}

func TestSnapshotRejectsTrailingBytes(t *testing.T) {
	enc := EncodeSnapshot([]Record{{Key: "k", Payload: []byte("v")}})
	enc = append(enc, 0xDE, 0xAD)
	if _, err := DecodeSnapshot(enc); err == nil {
		t.Fatalf("expected error on trailing bytes")
	}
}

func TestSnapshotCorruptHeadersAndLengths(t *testing.T) {
	enc := EncodeSnapshot([]Record{{Key: "k", Payload: []byte("xyz")}})

	// bad magic
	badMagic := append([]byte(nil), enc...)
	badMagic[0] = 'X'
	if _, err := DecodeSnapshot(badMagic); err == nil {
		t.Fatalf("expected error on bad magic")
	}

	// wrong version
	badVer := append([]byte(nil), enc...)
	badVer[4] = version + 1
	if _, err := DecodeSnapshot(badVer); err == nil {
		t.Fatalf("expected error on bad version")
	}

	// wrong kind
	badKind := append([]byte(nil), enc...)
	badKind[5] = kindSnapshot + 1
	if _, err := DecodeSnapshot(badKind); err == nil {
		t.Fatalf("expected error on bad kind")
	}

	// vlen beyond remaining
	// header: 4 magic +1 ver +1 kind +4 n = 10 bytes
	// record: 4 klen + klen + 4 vlen + payload
	klen := 1               // "k"
	offset := 10 + 4 + klen // start of vlen
	badVlen := append([]byte(nil), enc...)
	binary.BigEndian.PutUint32(badVlen[offset:offset+4], uint32(len("xyz")+1))
	if _, err := DecodeSnapshot(badVlen); err == nil {
		t.Fatalf("expected error on vlen beyond buffer")
	}

	// klen beyond remaining
	badKlen := append([]byte(nil), enc...)
	binary.BigEndian.PutUint32(badKlen[10:14], ^uint32(0))
	if _, err := DecodeSnapshot(badKlen); err == nil {
		t.Fatalf("expected error on klen beyond buffer")
	}

	// truncated buffer
	trunc := enc[:len(enc)-1]
	if _, err := DecodeSnapshot(trunc); err == nil {
		t.Fatalf("expected error on truncated buffer")
	}
}

func TestSnapshotBogusCount(t *testing.T) {
	// Declare a huge n with no record bodies -> must error, not panic or
	// over-allocate.
	var buf bytes.Buffer
	buf.Write([]byte{'P', 'S', 'N', 'P'})
	buf.WriteByte(version)
	buf.WriteByte(kindSnapshot)
	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], ^uint32(0)) // n = 0xFFFFFFFF
	buf.Write(u4[:])
	if _, err := DecodeSnapshot(buf.Bytes()); err == nil {
		t.Fatalf("expected error on bogus n with insufficient bytes")
	}
}

func TestSnapshotZeroCopyPayload(t *testing.T) {
	enc := EncodeSnapshot([]Record{{Key: "a", Payload: []byte("Z")}})
	got := mustDecode(t, enc)
	if len(got) != 1 || len(got[0].Payload) != 1 {
		t.Fatalf("unexpected decoded records")
	}

	// mutate decoded payload. should mutate underlying enc bytes
	got[0].Payload[0] = 'Q'

	got2 := mustDecode(t, enc)
	if got2[0].Payload[0] != 'Q' {
		t.Fatalf("expected zero-copy payload subslices into enc buffer")
	}
}
