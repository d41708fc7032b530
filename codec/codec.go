// Package codec defines how cached values are serialized into snapshot
// payloads and back. A Codec must round-trip every value field losslessly:
// Decode(Encode(v)) must yield a value equal to v for any v the caller
// stores. The typed key is framed separately by the snapshot format and is
// never part of a payload.
package codec

// Codec encodes/decodes values V to []byte for persisted storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
