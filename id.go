package textstate

import (
	"encoding/binary"
	"hash/fnv"
	"strconv"
)

// ID uniquely names one text state within a Manager. IDs are chosen by
// the caller's domain model and never generated internally; an ID must
// not be reused for a different logical text block while the first is
// still live.
//
// ID is comparable and usable as a map key. The zero ID is reserved as
// "no ID".
type ID uint64

// NilID is the zero ID, naming no state.
const NilID ID = 0

// NewID derives an ID from a string using FNV-1a.
func NewID(s string) ID {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return ID(h.Sum64())
}

// With derives a composite ID from an existing one, for addressing
// sub-blocks like NewID("inspector").With("tooltip").
func (id ID) With(s string) ID {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(s))
	return ID(h.Sum64())
}

// String returns the ID in hexadecimal, for logging.
func (id ID) String() string {
	return "0x" + strconv.FormatUint(uint64(id), 16)
}
