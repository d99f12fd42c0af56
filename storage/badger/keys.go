package badger

import (
	"encoding/binary"
)

// Key prefixes for different data types
const (
	notePrefix = "note:"
	noteSeq    = "noteseq"
)

// makeNoteKey generates a key for a note by insertion sequence.
// Format: prefix + big-endian sequence, so iteration yields insertion order.
func makeNoteKey(seq uint64) []byte {
	buf := make([]byte, len(notePrefix)+8)
	offset := copy(buf, notePrefix)
	binary.BigEndian.PutUint64(buf[offset:], seq)
	return buf
}
