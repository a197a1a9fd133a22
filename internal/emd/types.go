package emd

import (
	"errors"
	"fmt"
)

// Object holds decoded geometry for one signature-delimited mesh object.
type Object struct {
	Verts     [][3]float32 // fixed-point samples divided by the format scale
	VertAddrs []uint32     // absolute byte offset of each vertex's first sample
	Faces     [][3]uint32  // triangle indices into Verts
}

// Model is the result of decoding one EMD file.
// Warnings collect the non-fatal conditions hit while decoding (bad
// chunk-table offset, loop guards tripping); whatever geometry was
// decoded before the condition is still present in Objects.
type Model struct {
	Objects  []Object
	Warnings []string
}

// ErrTruncated is returned when a read runs past the end of the buffer.
var ErrTruncated = errors.New("emd: truncated read")

// UnsupportedChunkError reports a chunk tag byte outside the known set
// {0, 52, 60}. Either an undocumented chunk kind or corrupted data; the
// decoder makes no attempt to guess and aborts the parse.
type UnsupportedChunkError struct {
	Raw    uint32 // full 4-byte chunk header word
	Offset uint32 // where the word was read
}

func (e *UnsupportedChunkError) Error() string {
	return fmt.Sprintf("emd: unsupported chunk 0x%08X at offset 0x%04X", e.Raw, e.Offset)
}
