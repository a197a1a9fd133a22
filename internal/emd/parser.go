package emd

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Fixed layout of the EMD container, recovered by reverse engineering.
// There is no public specification; the constants below are the format.
const (
	scale = 3276.8 // signed 16-bit fixed point → model units

	chunkVertex   = 0  // vertex chunk: 36-byte blocks of three records
	chunkTriangle = 52 // triangle faces: 12-byte records
	chunkQuad     = 60 // quad faces: 12-byte records

	// Loop guard applied at every loop scope. The format has no
	// structural termination guarantee against corrupted headers.
	defaultLoopLimit = 9999
)

// ParseFile reads and decodes an EMD file.
func ParseFile(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("emd: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes every mesh object in data.
//
// A truncated read inside a chunk body or an unknown chunk tag is fatal
// and returns an error. Recoverable conditions (chunk-table offset
// outside the declared file size, a cursor running past it mid-parse,
// loop guards tripping) end decoding early; the objects decoded up to
// that point are returned and the condition is noted in Model.Warnings.
func Parse(data []byte) (*Model, error) {
	src := &source{data: data}
	h, err := readHeader(src)
	if err != nil {
		return nil, fmt.Errorf("emd: header: %w", err)
	}
	d := &decoder{src: src, fileSize: h.fileSize, loopLimit: defaultLoopLimit}
	return d.decode(h.tableOffset)
}

// source is the only point of byte access during a parse.
type source struct {
	data []byte
}

// readUint reads width bytes (1, 2 or 4) little-endian at off.
func (s *source) readUint(off, width uint32) (uint32, error) {
	if int64(off)+int64(width) > int64(len(s.data)) {
		return 0, fmt.Errorf("%w: %d bytes at offset 0x%X", ErrTruncated, width, off)
	}
	switch width {
	case 1:
		return uint32(s.data[off]), nil
	case 2:
		return uint32(binary.LittleEndian.Uint16(s.data[off:])), nil
	default:
		return binary.LittleEndian.Uint32(s.data[off:]), nil
	}
}

// header holds the four fixed-offset fields and the two derived values
// every other offset in the file is computed from.
type header struct {
	addend   uint32 // 0x08
	sizeBase uint32 // 0x0A
	fieldC   uint32 // 0x0C
	fieldE   uint32 // 0x0E

	fileSize    uint32 // sizeBase<<2 + addend
	tableOffset uint32 // addend + fieldC*4 + fieldE*8
}

func readHeader(src *source) (header, error) {
	var h header
	var err error
	if h.addend, err = src.readUint(0x08, 2); err != nil {
		return header{}, err
	}
	if h.sizeBase, err = src.readUint(0x0A, 2); err != nil {
		return header{}, err
	}
	if h.fieldC, err = src.readUint(0x0C, 2); err != nil {
		return header{}, err
	}
	if h.fieldE, err = src.readUint(0x0E, 2); err != nil {
		return header{}, err
	}
	h.fileSize = h.sizeBase<<2 + h.addend
	h.tableOffset = h.addend + h.fieldC*4 + h.fieldE*8
	return h, nil
}

type decoder struct {
	src       *source
	fileSize  uint32 // declared size from the header, not len(data)
	loopLimit int
	warnings  []string
}

func (d *decoder) warnf(format string, args ...any) {
	d.warnings = append(d.warnings, fmt.Sprintf(format, args...))
}

// decode walks the chunk table as a signature-delimited object stream.
// Each object opens with a 4-byte signature; a recurrence of that value
// ends the object, and the recurrence position starts the next one.
// Running out of declared file size while looking for the next chunk
// word ends the whole parse with whatever was decoded so far.
func (d *decoder) decode(off uint32) (*Model, error) {
	m := &Model{}
	if off+4 > d.fileSize {
		d.warnf("chunk table offset 0x%X outside file size %d", off, d.fileSize)
		m.Warnings = d.warnings
		return m, nil
	}

	outer := 0
	for {
		outer++
		if outer > d.loopLimit {
			d.warnf("object loop limit exceeded at offset 0x%X", off)
			break
		}

		// Bounds were verified before entering, so a failure here means
		// the file is shorter than its header claims.
		sig, err := d.src.readUint(off, 4)
		if err != nil {
			return nil, err
		}

		cur := off + 4
		if cur+4 > d.fileSize {
			// The stream ends at this signature; no object opens here.
			break
		}

		var obj Object
		eof := false
		inner := 0
		for {
			inner++
			if inner > d.loopLimit {
				d.warnf("chunk loop limit exceeded at offset 0x%X", cur)
				eof = true
				break
			}
			if cur+4 > d.fileSize {
				eof = true
				break
			}
			word, err := d.src.readUint(cur, 4)
			if err != nil {
				return nil, err
			}
			if word == sig {
				// End of object; cur is the next object's signature.
				break
			}
			cur, err = d.decodeChunk(cur, word, &obj)
			if err != nil {
				return nil, err
			}
		}

		m.Objects = append(m.Objects, obj)
		if eof {
			break
		}
		off = cur
		if off+4 > d.fileSize {
			break
		}
	}

	m.Warnings = d.warnings
	return m, nil
}

// decodeChunk consumes one chunk starting at the 4-byte header word and
// returns the offset of the first byte past its body. The tag lives in
// the top byte of the word, the element count in the bottom byte.
func (d *decoder) decodeChunk(off, word uint32, obj *Object) (uint32, error) {
	count := word & 0xFF
	body := off + 4
	switch word >> 24 {
	case chunkVertex:
		return d.decodeVertices(body, count, obj)
	case chunkTriangle:
		return d.decodeFaces(body, count, obj, true)
	case chunkQuad:
		return d.decodeFaces(body, count, obj, false)
	default:
		return 0, &UnsupportedChunkError{Raw: word, Offset: off}
	}
}

// decodeVertices reads count vertices starting at off. Records are
// grouped three to a 36-byte block at sub-offsets 0, 12 and 24; the
// count%3 leftovers follow at a flat 12-byte stride.
func (d *decoder) decodeVertices(off, count uint32, obj *Object) (uint32, error) {
	guard := 0
	for count >= 3 {
		guard++
		if guard > d.loopLimit {
			d.warnf("vertex loop limit exceeded at offset 0x%X", off)
			return off, nil
		}
		for _, rel := range [3]uint32{0, 12, 24} {
			if err := d.readVertex(off+rel, obj); err != nil {
				return 0, err
			}
		}
		off += 36
		count -= 3
	}
	for count > 0 {
		guard++
		if guard > d.loopLimit {
			d.warnf("vertex loop limit exceeded at offset 0x%X", off)
			return off, nil
		}
		if err := d.readVertex(off, obj); err != nil {
			return 0, err
		}
		off += 12
		count--
	}
	return off, nil
}

func (d *decoder) readVertex(off uint32, obj *Object) error {
	var v [3]float32
	for i := uint32(0); i < 3; i++ {
		raw, err := d.src.readUint(off+i*2, 2)
		if err != nil {
			return err
		}
		v[i] = float32(int16(raw)) / scale
	}
	obj.Verts = append(obj.Verts, v)
	obj.VertAddrs = append(obj.VertAddrs, off)
	return nil
}

// decodeFaces reads count face records of 12 bytes each; only the
// leading u32 carries indices. The shift/mask pairs per field are
// irregular; they come straight from the reverse-engineered importer.
func (d *decoder) decodeFaces(off, count uint32, obj *Object, triangle bool) (uint32, error) {
	// Winding toggle for the strip-like triangle encoding. Starts on
	// the swapped order: the first face always emits (f1,f3,f2).
	neg := true
	guard := 0
	for count > 0 {
		guard++
		if guard > d.loopLimit {
			d.warnf("face loop limit exceeded at offset 0x%X", off)
			return off, nil
		}
		w, err := d.src.readUint(off, 4)
		if err != nil {
			return 0, err
		}
		if triangle {
			f1 := ((w << 3) & 2040) >> 3
			f2 := ((w >> 5) & 2040) >> 3
			f3 := ((w >> 13) & 2040) >> 3
			if neg {
				obj.Faces = append(obj.Faces, [3]uint32{f1, f3, f2})
			} else {
				obj.Faces = append(obj.Faces, [3]uint32{f1, f2, f3})
			}
		} else {
			f1 := ((w << 3) & 1016) >> 3
			f2 := ((w >> 4) & 1016) >> 3
			f3 := ((w >> 11) & 1016) >> 3
			f4 := ((w >> 18) & 1016) >> 3
			// Every 3-subset of the four indices, not a diagonal split.
			// That is what the original importer emits; kept bit-exact.
			obj.Faces = append(obj.Faces,
				[3]uint32{f1, f2, f3},
				[3]uint32{f1, f2, f4},
				[3]uint32{f1, f3, f4},
				[3]uint32{f2, f3, f4})
		}
		neg = !neg
		off += 12
		count--
	}
	return off, nil
}
