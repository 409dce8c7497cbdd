package face

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/sfnt"
)

const (
	ttcTag             = 0x74746366 // "ttcf"
	dfontMagic         = 0x00000100
	ttcHeaderSize      = 12
	tableDirHeaderSize = 12
	tableRecordSize    = 16
)

// CollectionSize returns the number of faces in data: the header count
// for TTC, OTC and dfont collections, 1 for single fonts. Data whose
// header cannot be read also counts as a single font.
//
// A ttcf count is taken as declared, provided the offset table that
// follows it fits in data.
func CollectionSize(data []byte) int {
	if len(data) < 4 {
		return 1
	}
	switch binary.BigEndian.Uint32(data) {
	case ttcTag:
		if len(data) < ttcHeaderSize {
			return 1
		}
		n := int(binary.BigEndian.Uint32(data[8:]))
		if n == 0 || n > (len(data)-ttcHeaderSize)/4 {
			return 1
		}
		return n
	case dfontMagic:
		c, err := sfnt.ParseCollection(data)
		if err != nil || c.NumFonts() == 0 {
			return 1
		}
		return c.NumFonts()
	}
	return 1
}

// loadFace returns the go-text loader for face index of data.
//
// Collection faces are loaded one at a time, each through a view of the
// file in which the face's own table directory appears at offset 0. A
// damaged sibling therefore does not prevent the face from loading.
func loadFace(data []byte, index int) (*opentype.Loader, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("face: font data too short (%d bytes)", len(data))
	}
	switch binary.BigEndian.Uint32(data) {
	case ttcTag:
		r, err := newFaceReader(data, index)
		if err != nil {
			return nil, err
		}
		return opentype.NewLoader(r)
	case dfontMagic:
		lds, err := opentype.NewLoaders(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		if index >= len(lds) {
			return nil, ErrFaceIndexOutOfRange
		}
		return lds[index], nil
	}
	if index != 0 {
		return nil, ErrFaceIndexOutOfRange
	}
	return opentype.NewLoader(bytes.NewReader(data))
}

// faceReader serves dir at offset 0 and data everywhere else. Table
// offsets in a collection are absolute, so they resolve against data
// unchanged.
type faceReader struct {
	data []byte
	dir  []byte
	pos  int64
}

func newFaceReader(data []byte, index int) (*faceReader, error) {
	at := ttcHeaderSize + 4*index
	if len(data) < at+4 {
		return nil, fmt.Errorf("%w: header of face %d", ErrMalformedCollection, index)
	}
	offset := int(binary.BigEndian.Uint32(data[at:]))
	if offset+tableDirHeaderSize > len(data) {
		return nil, fmt.Errorf("%w: face %d at %d", ErrMalformedCollection, index, offset)
	}
	numTables := int(binary.BigEndian.Uint16(data[offset+4:]))
	end := min(offset+tableDirHeaderSize+numTables*tableRecordSize, len(data))
	return &faceReader{data: data, dir: data[offset:end]}, nil
}

var errNegativeOffset = errors.New("face: negative offset")

func (r *faceReader) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, errNegativeOffset
	}
	n := 0
	for n < len(p) {
		o := off + int64(n)
		var src []byte
		switch {
		case o < int64(len(r.dir)):
			src = r.dir[o:]
		case o < int64(len(r.data)):
			src = r.data[o:]
		default:
			return n, io.EOF
		}
		n += copy(p[n:], src)
	}
	return n, nil
}

func (r *faceReader) Read(p []byte) (int, error) {
	n, err := r.ReadAt(p, r.pos)
	r.pos += int64(n)
	if n > 0 {
		return n, nil
	}
	return n, err
}

func (r *faceReader) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = r.pos + offset
	case io.SeekEnd:
		abs = int64(len(r.data)) + offset
	default:
		return 0, errors.New("face: invalid whence")
	}
	if abs < 0 {
		return 0, errNegativeOffset
	}
	r.pos = abs
	return abs, nil
}
