package crc8x

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrChecksum is returned by Reader.VerifyCRC when the trailer does not match the data.
var ErrChecksum = errors.New("crc8x: checksum mismatch")

// NewReader creates a reader that checksums everything read from r.
func NewReader(r io.Reader) *Reader {
	rd := &Reader{}
	rd.Reset(r)
	return rd
}

// Reader tracks the checksum of the data read through it.
type Reader struct {
	r   io.Reader
	n   int64
	crc uint32
}

func (r *Reader) Reset(s io.Reader) {
	r.r = s
	r.n = 0
	r.crc = 0
}

// CRC returns the checksum of the bytes read so far.
func (r *Reader) CRC() uint32 {
	return r.crc
}

// Consumed returns a number of bytes read, excluding CRC trailers.
func (r *Reader) Consumed() int64 {
	return r.n
}

func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	r.crc = Update(r.crc, p[:n])
	r.n += int64(n)
	return n, err
}

// VerifyCRC reads a little-endian uint32 trailer, as written by Writer.WriteCRC,
// and compares it with the checksum of the data read so far.
func (r *Reader) VerifyCRC() error {
	var b [Size]byte
	if _, err := io.ReadFull(r.r, b[:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return err
	}
	if want := binary.LittleEndian.Uint32(b[:]); want != r.crc {
		return fmt.Errorf("%w: trailer %#08x, data %#08x", ErrChecksum, want, r.crc)
	}
	return nil
}
