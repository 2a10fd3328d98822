package crc8x

import (
	"encoding/binary"
	"io"
)

// NewWriter creates a writer that checksums everything passed to w.
func NewWriter(w io.Writer) *Writer {
	wr := &Writer{}
	wr.Reset(w)
	return wr
}

// Writer forwards data to the underlying writer while tracking its checksum.
type Writer struct {
	w   io.Writer
	off int64
	crc uint32
}

// Reset internal state and assign a new underlying writer to it.
func (w *Writer) Reset(d io.Writer) {
	w.w = d
	w.off = 0
	w.ResetCRC()
}

// ResetCRC resets CRC internal state.
func (w *Writer) ResetCRC() {
	w.crc = 0
}

// CRC returns current CRC checksum.
func (w *Writer) CRC() uint32 {
	return w.crc
}

// Written returns a number of bytes written, including CRC trailers.
func (w *Writer) Written() int64 {
	return w.off
}

// Write implements io.Writer. Only bytes accepted by the underlying writer
// are added to the checksum.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.crc = Update(w.crc, p[:n])
	w.off += int64(n)
	return n, err
}

// WriteCRC appends the current checksum as a little-endian uint32.
// The trailer itself is not added to the checksum.
func (w *Writer) WriteCRC() error {
	var b [Size]byte
	binary.LittleEndian.PutUint32(b[:], w.crc)
	n, err := w.w.Write(b[:])
	w.off += int64(n)
	if err == nil && n != Size {
		err = io.ErrShortWrite
	}
	return err
}
