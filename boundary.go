package crc8x

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"unsafe"
)

var (
	// ErrNilPointer is returned when a host passes a nil pointer with a non-zero length.
	ErrNilPointer = errors.New("crc8x: nil pointer with non-zero length")
	// ErrTooLarge is returned when a host length cannot be addressed on this platform.
	ErrTooLarge = errors.New("crc8x: length exceeds addressable memory")
)

// Diagnostic receives a single integer from the boundary layer, mirroring
// a host-provided logging import. The checksum itself never calls it.
type Diagnostic func(v uint32)

// SlogDiagnostic returns a Diagnostic that records values on l.
// If l is nil, slog.Default is used.
func SlogDiagnostic(l *slog.Logger) Diagnostic {
	if l == nil {
		l = slog.Default()
	}
	return func(v uint32) {
		l.Info("crc8x diagnostic", slog.Uint64("value", uint64(v)))
	}
}

// ChecksumPointer computes the checksum of n bytes starting at ptr.
//
// The caller must guarantee that ptr references at least n readable bytes
// for the duration of the call. Only the nil and size cases can be detected.
func ChecksumPointer(ptr unsafe.Pointer, n uint32) (uint32, error) {
	p, err := view(ptr, n)
	if err != nil {
		return 0, err
	}
	return Checksum(p), nil
}

func view(ptr unsafe.Pointer, n uint32) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	if ptr == nil {
		return nil, fmt.Errorf("%w: length %d", ErrNilPointer, n)
	}
	if uint64(n) > math.MaxInt {
		return nil, fmt.Errorf("%w: length %d", ErrTooLarge, n)
	}
	return unsafe.Slice((*byte)(ptr), int(n)), nil
}
