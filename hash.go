package crc8x

import "hash"

// digest represents the partial evaluation of a checksum.
type digest struct {
	crc uint32
}

// New creates a new hash.Hash32 computing the checksum.
// Its Sum method will lay the value out in big-endian byte order.
func New() hash.Hash32 { return &digest{} }

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.crc = 0 }

func (d *digest) Write(p []byte) (int, error) {
	d.crc = Update(d.crc, p)
	return len(p), nil
}

func (d *digest) Sum32() uint32 { return d.crc }

func (d *digest) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
