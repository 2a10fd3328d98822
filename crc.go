// Package crc8x computes the reflected 32-bit CRC of byte buffers with the
// 0xEDB88320 polynomial using the slicing-by-8 algorithm.
package crc8x

import "sync"

// Poly is the bit-reversed generator polynomial used by this package.
const Poly = uint32(0xEDB88320)

// Size of a checksum in bytes.
const Size = 4

type tables struct {
	simple *Table
	slice  *SliceTable
}

func makeTables(poly uint32) tables {
	tab := simpleMakeTable(poly)
	return tables{simple: tab, slice: slicingMakeTable(tab)}
}

// loadTables builds the tables on first use. They are never modified after.
var loadTables = sync.OnceValue(func() tables {
	return makeTables(Poly)
})

// Checksum returns the CRC-32 checksum of p.
func Checksum(p []byte) uint32 {
	return Update(0, p)
}

// Update returns the result of adding the bytes in p to a checksum
// previously returned by Checksum or Update. Update(0, p) equals Checksum(p).
func Update(crc uint32, p []byte) uint32 {
	t := loadTables()
	return ^slicingUpdate(^crc, t.simple, t.slice, p)
}
