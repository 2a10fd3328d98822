// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license.

package crc8x

import "encoding/binary"

// Table is a 256-word table for reducing the CRC register by a single byte.
type Table [256]uint32

// SliceTable holds one Table per byte lane of the slicing-by-8 algorithm.
// Lane 0 is the simple Table itself.
type SliceTable [8]Table

// simpleMakeTable allocates and constructs a Table for the specified
// polynomial. The table is suitable for use with the simple algorithm
// (simpleUpdate).
func simpleMakeTable(poly uint32) *Table {
	t := new(Table)
	simplePopulateTable(poly, t)
	return t
}

// simplePopulateTable constructs a Table for the specified polynomial, suitable
// for use with simpleUpdate.
func simplePopulateTable(poly uint32, t *Table) {
	for i := 0; i < 256; i++ {
		crc := uint32(i)
		for j := 0; j < 8; j++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ poly
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
}

// slicingMakeTable derives the slicing-by-8 tables from a simple Table.
// Lane j holds the contribution of a byte that still has j lanes to travel.
func slicingMakeTable(tab *Table) *SliceTable {
	t := new(SliceTable)
	t[0] = *tab
	for j := 1; j < 8; j++ {
		for i := 0; i < 256; i++ {
			prev := t[j-1][i]
			t[j][i] = tab[byte(prev)] ^ (prev >> 8)
		}
	}
	return t
}

// simpleUpdate advances the raw CRC register over p one byte at a time.
// The caller handles the initial and final inversion.
func simpleUpdate(crc uint32, tab *Table, p []byte) uint32 {
	for _, v := range p {
		crc = tab[byte(crc)^v] ^ (crc >> 8)
	}
	return crc
}

// slicingUpdate advances the raw CRC register over p eight bytes at a time
// and finishes the remainder with simpleUpdate.
func slicingUpdate(crc uint32, tab *Table, tab8 *SliceTable, p []byte) uint32 {
	for len(p) >= 8 {
		crc ^= binary.LittleEndian.Uint32(p)
		crc = tab8[0][p[7]] ^ tab8[1][p[6]] ^ tab8[2][p[5]] ^ tab8[3][p[4]] ^
			tab8[4][crc>>24] ^ tab8[5][byte(crc>>16)] ^
			tab8[6][byte(crc>>8)] ^ tab8[7][byte(crc)]
		p = p[8:]
	}
	return simpleUpdate(crc, tab, p)
}
