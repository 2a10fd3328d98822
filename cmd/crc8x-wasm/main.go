//go:build wasip1

package main

import "unsafe"

//go:wasmimport env logInt
func logInt(v uint32)

var exp = newExports(logInt)

//go:wasmexport crc32
func crc32(ptr unsafe.Pointer, length uint32) uint32 {
	return exp.checksum(ptr, length)
}

//go:wasmexport alloc
func alloc(size uint32) unsafe.Pointer {
	return exp.alloc(size)
}

//go:wasmexport free
func free(ptr unsafe.Pointer) {
	exp.free(ptr)
}
