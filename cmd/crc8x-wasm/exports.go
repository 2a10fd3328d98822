// Command crc8x-wasm exposes the checksum to a WebAssembly host.
//
// Build as a reactor module:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o crc8x.wasm ./cmd/crc8x-wasm
//
// The host obtains memory with alloc, copies its input there, calls crc32
// with the returned pointer and length, and releases the buffer with free.
// Rejected calls return 0 and report the length through the env.logInt import.
package main

import (
	"sync"
	"unsafe"

	"github.com/noxworld-dev/crc8x"
)

// exports implements the host-facing functions independently of the wasm
// directives, so it can be exercised on any platform.
type exports struct {
	diag crc8x.Diagnostic

	mu sync.Mutex
	// buffers handed to the host stay referenced here until freed
	bufs map[unsafe.Pointer][]byte
}

func newExports(diag crc8x.Diagnostic) *exports {
	if diag == nil {
		diag = func(uint32) {}
	}
	return &exports{diag: diag, bufs: make(map[unsafe.Pointer][]byte)}
}

func (e *exports) checksum(ptr unsafe.Pointer, length uint32) uint32 {
	sum, err := crc8x.ChecksumPointer(ptr, length)
	if err != nil {
		e.diag(length)
		return 0
	}
	return sum
}

func (e *exports) alloc(size uint32) unsafe.Pointer {
	if size == 0 {
		return nil
	}
	buf := make([]byte, size)
	ptr := unsafe.Pointer(&buf[0])
	e.mu.Lock()
	e.bufs[ptr] = buf
	e.mu.Unlock()
	return ptr
}

func (e *exports) free(ptr unsafe.Pointer) {
	e.mu.Lock()
	delete(e.bufs, ptr)
	e.mu.Unlock()
}

func (e *exports) live() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.bufs)
}

func main() {}
