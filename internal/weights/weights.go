// Package weights loads raw int8 weight matrices from disk.
package weights

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/mmap"
)

// ReadFile fills dst from the raw binary file at path, one byte per int8
// value in row-major order. The file must hold exactly len(dst) bytes; any
// other size is an error, caught before a single kernel iteration runs.
func ReadFile(dst []int8, path string) error {
	r, err := mmap.Open(path)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer r.Close()

	if r.Len() != len(dst) {
		return fmt.Errorf("size mismatch: file %s holds %d bytes, expected %d", path, r.Len(), len(dst))
	}
	if len(dst) == 0 {
		return nil
	}

	buf := unsafe.Slice((*byte)(unsafe.Pointer(&dst[0])), len(dst))
	if _, err := r.ReadAt(buf, 0); err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	return nil
}
