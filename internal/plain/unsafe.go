package plain

import "unsafe"

// BufferToString converts without copying. The buffer must not be written afterwards.
func BufferToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
