package crypto

import "runtime"

// Wipe zeroes every buffer. Used on decrypted key material once it has
// been copied into typed keys.
func Wipe(bufs ...[]byte) {
	for _, b := range bufs {
		clear(b)
		runtime.KeepAlive(b)
	}
}
