package scrypt

import "github.com/opd-ai/scryptkdf/salsa20/salsa"

// blockCopy copies n bytes from src into dst.
func blockCopy(dst, src []byte, n int) {
	copy(dst, src[:n])
}

// blockXOR XORs n bytes from src into dst, in place.
func blockXOR(dst, src []byte, n int) {
	for i, v := range src[:n] {
		dst[i] ^= v
	}
}

// blockMix implements scrypt's BlockMix (RFC 7914 §4), consuming 2r 64-byte
// sub-blocks of b and writing the even/odd-interleaved result back into b.
// y is scratch space of the same size as b, supplied by the caller so that
// romix can reuse one buffer across all of its BlockMix calls.
//
// b's length must be a positive multiple of 128; callers (romix) are
// responsible for that invariant, since BlockMix itself is only ever called
// on caller-controlled scrypt working blocks.
func blockMix(b, y []byte, r int) {
	var x [64]byte

	blockCopy(x[:], b[(2*r-1)*64:], 64)

	for i := 0; i < 2*r*64; i += 64 {
		blockXOR(x[:], b[i:], 64)
		salsa.Core208(&x, &x)
		blockCopy(y[i:], x[:], 64)
	}

	// Interleave: even-indexed sub-blocks first, then odd-indexed.
	for i := 0; i < r; i++ {
		blockCopy(b[i*64:], y[i*2*64:], 64)
	}
	for i := 0; i < r; i++ {
		blockCopy(b[(i+r)*64:], y[(i*2+1)*64:], 64)
	}
}
