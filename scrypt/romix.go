package scrypt

import "encoding/binary"

// integerify maps a 128*r-byte working block to an integer for ROMix's
// data-dependent indexing (RFC 7914 §4, "Integerify"): the low 8 bytes of
// the block's final 64-byte sub-block, read little-endian.
//
// Factored out of romix per the source's own TODO (its Integerify was an
// empty stub with the logic inlined at the call site); kept as its own
// function so it can be tested against the RFC vectors independently of the
// rest of ROMix.
func integerify(b []byte, r int) uint64 {
	return binary.LittleEndian.Uint64(b[(2*r-1)*64:])
}

// romix implements scrypt's ROMix (RFC 7914 §5): it fills v with N
// successive BlockMix outputs starting from b, then makes N data-dependent
// passes back over v, and returns the result in b.
//
// v must be exactly N*128*r bytes and xy exactly 256*r bytes; both are
// caller-owned scratch buffers so that scrypt.Key can allocate them once per
// ROMix invocation (or once per worker, when p > 1) rather than once per
// call. Preconditions (b's length a positive multiple of 128, 1 <= log2N <
// 16*r) are enforced by Key before romix is ever invoked.
func romix(b []byte, r, n int, v, xy []byte) {
	x := xy
	y := xy[128*r:]

	blockCopy(x, b, 128*r)

	for i := 0; i < n; i++ {
		blockCopy(v[i*128*r:], x, 128*r)
		blockMix(x, y, r)
	}

	for i := 0; i < n; i++ {
		j := int(integerify(x, r) & uint64(n-1))
		blockXOR(x, v[j*128*r:], 128*r)
		blockMix(x, y, r)
	}

	blockCopy(b, x, 128*r)
}
