// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package salsa provides the Salsa20/8 core permutation used by scrypt's
// BlockMix step. This is the fixed-size 64-byte permutation from Bernstein's
// Salsa20, reduced to 8 rounds (4 double-rounds); it is not a keystream
// generator and has no notion of key, nonce, or counter.
package salsa

import "encoding/binary"

// Core208 reads a 64-byte little-endian word block in, applies 4 double-rounds
// of the Salsa20 permutation, and adds the result back into the original
// input (mod 2^32 per word), writing the sum to out. out and in may point to
// the same array.
func Core208(out, in *[64]byte) {
	var x [16]uint32
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(in[i*4:])
	}
	j := x

	for i := 0; i < 4; i++ {
		doubleRound(&j)
	}

	for i, v := range j {
		binary.LittleEndian.PutUint32(out[i*4:], v+x[i])
	}
}

// doubleRound performs one column round followed by one row round, per the
// Salsa20 specification. Four calls make up the 8-round core used by scrypt.
func doubleRound(x *[16]uint32) {
	// Column round: operate on the four columns of the 4x4 state.
	x[4] ^= rotl(x[0]+x[12], 7)
	x[8] ^= rotl(x[4]+x[0], 9)
	x[12] ^= rotl(x[8]+x[4], 13)
	x[0] ^= rotl(x[12]+x[8], 18)

	x[9] ^= rotl(x[5]+x[1], 7)
	x[13] ^= rotl(x[9]+x[5], 9)
	x[1] ^= rotl(x[13]+x[9], 13)
	x[5] ^= rotl(x[1]+x[13], 18)

	x[14] ^= rotl(x[10]+x[6], 7)
	x[2] ^= rotl(x[14]+x[10], 9)
	x[6] ^= rotl(x[2]+x[14], 13)
	x[10] ^= rotl(x[6]+x[2], 18)

	x[3] ^= rotl(x[15]+x[11], 7)
	x[7] ^= rotl(x[3]+x[15], 9)
	x[11] ^= rotl(x[7]+x[3], 13)
	x[15] ^= rotl(x[11]+x[7], 18)

	// Row round: operate on the four rows of the 4x4 state.
	x[1] ^= rotl(x[0]+x[3], 7)
	x[2] ^= rotl(x[1]+x[0], 9)
	x[3] ^= rotl(x[2]+x[1], 13)
	x[0] ^= rotl(x[3]+x[2], 18)

	x[6] ^= rotl(x[5]+x[4], 7)
	x[7] ^= rotl(x[6]+x[5], 9)
	x[4] ^= rotl(x[7]+x[6], 13)
	x[5] ^= rotl(x[4]+x[7], 18)

	x[11] ^= rotl(x[10]+x[9], 7)
	x[8] ^= rotl(x[11]+x[10], 9)
	x[9] ^= rotl(x[8]+x[11], 13)
	x[10] ^= rotl(x[9]+x[8], 18)

	x[12] ^= rotl(x[15]+x[14], 7)
	x[13] ^= rotl(x[12]+x[15], 9)
	x[14] ^= rotl(x[13]+x[12], 13)
	x[15] ^= rotl(x[14]+x[13], 18)
}

func rotl(v uint32, n uint) uint32 {
	return v<<n | v>>(32-n)
}
