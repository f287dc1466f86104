// Package hmac256 implements HMAC-SHA256 per RFC 2104, using crypto/sha256
// as its underlying compression primitive. It exists as an explicit,
// independently testable building block for pbkdf2 rather than a thin
// wrapper around crypto/hmac, so that scrypt's PBKDF2 layer has a single,
// auditable PRF implementation.
package hmac256

import "crypto/sha256"

// BlockSize is SHA-256's block size, B in RFC 2104.
const BlockSize = sha256.BlockSize

// Size is SHA-256's digest size, L in RFC 2104.
const Size = sha256.Size

// MAC computes HMAC-SHA256(key, message).
//
//   - If len(key) > BlockSize, key is replaced by SHA-256(key).
//   - key is zero-padded to BlockSize.
//   - ipad = key XOR 0x36 repeated; opad = key XOR 0x5c repeated.
//   - result = SHA-256(opad || SHA-256(ipad || message))
func MAC(key, message []byte) [Size]byte {
	var block [BlockSize]byte
	if len(key) > BlockSize {
		sum := sha256.Sum256(key)
		copy(block[:], sum[:])
	} else {
		copy(block[:], key)
	}

	var ipad, opad [BlockSize]byte
	for i := 0; i < BlockSize; i++ {
		ipad[i] = block[i] ^ 0x36
		opad[i] = block[i] ^ 0x5c
	}

	inner := sha256.New()
	inner.Write(ipad[:])
	inner.Write(message)
	innerSum := inner.Sum(nil)

	outer := sha256.New()
	outer.Write(opad[:])
	outer.Write(innerSum)

	var out [Size]byte
	copy(out[:], outer.Sum(nil))
	return out
}

// MAC256 is a keyed MAC context that can be reused across successive
// messages sharing the same key, avoiding recomputation of ipad/opad on
// every call. This is the shape pbkdf2 uses in its inner loop.
type MAC256 struct {
	ipad, opad [BlockSize]byte
}

// NewKeyed derives the ipad/opad pair once for the given key.
func NewKeyed(key []byte) *MAC256 {
	m := new(MAC256)
	var block [BlockSize]byte
	if len(key) > BlockSize {
		sum := sha256.Sum256(key)
		copy(block[:], sum[:])
	} else {
		copy(block[:], key)
	}
	for i := 0; i < BlockSize; i++ {
		m.ipad[i] = block[i] ^ 0x36
		m.opad[i] = block[i] ^ 0x5c
	}
	return m
}

// Sum computes HMAC-SHA256 of message under the key fixed at NewKeyed time.
func (m *MAC256) Sum(message []byte) [Size]byte {
	inner := sha256.New()
	inner.Write(m.ipad[:])
	inner.Write(message)
	innerSum := inner.Sum(nil)

	outer := sha256.New()
	outer.Write(m.opad[:])
	outer.Write(innerSum)

	var out [Size]byte
	copy(out[:], outer.Sum(nil))
	return out
}
