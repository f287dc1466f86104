// Package pbkdf2 implements PBKDF2-HMAC-SHA256 as defined in RFC 2898,
// specialized to the PRF scrypt requires rather than a generic hash.Hash
// factory. See https://www.ietf.org/rfc/rfc2898.txt.
package pbkdf2

import (
	"encoding/binary"
	"errors"

	"github.com/opd-ai/scryptkdf/internal/hmac256"
)

// maxDKLen is (2^32 - 1) * hLen, the ceiling RFC 2898 places on derived key
// length for a PRF with a 32-byte output.
const maxDKLen = (uint64(1)<<32 - 1) * hmac256.Size

// Key derives a dkLen-byte key from password and salt using c iterations of
// HMAC-SHA256, per RFC 2898 §5.2.
//
// It returns a ParameterError-flavored error if c < 1 or dkLen is 0 or
// exceeds the RFC's ceiling of (2^32-1)*32 bytes.
func Key(password, salt []byte, c, dkLen int) ([]byte, error) {
	if c < 1 {
		return nil, errors.New("pbkdf2: iteration count must be >= 1")
	}
	if dkLen <= 0 {
		return nil, errors.New("pbkdf2: derived key length must be > 0")
	}
	if uint64(dkLen) > maxDKLen {
		return nil, errors.New("pbkdf2: derived key length too large")
	}

	hLen := hmac256.Size
	numBlocks := (dkLen + hLen - 1) / hLen

	dk := make([]byte, 0, numBlocks*hLen)
	prf := hmac256.NewKeyed(password)

	var block [4]byte
	buf := make([]byte, len(salt)+4)
	copy(buf, salt)

	for i := 1; i <= numBlocks; i++ {
		binary.BigEndian.PutUint32(block[:], uint32(i))
		copy(buf[len(salt):], block[:])

		u := prf.Sum(buf)
		t := u

		for j := 2; j <= c; j++ {
			u = prf.Sum(u[:])
			for k := range t {
				t[k] ^= u[k]
			}
		}

		dk = append(dk, t[:]...)
	}

	return dk[:dkLen], nil
}
