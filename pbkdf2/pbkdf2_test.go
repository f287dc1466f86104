package pbkdf2

import (
	"bytes"
	"testing"
)

// Known-answer vectors for PBKDF2-HMAC-SHA256 from RFC 7914 §11.
func TestKey_RFC7914Vectors(t *testing.T) {
	tests := []struct {
		name     string
		password string
		salt     string
		c        int
		dkLen    int
		want     []byte
	}{
		{
			name:     "passwd/salt/c=1",
			password: "passwd",
			salt:     "salt",
			c:        1,
			dkLen:    64,
			want: []byte{
				0x55, 0xac, 0x04, 0x6e, 0x56, 0xe3, 0x08, 0x9f, 0xec, 0x16, 0x91, 0xc2, 0x25, 0x44, 0xb6, 0x05,
				0xf9, 0x41, 0x85, 0x21, 0x6d, 0xde, 0x04, 0x65, 0xe6, 0x8b, 0x9d, 0x57, 0xc2, 0x0d, 0xac, 0xbc,
				0x49, 0xca, 0x9c, 0xcc, 0xf1, 0x79, 0xb6, 0x45, 0x99, 0x16, 0x64, 0xb3, 0x9d, 0x77, 0xef, 0x31,
				0x7c, 0x71, 0xb8, 0x45, 0xb1, 0xe3, 0x0b, 0xd5, 0x09, 0x11, 0x20, 0x41, 0xd3, 0xa1, 0x97, 0x83,
			},
		},
		{
			name:     "Password/NaCl/c=80000",
			password: "Password",
			salt:     "NaCl",
			c:        80000,
			dkLen:    64,
			want: []byte{
				0x4d, 0xdc, 0xd8, 0xf6, 0x0b, 0x98, 0xbe, 0x21, 0x83, 0x0c, 0xee, 0x5e, 0xf2, 0x27, 0x01, 0xf9,
				0x64, 0x1a, 0x44, 0x18, 0xd0, 0x4c, 0x04, 0x14, 0xae, 0xff, 0x08, 0x87, 0x6b, 0x34, 0xab, 0x56,
				0xa1, 0xd4, 0x25, 0xa1, 0x22, 0x58, 0x33, 0x54, 0x9a, 0xdb, 0x84, 0x1b, 0x51, 0xc9, 0xb3, 0x17,
				0x6a, 0x27, 0x2b, 0xde, 0xbb, 0xa1, 0xd0, 0x78, 0x47, 0x8f, 0x62, 0xb3, 0x97, 0xf3, 0x3c, 0x8d,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Key([]byte(tt.password), []byte(tt.salt), tt.c, tt.dkLen)
			if err != nil {
				t.Fatalf("Key() error = %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Key() = %x, want %x", got, tt.want)
			}
		})
	}
}

func TestKey_ParameterErrors(t *testing.T) {
	if _, err := Key([]byte("p"), []byte("s"), 0, 32); err == nil {
		t.Error("expected error for c=0")
	}
	if _, err := Key([]byte("p"), []byte("s"), 1, 0); err == nil {
		t.Error("expected error for dkLen=0")
	}
}

func TestKey_LengthMatchesRequest(t *testing.T) {
	for _, dkLen := range []int{1, 31, 32, 33, 64, 100} {
		dk, err := Key([]byte("p"), []byte("s"), 4, dkLen)
		if err != nil {
			t.Fatalf("Key() error = %v", err)
		}
		if len(dk) != dkLen {
			t.Errorf("len(Key()) = %d, want %d", len(dk), dkLen)
		}
	}
}
