// Package pwhash implements a self-describing scrypt password-hash record:
// encoding (HashPassword) and verification (CheckPassword) of a passphrase
// against a `$s0$...` string. It is built from a decoded Record type,
// encode/Parse helpers, and a boolean CheckPassword with an error-returning
// Compare twin, keyed to scrypt's parameter set and wire format.
package pwhash

import (
	"bytes"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/opd-ai/scryptkdf/scrypt"
)

// Logger receives diagnostic events for malformed hash records encountered
// by CheckPassword. Spec: parsing failure and password mismatch must both
// collapse to a single boolean false for callers, but FormatError MAY be
// reported via a side channel for diagnostics — this is that channel. It
// defaults to a no-op logger; callers that want visibility replace it, the
// same way dht.newConn takes an explicit *zap.Logger rather than reaching
// for a global.
var Logger = zap.NewNop()

const (
	// DefaultCostFactor, DefaultR, DefaultP are RFC 7914's recommended
	// parameters for interactive logins as of 2009: N=2^14, r=8, p=1.
	DefaultCostFactor = 14
	DefaultR          = 8
	DefaultP          = 1

	saltLen = 16
	keyLen  = 32

	version = "s0"
)

// FormatError reports a malformed `$s0$...` hash record: a missing field,
// wrong version tag, bad hex, bad base64, or a decoded salt/key of the
// wrong length.
type FormatError string

func (e FormatError) Error() string { return "pwhash: " + string(e) }

// Record holds the decoded fields of a `$s0$...` hash string.
type Record struct {
	CostFactor, R, P int
	Salt             []byte
	Key              []byte
}

func packParams(costFactor, r, p int) uint32 {
	return uint32(costFactor)<<16 | uint32(r)<<8 | uint32(p)
}

func unpackParams(word uint32) (costFactor, r, p int) {
	return int(word >> 16 & 0xffff), int(word >> 8 & 0xff), int(word & 0xff)
}

// HashPassword derives a password-hash record using RFC 7914's recommended
// interactive-login parameters (N=2^14, r=8, p=1) and a fresh 16-byte salt
// drawn from crypto/rand.
func HashPassword(password string) (string, error) {
	return HashPasswordParams(password, DefaultCostFactor, DefaultR, DefaultP)
}

// HashPasswordParams derives a password-hash record with caller-specified
// scrypt parameters.
func HashPasswordParams(password string, costFactor, r, p int) (string, error) {
	// The wire format packs r and p into one byte each (spec §4.7); reject
	// what the record can't represent before deriving anything.
	if r < 1 || r > 255 {
		return "", errors.New("pwhash: r must be in [1, 255] to fit the hash-record format")
	}
	if p < 1 || p > 255 {
		return "", errors.New("pwhash: p must be in [1, 255] to fit the hash-record format")
	}

	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", &scrypt.RngError{Cause: err}
	}

	key, err := scrypt.Key([]byte(password), salt, costFactor, r, p, keyLen)
	if err != nil {
		return "", err
	}

	return encode(costFactor, r, p, salt, key), nil
}

// encode renders (costFactor, r, p, salt, key) as spec §4.7's wire format:
// `$s0$` hex8 `$` base64(salt) `$` base64(key).
func encode(costFactor, r, p int, salt, key []byte) string {
	word := packParams(costFactor, r, p)

	return fmt.Sprintf("$%s$%08x$%s$%s",
		version,
		word,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(key),
	)
}

// Parse decodes a `$s0$...` hash record without comparing it against any
// passphrase. It is exported so callers can inspect stored parameters (for
// example, to decide whether a record needs rehashing to stronger cost).
func Parse(encoded string) (*Record, error) {
	fields := bytes.Split([]byte(encoded), []byte("$"))
	// bytes.Split("$s0$hex$salt$key", "$") -> ["", "s0", "hex", "salt", "key"]
	if len(fields) != 5 || len(fields[0]) != 0 {
		return nil, FormatError("malformed record: wrong field count")
	}
	if string(fields[1]) != version {
		return nil, FormatError(fmt.Sprintf("unsupported version tag %q", fields[1]))
	}
	if len(fields[2]) != 8 {
		return nil, FormatError("malformed params: expected 8 hex digits")
	}

	var word uint32
	if _, err := fmt.Sscanf(string(fields[2]), "%08x", &word); err != nil {
		return nil, FormatError("malformed params: not valid hex")
	}
	costFactor, r, p := unpackParams(word)

	salt, err := base64.StdEncoding.DecodeString(string(fields[3]))
	if err != nil {
		return nil, FormatError("malformed salt: not valid base64")
	}
	key, err := base64.StdEncoding.DecodeString(string(fields[4]))
	if err != nil {
		return nil, FormatError("malformed key: not valid base64")
	}
	if len(salt) != saltLen {
		return nil, FormatError("decoded salt has unexpected length")
	}
	if len(key) != keyLen {
		return nil, FormatError("decoded key has unexpected length")
	}

	return &Record{CostFactor: costFactor, R: r, P: p, Salt: salt, Key: key}, nil
}

// CheckPassword reports whether password matches the `$s0$...` record
// encoded. Per spec §4.7/§7, a malformed record and a genuine mismatch are
// indistinguishable to the caller — both return false — so that a verifier
// can't be used as an oracle to tell corrupted storage from a wrong
// password. Malformed records are logged (never returned) for operators.
func CheckPassword(password, encoded string) bool {
	rec, err := Parse(encoded)
	if err != nil {
		Logger.Warn("pwhash: malformed hash record", zap.Error(err))
		return false
	}

	candidate, err := scrypt.Key([]byte(password), rec.Salt, rec.CostFactor, rec.R, rec.P, len(rec.Key))
	if err != nil {
		Logger.Warn("pwhash: scrypt.Key failed during verification", zap.Error(err))
		return false
	}

	return subtle.ConstantTimeCompare(candidate, rec.Key) == 1
}

// errMismatchedHashAndPassword mirrors argon2.ErrMismatchedHashAndPassword
// for callers that prefer an error-returning comparison over a boolean.
var errMismatchedHashAndPassword = errors.New("pwhash: password does not match stored hash")

// Compare is CheckPassword's error-returning twin, matching the
// argon2.CompareHashAndPassword / bcrypt.CompareHashAndPassword shape used
// elsewhere in this corpus. It still collapses FormatError into the same
// mismatch error spec §7 mandates for the boolean form.
func Compare(encoded, password string) error {
	if CheckPassword(password, encoded) {
		return nil
	}
	return errMismatchedHashAndPassword
}
