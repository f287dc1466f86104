// Copyright 2012 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scrypt implements the scrypt key derivation function as defined in
// Colin Percival's paper "Stronger Key Derivation via Sequential Memory-Hard
// Functions" (http://www.tarsnap.com/scrypt/scrypt.pdf), RFC 7914.
package scrypt

import (
	"errors"
	"sync"
	"time"

	"github.com/opd-ai/scryptkdf/internal/metrics"
	"github.com/opd-ai/scryptkdf/pbkdf2"
)

const maxInt = int(^uint(0) >> 1)

// Key derives a keyLen-byte key from password and salt using the scrypt KDF.
//
// costFactor is log2(N): the CPU/memory cost exponent, in [1, 63], subject
// to the further constraint costFactor < 16*r imposed by ROMix's use of a
// 64-bit Integerify result. r is the block-size factor and p the
// parallelization factor; both must be >= 1, and r*p must satisfy
// r*p < 2^30 to keep p*128*r within a safely allocatable range.
//
// The recommended parameters for interactive logins as of 2009 are
// costFactor=14 (N=16384), r=8, p=1; see DefaultKey for a convenience
// wrapper using those values.
func Key(password, salt []byte, costFactor, r, p, keyLen int) (dk []byte, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			if _, ok := err.(ParameterError); ok {
				metrics.ObserveDerive(metrics.OutcomeParameterError, time.Since(start))
			} else {
				metrics.ObserveDerive(metrics.OutcomeInternalError, time.Since(start))
			}
			return
		}
		metrics.ObserveDerive(metrics.OutcomeOK, time.Since(start))
	}()

	if err := validateParams(costFactor, r, p, keyLen); err != nil {
		return nil, err
	}
	// validateParams already bounded 2^costFactor against maxInt/(128*r) in
	// uint64, so the truncation to int here is safe.
	n := int(uint64(1) << uint(costFactor))

	b, err := pbkdf2.Key(password, salt, 1, p*128*r)
	if err != nil {
		return nil, ParameterError(err.Error())
	}

	vBytes := uint64(n) * uint64(128*r)
	metrics.SetVArrayBytes(vBytes)

	if err := smixAll(b, r, n, p); err != nil {
		return nil, err
	}

	dk, err = pbkdf2.Key(password, b, 1, keyLen)
	if err != nil {
		return nil, ParameterError(err.Error())
	}
	return dk, nil
}

// DefaultKey derives a keyLen-byte key using RFC 7914's recommended interactive
// login parameters: N=2^14, r=8, p=1.
func DefaultKey(password, salt []byte, keyLen int) ([]byte, error) {
	return Key(password, salt, 14, 8, 1, keyLen)
}

// validateParams enforces spec §4.3/§4.6/§7's ParameterError conditions
// before any memory is allocated.
func validateParams(costFactor, r, p, keyLen int) error {
	if costFactor < 1 || costFactor > 63 {
		return ParameterError("cost factor (log2 N) must be in [1, 63]")
	}
	if r < 1 {
		return ParameterError("r must be >= 1")
	}
	if p < 1 {
		return ParameterError("p must be >= 1")
	}
	if costFactor >= 16*r {
		return ParameterError("cost factor must be < 16*r")
	}
	if keyLen <= 0 {
		return ParameterError("derived key length must be > 0")
	}
	if uint64(keyLen) > (1<<32-1)*32 {
		return ParameterError("derived key length must be <= (2^32-1)*32")
	}
	if uint64(r)*uint64(p) >= 1<<30 {
		return ParameterError("r*p must be < 2^30")
	}
	if r > maxInt/128/p || r > maxInt/256 {
		return ParameterError("parameters are too large")
	}
	// N = 2^costFactor is computed in uint64 first: costFactor=63 shifted as
	// a signed 64-bit int wraps to a negative number, which would slip past
	// an int-typed "too large" check instead of failing it.
	n := uint64(1) << uint(costFactor)
	if n > uint64(maxInt)/uint64(128*r) {
		return ParameterError("parameters are too large")
	}
	return nil
}

// smixAll runs p independent ROMix passes over disjoint 128*r-byte slices of
// b, in place. When p > 1 the passes are dispatched to p goroutines (spec
// §5: "embarrassingly parallel... MAY be dispatched to p worker threads");
// each goroutine owns an exclusive slice of b and its own V/XY scratch
// buffers, so there is no shared mutable state to synchronize beyond the
// WaitGroup itself. Allocation failures are recovered and surfaced as
// InternalError, distinct from ParameterError, per spec §7.
func smixAll(b []byte, r, n, p int) (err error) {
	blockSize := 128 * r

	run := func(slice []byte) (runErr error) {
		defer func() {
			if rec := recover(); rec != nil {
				runErr = &InternalError{Cause: panicToError(rec)}
			}
		}()
		v := make([]byte, blockSize*n)
		xy := make([]byte, 256*r)
		romix(slice, r, n, v, xy)
		zero(v)
		return nil
	}

	if p == 1 {
		return run(b[:blockSize])
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	wg.Add(p)
	for i := 0; i < p; i++ {
		go func(slice []byte) {
			defer wg.Done()
			if runErr := run(slice); runErr != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = runErr
				}
				mu.Unlock()
			}
		}(b[i*blockSize : (i+1)*blockSize])
	}
	wg.Wait()
	return firstErr
}

// zero overwrites the V array before it is released, per spec §5's
// recommendation to zero sensitive scratch memory on return.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func panicToError(r interface{}) error {
	if e, ok := r.(error); ok {
		return e
	}
	return errors.New("scrypt: allocation panic")
}
