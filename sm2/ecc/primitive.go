package ecc

import (
	"fmt"
	"io"
	"math/big"
)

// maxScalarAttempts bounds the rejection-sampling loops in SignRS. The
// rejected cases have negligible probability under a working random source,
// so hitting the bound means the source is broken.
const maxScalarAttempts = 100

// RandFieldElement returns a uniform random scalar in [1, n-1], the range of
// per-operation ephemeral scalars.
func RandFieldElement(curve *Curve, random io.Reader) (*big.Int, error) {
	span := new(big.Int).Sub(curve.N, one)
	return randScalar(curve, random, span)
}

// RandPrivateScalar returns a uniform random scalar in [1, n-2], the range
// of long-lived private keys. n-1 is excluded so that 1+d stays invertible
// in the signing equation.
func RandPrivateScalar(curve *Curve, random io.Reader) (*big.Int, error) {
	span := new(big.Int).Sub(curve.N, one)
	span.Sub(span, one)
	return randScalar(curve, random, span)
}

// randScalar draws extra bytes beyond the field width and reduces, keeping
// the modulo bias far below anything observable.
func randScalar(curve *Curve, random io.Reader, span *big.Int) (*big.Int, error) {
	if random == nil {
		return nil, ErrRandomUnavailable
	}
	buf := make([]byte, curve.BitSize/8+8)
	if _, err := io.ReadFull(random, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomUnavailable, err)
	}

	k := new(big.Int).SetBytes(buf)
	k.Mod(k, span)
	k.Add(k, one)
	return k, nil
}

// SignRS runs the SM2 signing equations over an already-computed digest and
// returns the signature pair (r, s). The digest is used as-is; callers are
// responsible for any identity preprocessing.
//
//	r = (e + x1) mod n        with (x1, y1) = k·G, retried while r = 0 or r+k = n
//	s = (1+d)⁻¹ (k - r·d) mod n   retried while s = 0
func SignRS(random io.Reader, curve *Curve, d *big.Int, digest []byte) (r, s *big.Int, err error) {
	if d == nil || d.Sign() <= 0 || d.Cmp(curve.N) >= 0 {
		return nil, nil, ErrInvalidScalar
	}

	n := curve.N
	e := new(big.Int).SetBytes(digest)

	// (1+d)⁻¹ is the same for every attempt. d = n-1 has no inverse and
	// cannot sign.
	dp1 := new(big.Int).Add(d, one)
	if dp1.ModInverse(dp1, n) == nil {
		return nil, nil, ErrInvalidScalar
	}

	for i := 0; i < maxScalarAttempts; i++ {
		k, err := RandFieldElement(curve, random)
		if err != nil {
			return nil, nil, err
		}

		x1, _ := curve.ScalarBaseMult(k.Bytes())
		r = new(big.Int).Add(e, x1)
		r.Mod(r, n)
		if r.Sign() == 0 {
			continue
		}
		if t := new(big.Int).Add(r, k); t.Cmp(n) == 0 {
			continue
		}

		s = new(big.Int).Mul(r, d)
		s.Sub(k, s)
		s.Mul(s, dp1)
		s.Mod(s, n)
		if s.Sign() != 0 {
			return r, s, nil
		}
	}

	return nil, nil, ErrRetryLimit
}

// VerifyRS checks an (r, s) signature pair against an already-computed
// digest and the public point (x, y). It never returns an error: any
// malformed input is simply an invalid signature.
//
//	t = (r + s) mod n, rejected when 0
//	(x1, y1) = s·G + t·P
//	valid iff r = (e + x1) mod n
func VerifyRS(curve *Curve, x, y *big.Int, digest []byte, r, s *big.Int) bool {
	if x == nil || y == nil || r == nil || s == nil {
		return false
	}

	n := curve.N
	if r.Sign() <= 0 || r.Cmp(n) >= 0 || s.Sign() <= 0 || s.Cmp(n) >= 0 {
		return false
	}

	t := new(big.Int).Add(r, s)
	t.Mod(t, n)
	if t.Sign() == 0 {
		return false
	}

	sgx, sgy := curve.ScalarBaseMult(s.Bytes())
	tpx, tpy := curve.ScalarMult(x, y, t.Bytes())
	x1, _ := curve.Add(sgx, sgy, tpx, tpy)

	e := new(big.Int).SetBytes(digest)
	expected := new(big.Int).Add(e, x1)
	expected.Mod(expected, n)
	return expected.Cmp(r) == 0
}
