// Package ecc provides the elliptic-curve engine underneath the sm2 package:
// the SM2 prime-field curve domain parameters, point encoding and decoding in
// uncompressed and compressed forms, scalar generation, and the low-level
// sign/verify primitive over a precomputed digest.
//
// The curve is exposed through crypto/elliptic.CurveParams. This is valid
// because the SM2 coefficient a satisfies a ≡ p-3 (mod p), the exact shape
// CurveParams arithmetic is written for; NewCurve rejects parameter sets that
// break this assumption.
package ecc

import (
	"crypto/elliptic"
	"fmt"
	"math/big"
	"sync"

	"github.com/kochabx/gm/core/tag"
)

// Curve extends elliptic.CurveParams with the fields the SM2 protocol layer
// needs but CurveParams omits: the explicit a coefficient (CurveParams bakes
// in a = -3) and the cofactor.
type Curve struct {
	*elliptic.CurveParams

	// A is the full a coefficient of y² = x³ + ax + b.
	A *big.Int

	// H is the cofactor. The standard SM2 curve has cofactor 1.
	H int
}

// Config holds the curve domain parameters as big-endian hex strings. The
// zero value selects the standard SM2 curve published in GB/T 32918; fields
// may be overridden individually before passing the struct to NewCurve.
type Config struct {
	P  string `default:"FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF00000000FFFFFFFFFFFFFFFF"`
	A  string `default:"FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF00000000FFFFFFFFFFFFFFFC"`
	B  string `default:"28E9FA9E9D9F5E344D5A9E4BCF6509A7F39789F515AB8F92DDBCBD414D940E93"`
	N  string `default:"FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFF7203DF6B21C6052B53BBF40939D54123"`
	Gx string `default:"32C4AE2C1F1981195F9904466A39C9948FE30BBFF2660BE1715A4589334C74C7"`
	Gy string `default:"BC3736A2F4F6779C59BDCEE36B692153D0A9877CC62A474002DF32E52139F0A0"`
}

// NewCurve builds a Curve from the given configuration. A nil config, or a
// config with unset fields, is filled with the standard SM2 parameters.
//
// The parameter set is validated: every field must be valid hex, the base
// point must lie on the curve, and a must equal p-3 modulo p (the form the
// underlying CurveParams arithmetic requires).
func NewCurve(cfg *Config) (*Curve, error) {
	c := Config{}
	if cfg != nil {
		c = *cfg
	}
	if err := tag.ApplyDefaults(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCurve, err)
	}

	curve := &Curve{
		CurveParams: &elliptic.CurveParams{Name: "SM2-P-256"},
		H:           1,
	}

	fields := []struct {
		name string
		hex  string
		dst  **big.Int
	}{
		{"P", c.P, &curve.P},
		{"A", c.A, &curve.A},
		{"B", c.B, &curve.B},
		{"N", c.N, &curve.N},
		{"Gx", c.Gx, &curve.Gx},
		{"Gy", c.Gy, &curve.Gy},
	}
	for _, f := range fields {
		v, ok := new(big.Int).SetString(f.hex, 16)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not valid hex", ErrInvalidCurve, f.name)
		}
		*f.dst = v
	}
	curve.BitSize = curve.P.BitLen()

	// CurveParams group law assumes a = -3 mod p.
	aPlus3 := new(big.Int).Add(curve.A, three)
	aPlus3.Mod(aPlus3, curve.P)
	if aPlus3.Sign() != 0 {
		return nil, fmt.Errorf("%w: a must equal p-3 mod p", ErrInvalidCurve)
	}

	if !curve.IsOnCurve(curve.Gx, curve.Gy) {
		return nil, fmt.Errorf("%w: base point not on curve", ErrInvalidCurve)
	}

	return curve, nil
}

var (
	p256Sm2  *Curve
	initonce sync.Once

	one   = new(big.Int).SetInt64(1)
	three = new(big.Int).SetInt64(3)
)

// P256Sm2 returns the standard SM2 curve. The returned value is shared and
// must not be mutated.
func P256Sm2() *Curve {
	initonce.Do(func() {
		c, err := NewCurve(nil)
		if err != nil {
			panic("ecc: built-in curve parameters rejected: " + err.Error())
		}
		p256Sm2 = c
	})
	return p256Sm2
}

// CoordinateSize returns the byte width of a field coordinate.
func (curve *Curve) CoordinateSize() int {
	return (curve.BitSize + 7) / 8
}

// IsOnCurve reports whether (x, y) satisfies the curve equation. Unlike the
// embedded CurveParams method this uses the explicit A coefficient.
func (curve *Curve) IsOnCurve(x, y *big.Int) bool {
	if x == nil || y == nil {
		return false
	}
	if x.Sign() < 0 || x.Cmp(curve.P) >= 0 || y.Sign() < 0 || y.Cmp(curve.P) >= 0 {
		return false
	}
	y2 := new(big.Int).Mul(y, y)
	y2.Mod(y2, curve.P)
	return y2.Cmp(curve.polynomial(x)) == 0
}

// polynomial evaluates x³ + ax + b mod p.
func (curve *Curve) polynomial(x *big.Int) *big.Int {
	x3 := new(big.Int).Mul(x, x)
	x3.Mul(x3, x)

	ax := new(big.Int).Mul(curve.A, x)
	x3.Add(x3, ax)
	x3.Add(x3, curve.B)
	x3.Mod(x3, curve.P)

	return x3
}
