package sm2

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/kochabx/gm/sm2/ecc"
	"github.com/kochabx/gm/sm2/internal"
)

// PrivateKey represents an SM2 private scalar with its cached public key.
// Keys are immutable after construction; rotate by generating a new pair.
type PrivateKey struct {
	publicKey *PublicKey
	d         *big.Int
}

// Public returns the public key corresponding to this private key.
func (priv *PrivateKey) Public() *PublicKey {
	return priv.publicKey
}

// Bytes returns the private scalar as 32 bytes, big-endian,
// left-zero-padded.
func (priv *PrivateKey) Bytes() []byte {
	if priv == nil || priv.d == nil {
		return nil
	}
	return internal.FixedBytes(priv.d, PrivateKeySize)
}

// Hex returns the private key as 64 lowercase hex characters, no prefix.
func (priv *PrivateKey) Hex() string {
	return hex.EncodeToString(priv.Bytes())
}

// Equals compares two private keys using constant-time comparison to
// resist timing attacks.
func (priv *PrivateKey) Equals(other *PrivateKey) bool {
	if priv == nil || other == nil {
		return priv == other
	}
	if priv.d == nil || other.d == nil {
		return priv.d == other.d
	}
	return subtle.ConstantTimeCompare(priv.Bytes(), other.Bytes()) == 1
}

// Destroy clears the private scalar from memory. The key must not be
// used afterwards.
func (priv *PrivateKey) Destroy() {
	if priv.d != nil {
		priv.d.SetInt64(0)
		priv.d = nil
	}
}

// Sign signs msg with this key; see the package Sign.
func (priv *PrivateKey) Sign(random io.Reader, msg []byte, opts *SignerOpts) ([]byte, error) {
	return Sign(random, priv, msg, opts)
}

// Decrypt decrypts ciphertext with this key; see the package Decrypt.
func (priv *PrivateKey) Decrypt(ciphertext []byte, order Order) ([]byte, error) {
	return Decrypt(priv, ciphertext, order)
}

// GenerateKey generates a new SM2 key pair from the supplied random
// source. The source is a hard requirement: a nil or failing reader is an
// error, never a fallback to weaker randomness.
func GenerateKey(random io.Reader) (*PrivateKey, error) {
	curve := ecc.P256Sm2()
	d, err := ecc.RandPrivateScalar(curve, random)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomUnavailable, err)
	}
	return newPrivateKey(curve, d), nil
}

// newPrivateKey derives the public point and wraps the scalar.
func newPrivateKey(curve *ecc.Curve, d *big.Int) *PrivateKey {
	x, y := curve.ScalarBaseMult(d.Bytes())
	return &PrivateKey{
		publicKey: &PublicKey{x: x, y: y},
		d:         d,
	}
}

// NewPrivateKey builds a private key from a big-endian scalar of at most
// 32 bytes. The scalar must lie in [1, n-1]; the public key is derived by
// base-point multiplication.
func NewPrivateKey(d []byte) (*PrivateKey, error) {
	if len(d) == 0 {
		return nil, ErrPrivateKeyEmpty
	}
	if len(d) > PrivateKeySize {
		return nil, fmt.Errorf("%w: scalar longer than %d bytes", ErrInvalidPrivateKey, PrivateKeySize)
	}

	curve := ecc.P256Sm2()
	k := new(big.Int).SetBytes(d)
	if k.Sign() <= 0 || k.Cmp(curve.N) >= 0 {
		return nil, fmt.Errorf("%w: scalar out of range", ErrInvalidPrivateKey)
	}
	return newPrivateKey(curve, k), nil
}

// ParsePrivateKey parses a hex private key, accepting an optional 0x/0X
// prefix and upper or lower case. Short input is zero-left-padded to 64
// characters; longer input is rejected.
func ParsePrivateKey(hexStr string) (*PrivateKey, error) {
	s := internal.TrimHexPrefix(hexStr)
	if s == "" {
		return nil, ErrPrivateKeyEmpty
	}
	if len(s) > 2*PrivateKeySize {
		return nil, fmt.Errorf("%w: hex longer than %d characters", ErrInvalidPrivateKey, 2*PrivateKeySize)
	}
	if len(s) < 2*PrivateKeySize {
		s = strings.Repeat("0", 2*PrivateKeySize-len(s)) + s
	}

	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	return NewPrivateKey(data)
}
