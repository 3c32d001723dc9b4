package sm2

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"

	"github.com/kochabx/gm/sm2/ecc"
	"github.com/kochabx/gm/sm2/internal"
)

// PublicKey represents an SM2 public key point. The zero value is not
// usable; construct through GenerateKey, NewPublicKey, or ParsePublicKey.
type PublicKey struct {
	x, y *big.Int
}

// Bytes returns the public key in encoded point form.
// If compressed is true, returns 33 bytes (0x02/0x03 + X).
// If compressed is false, returns 65 bytes (0x04 + X + Y).
// Compression is a property of the emission, not of the key; the two
// forms round-trip byte-for-byte.
func (pub *PublicKey) Bytes(compressed bool) []byte {
	if pub == nil || pub.x == nil || pub.y == nil {
		return nil
	}
	return ecc.P256Sm2().EncodePoint(pub.x, pub.y, compressed)
}

// Hex returns the public key in lowercase hexadecimal encoding: 130
// characters starting "04", or 66 starting "02"/"03" when compressed.
func (pub *PublicKey) Hex(compressed bool) string {
	return hex.EncodeToString(pub.Bytes(compressed))
}

// Equals compares two public keys using constant-time comparison to
// resist timing attacks.
func (pub *PublicKey) Equals(other *PublicKey) bool {
	if pub == nil || other == nil {
		return pub == other
	}
	if pub.x == nil || pub.y == nil || other.x == nil || other.y == nil {
		return false
	}

	eqX := subtle.ConstantTimeCompare(pub.x.Bytes(), other.x.Bytes()) == 1
	eqY := subtle.ConstantTimeCompare(pub.y.Bytes(), other.y.Bytes()) == 1
	return eqX && eqY
}

// Encrypt encrypts plaintext to this key; see the package Encrypt.
func (pub *PublicKey) Encrypt(random io.Reader, plaintext []byte, order Order) ([]byte, error) {
	return Encrypt(random, pub, plaintext, order)
}

// Verify checks a signature against this key; see the package Verify.
func (pub *PublicKey) Verify(msg, sig []byte, opts *SignerOpts) bool {
	return Verify(pub, msg, sig, opts)
}

// NewPublicKey parses a public key from its encoded point form, either
// uncompressed (65 bytes, 0x04 prefix) or compressed (33 bytes,
// 0x02/0x03 prefix). Compressed input is expanded by solving the curve
// equation for y and applying the parity carried in the prefix. Off-curve
// points are rejected.
func NewPublicKey(data []byte) (*PublicKey, error) {
	if len(data) == 0 {
		return nil, ErrPublicKeyEmpty
	}

	x, y, err := ecc.P256Sm2().DecodePoint(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return &PublicKey{x: x, y: y}, nil
}

// ParsePublicKey parses a hex public key, accepting an optional 0x/0X
// prefix and upper or lower case. The hex must decode to exactly one of
// the two point forms.
func ParsePublicKey(hexStr string) (*PublicKey, error) {
	data, err := hex.DecodeString(internal.TrimHexPrefix(hexStr))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return NewPublicKey(data)
}

// CompressPublicKey converts a public key hex string of either form to
// the compressed form.
func CompressPublicKey(hexStr string) (string, error) {
	pub, err := ParsePublicKey(hexStr)
	if err != nil {
		return "", err
	}
	return pub.Hex(true), nil
}

// DecompressPublicKey converts a public key hex string of either form to
// the uncompressed form.
func DecompressPublicKey(hexStr string) (string, error) {
	pub, err := ParsePublicKey(hexStr)
	if err != nil {
		return "", err
	}
	return pub.Hex(false), nil
}

// EqualPublicKeyHex reports whether two public key hex strings denote the
// same point, regardless of form, prefix, or case. Unparsable input
// compares unequal.
func EqualPublicKeyHex(a, b string) bool {
	pa, err := ParsePublicKey(a)
	if err != nil {
		return false
	}
	pb, err := ParsePublicKey(b)
	if err != nil {
		return false
	}
	return pa.Equals(pb)
}
