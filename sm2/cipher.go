package sm2

import (
	"bytes"
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/kochabx/gm/log"
	"github.com/kochabx/gm/sm2/ecc"
	"github.com/kochabx/gm/sm2/internal"
)

// Encrypt encrypts plaintext to the recipient public key.
//
// The process:
//  1. Draw an ephemeral scalar k and compute C1 = k*G.
//  2. Compute the shared point (x2, y2) = k*P.
//  3. Mask the payload: C2 = plaintext XOR KDF(x2 || y2, len(plaintext)).
//  4. Bind integrity: C3 = SM3(x2 || plaintext || y2).
//  5. Emit C1 || C3 || C2 (OrderC1C3C2, the default) or C1 || C2 || C3.
//
// C1 is emitted uncompressed. A degenerate keystream (all zero bytes)
// aborts with ErrDegenerateKey rather than emitting a ciphertext whose
// payload mask is a no-op.
func Encrypt(random io.Reader, pub *PublicKey, plaintext []byte, order Order) ([]byte, error) {
	if pub == nil || pub.x == nil || pub.y == nil {
		return nil, ErrPublicKeyEmpty
	}
	if len(plaintext) == 0 {
		return nil, ErrPlaintextEmpty
	}

	curve := ecc.P256Sm2()
	size := curve.CoordinateSize()

	k, err := ecc.RandFieldElement(curve, random)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomUnavailable, err)
	}

	c1x, c1y := curve.ScalarBaseMult(k.Bytes())
	x2, y2 := curve.ScalarMult(pub.x, pub.y, k.Bytes())
	x2b := internal.FixedBytes(x2, size)
	y2b := internal.FixedBytes(y2, size)

	t, err := kdf(len(plaintext), x2b, y2b)
	if err != nil {
		return nil, err
	}

	c1 := curve.EncodePoint(c1x, c1y, false)
	c2 := make([]byte, len(plaintext))
	subtle.XORBytes(c2, plaintext, t)
	c3 := digest(x2b, plaintext, y2b)

	if order == OrderC1C2C3 {
		return bytes.Join([][]byte{c1, c2, c3}, nil), nil
	}
	return bytes.Join([][]byte{c1, c3, c2}, nil), nil
}

// Decrypt decrypts ciphertext with the private key.
//
// The leading byte picks the C1 form: 0x04 uncompressed, 0x02/0x03
// compressed. A 0x30 lead is ASN.1 ciphertext framing, which this package
// neither emits nor accepts. With OrderAuto the component orderings are
// tried in turn (C1C3C2 first); every candidate is validated by
// recomputing C3, so auto-detection never weakens the integrity check.
// The C3 comparison is constant-time, and failure under every accepted
// ordering is ErrIntegrity.
func Decrypt(priv *PrivateKey, ciphertext []byte, order Order) ([]byte, error) {
	if priv == nil || priv.d == nil {
		return nil, ErrPrivateKeyEmpty
	}
	if len(ciphertext) == 0 {
		return nil, ErrCiphertextTooShort
	}

	var c1len int
	switch classify(ciphertext) {
	case formatUncompressed:
		c1len = UncompressedPointSize
	case formatCompressed:
		c1len = CompressedPointSize
	case formatDER:
		return nil, fmt.Errorf("%w: ASN.1 framing not supported", ErrCiphertextFormat)
	default:
		return nil, fmt.Errorf("%w: leading byte 0x%02x", ErrCiphertextFormat, ciphertext[0])
	}
	if len(ciphertext) < c1len+DigestSize {
		return nil, ErrCiphertextTooShort
	}

	curve := ecc.P256Sm2()
	c1x, c1y, err := curve.DecodePoint(ciphertext[:c1len])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCiphertextFormat, err)
	}

	size := curve.CoordinateSize()
	x2, y2 := curve.ScalarMult(c1x, c1y, priv.d.Bytes())
	x2b := internal.FixedBytes(x2, size)
	y2b := internal.FixedBytes(y2, size)

	// Both orderings split off the same payload width, so the keystream
	// is computed once and shared by the attempts.
	rest := ciphertext[c1len:]
	c2len := len(rest) - DigestSize
	t, err := kdf(c2len, x2b, y2b)
	if err != nil {
		return nil, err
	}

	type split struct {
		order  Order
		c3, c2 []byte
	}
	var attempts []split
	switch order {
	case OrderC1C3C2:
		attempts = []split{{OrderC1C3C2, rest[:DigestSize], rest[DigestSize:]}}
	case OrderC1C2C3:
		attempts = []split{{OrderC1C2C3, rest[c2len:], rest[:c2len]}}
	default:
		attempts = []split{
			{OrderC1C3C2, rest[:DigestSize], rest[DigestSize:]},
			{OrderC1C2C3, rest[c2len:], rest[:c2len]},
		}
	}

	for _, a := range attempts {
		plaintext := make([]byte, len(a.c2))
		subtle.XORBytes(plaintext, a.c2, t)
		if subtle.ConstantTimeCompare(digest(x2b, plaintext, y2b), a.c3) == 1 {
			return plaintext, nil
		}
		log.Trace().Stringer("order", a.order).Msg("sm2: ciphertext digest mismatch")
	}
	return nil, ErrIntegrity
}
