package sm2

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/kochabx/gm/log"
	"github.com/kochabx/gm/sm2/ecc"
	"github.com/kochabx/gm/sm2/internal"
)

// messageDigest computes e, the digest actually signed: SM3(Z || msg)
// with identity binding, or SM3(msg) when opts.SkipZValue is set.
func messageDigest(pub *PublicKey, msg []byte, opts *SignerOpts) ([]byte, error) {
	if opts.SkipZValue {
		return digest(msg), nil
	}

	z, err := ZA(pub, opts.UID)
	if err != nil {
		return nil, err
	}
	return digest(z, msg), nil
}

// Sign signs msg with the private key.
//
// The signed digest is e = SM3(ZA || msg) unless opts.SkipZValue hashes
// the message directly; the verifier must use the same UID and SkipZValue
// or the result will not verify. Output is raw r || s (64 bytes) by
// default, DER when opts.DER is set.
func Sign(random io.Reader, priv *PrivateKey, msg []byte, opts *SignerOpts) ([]byte, error) {
	if priv == nil || priv.d == nil {
		return nil, ErrPrivateKeyEmpty
	}
	o := resolveSignerOpts(opts)

	e, err := messageDigest(priv.Public(), msg, o)
	if err != nil {
		return nil, err
	}

	r, s, err := ecc.SignRS(random, ecc.P256Sm2(), priv.d, e)
	if err != nil {
		switch {
		case errors.Is(err, ecc.ErrInvalidScalar):
			return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
		case errors.Is(err, ecc.ErrRandomUnavailable):
			return nil, fmt.Errorf("%w: %v", ErrRandomUnavailable, err)
		default:
			return nil, err
		}
	}

	if o.DER {
		return encodeSignature(r, s)
	}
	return bytes.Join([][]byte{
		internal.FixedBytes(r, CurvePointSize),
		internal.FixedBytes(s, CurvePointSize),
	}, nil), nil
}

// Verify reports whether sig is a valid signature of msg by the public
// key. It never returns an error: malformed input, an unparsable
// signature, and a failed curve equation all map to false, since none of
// them is distinguishable from "invalid signature" to a caller. The
// underlying cause is emitted on the package trace logger for diagnosis.
func Verify(pub *PublicKey, msg, sig []byte, opts *SignerOpts) bool {
	if err := verify(pub, msg, sig, opts); err != nil {
		log.Trace().Err(err).Msg("sm2: signature rejected")
		return false
	}
	return true
}

// verify is the error-returning pipeline behind Verify.
func verify(pub *PublicKey, msg, sig []byte, opts *SignerOpts) error {
	if pub == nil || pub.x == nil || pub.y == nil {
		return ErrPublicKeyEmpty
	}
	o := resolveSignerOpts(opts)

	r, s, err := parseSignature(sig, o.DER)
	if err != nil {
		return err
	}

	e, err := messageDigest(pub, msg, o)
	if err != nil {
		return err
	}

	if !ecc.VerifyRS(ecc.P256Sm2(), pub.x, pub.y, e, r, s) {
		return ErrVerification
	}
	return nil
}

// parseSignature resolves the wire framing of a signature. With derOnly
// the input must be DER. Otherwise the leading byte decides: 0x30 reads
// as DER first, falling back to raw for 64-byte inputs whose first byte
// merely collides with the sequence tag; any other lead is raw and must
// be exactly 64 bytes.
func parseSignature(sig []byte, derOnly bool) (r, s *big.Int, err error) {
	if derOnly {
		return decodeSignature(sig)
	}

	switch classify(sig) {
	case formatDER:
		r, s, err = decodeSignature(sig)
		if err == nil {
			return r, s, nil
		}
		if len(sig) != RawSignatureSize {
			return nil, nil, err
		}
	default:
		if len(sig) != RawSignatureSize {
			return nil, nil, ErrSignatureFormat
		}
	}

	r = new(big.Int).SetBytes(sig[:CurvePointSize])
	s = new(big.Int).SetBytes(sig[CurvePointSize:])
	return r, s, nil
}
