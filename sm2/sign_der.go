package sm2

import (
	"bytes"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"github.com/kochabx/gm/sm2/internal"
)

// derSequenceTag is the ASN.1 tag opening a DER-framed signature.
const derSequenceTag = 0x30

// encodeSignature frames (r, s) as DER SEQUENCE { INTEGER r, INTEGER s }.
// Integers are minimal per DER: leading zero bytes stripped, one guard
// byte re-added when the top bit of the first retained byte is set.
func encodeSignature(r, s *big.Int) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(child *cryptobyte.Builder) {
		child.AddASN1BigInt(r)
		child.AddASN1BigInt(s)
	})

	sig, err := b.Bytes()
	if err != nil {
		return nil, ErrSignatureFormat
	}
	return sig, nil
}

// decodeSignature parses a DER SEQUENCE of exactly two INTEGERs. Trailing
// bytes after the sequence, extra sequence members, and non-minimal
// encodings are rejected.
func decodeSignature(sig []byte) (r, s *big.Int, err error) {
	r, s = new(big.Int), new(big.Int)
	input := cryptobyte.String(sig)

	var inner cryptobyte.String
	if !input.ReadASN1(&inner, asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(r) ||
		!inner.ReadASN1Integer(s) ||
		!inner.Empty() {
		return nil, nil, ErrSignatureFormat
	}
	return r, s, nil
}

// SignatureToDER converts a raw r || s signature (64 bytes) to DER
// framing.
func SignatureToDER(raw []byte) ([]byte, error) {
	if len(raw) != RawSignatureSize {
		return nil, ErrSignatureFormat
	}
	r := new(big.Int).SetBytes(raw[:CurvePointSize])
	s := new(big.Int).SetBytes(raw[CurvePointSize:])
	return encodeSignature(r, s)
}

// SignatureFromDER converts a DER signature to the fixed-width raw form.
// Integers that do not fit 32 bytes cannot come from this curve and are
// rejected.
func SignatureFromDER(der []byte) ([]byte, error) {
	r, s, err := decodeSignature(der)
	if err != nil {
		return nil, err
	}
	if r.Sign() < 0 || r.BitLen() > 8*CurvePointSize ||
		s.Sign() < 0 || s.BitLen() > 8*CurvePointSize {
		return nil, ErrSignatureFormat
	}
	return bytes.Join([][]byte{
		internal.FixedBytes(r, CurvePointSize),
		internal.FixedBytes(s, CurvePointSize),
	}, nil), nil
}
