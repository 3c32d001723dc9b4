package sm2

import "github.com/kochabx/gm/sm2/ecc"

// wireFormat names what the leading byte of an input claims it to be.
// Classification is pure; each consumer switches over the result and
// decides which variants are acceptable in its position (a ciphertext
// accepts the point forms, a signature accepts DER and raw).
type wireFormat int8

const (
	formatInvalid      wireFormat = iota
	formatUncompressed            // 0x04 point prefix
	formatCompressed              // 0x02 / 0x03 point prefix
	formatDER                     // 0x30 ASN.1 SEQUENCE tag
	formatRaw                     // untagged fixed-width r || s
)

// classify inspects the leading byte. formatRaw is reported only for
// inputs of exactly RawSignatureSize bytes with no recognized framing
// byte, since raw signatures are the one fixed-width form carrying no tag
// of their own.
func classify(data []byte) wireFormat {
	if len(data) == 0 {
		return formatInvalid
	}
	switch data[0] {
	case ecc.UncompressedPointTag:
		return formatUncompressed
	case ecc.CompressedEvenTag, ecc.CompressedOddTag:
		return formatCompressed
	case derSequenceTag:
		return formatDER
	}
	if len(data) == RawSignatureSize {
		return formatRaw
	}
	return formatInvalid
}
