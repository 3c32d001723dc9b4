package ecc

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/kochabx/gm/sm2/internal"
)

// Point encoding prefixes
const (
	// UncompressedPointTag marks the 0x04 || X || Y form
	UncompressedPointTag = 0x04

	// CompressedEvenTag marks a compressed point with even Y
	CompressedEvenTag = 0x02

	// CompressedOddTag marks a compressed point with odd Y
	CompressedOddTag = 0x03
)

// EncodePoint serializes a curve point. The uncompressed form is
// 0x04 || X || Y; the compressed form is 0x02 or 0x03 || X with the parity
// of Y carried by the prefix. Coordinates are fixed-width big-endian.
//
// Returns nil for the point at infinity, which has no wire form.
func (curve *Curve) EncodePoint(x, y *big.Int, compressed bool) []byte {
	if x == nil || y == nil {
		return nil
	}
	size := curve.CoordinateSize()
	xb := internal.ZeroPad(x.Bytes(), size)

	if compressed {
		if y.Bit(0) == 0 {
			return append([]byte{CompressedEvenTag}, xb...)
		}
		return append([]byte{CompressedOddTag}, xb...)
	}

	yb := internal.ZeroPad(y.Bytes(), size)
	return bytes.Join([][]byte{{UncompressedPointTag}, xb, yb}, nil)
}

// DecodePoint parses an uncompressed or compressed point encoding and
// validates that the result lies on the curve. Decompression recovers Y from
// the curve equation and flips it to match the parity prefix.
func (curve *Curve) DecodePoint(data []byte) (x, y *big.Int, err error) {
	size := curve.CoordinateSize()
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("%w: empty input", ErrPointFormat)
	}

	switch data[0] {
	case UncompressedPointTag:
		if len(data) != 1+2*size {
			return nil, nil, fmt.Errorf("%w: want %d bytes, got %d", ErrPointFormat, 1+2*size, len(data))
		}
		x = new(big.Int).SetBytes(data[1 : 1+size])
		y = new(big.Int).SetBytes(data[1+size:])

	case CompressedEvenTag, CompressedOddTag:
		if len(data) != 1+size {
			return nil, nil, fmt.Errorf("%w: want %d bytes, got %d", ErrPointFormat, 1+size, len(data))
		}
		x = new(big.Int).SetBytes(data[1:])
		if x.Cmp(curve.P) >= 0 {
			return nil, nil, ErrPointNotOnCurve
		}
		y = new(big.Int).ModSqrt(curve.polynomial(x), curve.P)
		if y == nil {
			return nil, nil, ErrPointNotOnCurve
		}
		if byte(y.Bit(0)) != data[0]&1 {
			y.Sub(curve.P, y)
		}

	default:
		return nil, nil, fmt.Errorf("%w: unknown prefix 0x%02x", ErrPointFormat, data[0])
	}

	if !curve.IsOnCurve(x, y) {
		return nil, nil, ErrPointNotOnCurve
	}
	return x, y, nil
}
