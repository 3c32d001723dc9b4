package internal

import "math/big"

// ZeroPad pads the byte slice to the specified length by prepending zeros.
// If the slice is already longer than or equal to the target length,
// it returns the first 'length' bytes.
func ZeroPad(b []byte, length int) []byte {
	if len(b) >= length {
		return b[:length]
	}

	result := make([]byte, length)
	copy(result[length-len(b):], b)
	return result
}

// FixedBytes returns v as a big-endian slice of exactly size bytes.
// v must be non-negative and fit in size bytes.
func FixedBytes(v *big.Int, size int) []byte {
	buf := make([]byte, size)
	v.FillBytes(buf)
	return buf
}

// TrimHexPrefix strips a leading "0x" or "0X" marker from a hex string.
func TrimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
