package sm2

// Curve and digest widths for the SM2 256-bit prime curve
const (
	// CurvePointSize is the size in bytes of each coordinate (X or Y)
	CurvePointSize = 32

	// DigestSize is the output width in bytes of the SM3 digest
	DigestSize = 32

	// PrivateKeySize is the fixed serialized width of a private scalar
	PrivateKeySize = 32
)

// Point encoding sizes
const (
	// UncompressedPointSize is the size of an uncompressed public point
	// Format: [0x04][X:32][Y:32]
	UncompressedPointSize = 1 + 2*CurvePointSize // 65 bytes

	// CompressedPointSize is the size of a compressed public point
	// Format: [0x02|0x03][X:32]
	CompressedPointSize = 1 + CurvePointSize // 33 bytes
)

// Signature sizes
const (
	// RawSignatureSize is the fixed width of a raw r || s signature
	RawSignatureSize = 2 * CurvePointSize // 64 bytes
)

// Ciphertext format parameters
const (
	// MinCiphertextSize is the smallest parseable ciphertext: a compressed
	// C1 plus a digest-width C3. The payload C2 may be empty on the wire
	// (Encrypt rejects empty plaintexts, but a conforming peer's minimum
	// is still bounded by C1 and C3 alone).
	MinCiphertextSize = CompressedPointSize + DigestSize // 65 bytes
)

// Identity binding parameters
const (
	// MaxUIDSize is the largest identity whose bit length fits the 16-bit
	// ENTL field of the Z-value
	MaxUIDSize = 8191
)

// DefaultUID is the identity the standard assigns when the caller supplies
// none.
var DefaultUID = []byte("1234567812345678")
