package sm2

import (
	"encoding/binary"

	"github.com/kochabx/gm/sm2/ecc"
	"github.com/kochabx/gm/sm2/internal"
)

// ZA computes the identity digest
//
//	Z = SM3(ENTL || ID || a || b || Gx || Gy || x || y)
//
// binding uid and the public key to the curve domain parameters. ENTL is
// the bit length of uid as a 16-bit big-endian integer. Z prefixes the
// message before signing, so a signature cannot be replayed under another
// identity, curve, or key.
//
// A nil or empty uid selects DefaultUID. An identity longer than
// MaxUIDSize bytes overflows ENTL and is rejected.
func ZA(pub *PublicKey, uid []byte) ([]byte, error) {
	if pub == nil || pub.x == nil || pub.y == nil {
		return nil, ErrPublicKeyEmpty
	}
	if len(uid) == 0 {
		uid = DefaultUID
	}
	if len(uid) > MaxUIDSize {
		return nil, ErrUIDTooLong
	}

	var entl [2]byte
	binary.BigEndian.PutUint16(entl[:], uint16(len(uid)*8))

	curve := ecc.P256Sm2()
	size := curve.CoordinateSize()
	return digest(
		entl[:],
		uid,
		internal.FixedBytes(curve.A, size),
		internal.FixedBytes(curve.B, size),
		internal.FixedBytes(curve.Gx, size),
		internal.FixedBytes(curve.Gy, size),
		internal.FixedBytes(pub.x, size),
		internal.FixedBytes(pub.y, size),
	), nil
}
