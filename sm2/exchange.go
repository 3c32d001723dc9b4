package sm2

import (
	"crypto/subtle"
	"fmt"
	"io"
	"math/big"

	"github.com/kochabx/gm/core/tag"
	"github.com/kochabx/gm/sm2/ecc"
	"github.com/kochabx/gm/sm2/internal"
)

// Confirmation tag domain-separation prefixes from GB/T 32918.3. The
// responder proves possession with the 0x02 tag (S1), the initiator with
// the 0x03 tag (S2).
const (
	confirmTagS1 = 0x02
	confirmTagS2 = 0x03
)

// ExchangeParams collects one party's view of the two-party key exchange.
//
// StaticKey, PeerStaticKey, and PeerEphemeralKey are required.
// EphemeralKey may be nil, in which case a fresh single-use pair is drawn
// from the random source and its public point is echoed in the result for
// transmission to the peer. Transport of public values and tags between
// the parties is up to the caller.
type ExchangeParams struct {
	// Initiator marks this party as the one who started the exchange.
	// Roles fix the Z-value ordering inside the derived key and decide
	// which confirmation tag each party sends.
	Initiator bool

	// StaticKey is this party's long-lived key pair.
	StaticKey *PrivateKey

	// EphemeralKey is this party's single-use pair. Nil means generate.
	EphemeralKey *PrivateKey

	// PeerStaticKey is the peer's long-lived public key.
	PeerStaticKey *PublicKey

	// PeerEphemeralKey is the single-use public point received from the
	// peer.
	PeerEphemeralKey *PublicKey

	// UID and PeerUID are the identity strings bound into the derived
	// key. Nil selects DefaultUID, matching the signature default.
	UID     []byte
	PeerUID []byte

	// KeyLength is the derived shared key width in bytes.
	KeyLength int `default:"16"`
}

// ExchangeResult carries the agreed key and the confirmation material.
type ExchangeResult struct {
	// Key is the derived shared key, KeyLength bytes.
	Key []byte

	// EphemeralPublicKey is the public half of the ephemeral pair used,
	// whether supplied or generated. It must reach the peer for the
	// exchange to complete.
	EphemeralPublicKey *PublicKey

	// ConfirmationMine is the tag this party sends to the peer: S2 for
	// the initiator, S1 for the responder.
	ConfirmationMine []byte

	// ConfirmationPeer is the tag expected back from the peer.
	ConfirmationPeer []byte
}

// Exchange runs one party's side of the authenticated key agreement.
//
// Each party combines its static and ephemeral scalars into
// t = (d + xbar * d_ephemeral) mod n, where xbar folds an ephemeral
// x-coordinate to its low half plus a fixed top bit, then computes the
// shared point V = [t](P_peer + [xbar_peer]R_peer). Both parties derive
//
//	key = KDF(xV || yV || Z_initiator || Z_responder, KeyLength)
//
// and arrive at the same key exactly when static/ephemeral public values
// and identities are correctly cross-wired. The confirmation tags let
// each side prove possession of the same V before trusting the key; a V
// at infinity fails with ErrDegenerateKey.
func Exchange(random io.Reader, params *ExchangeParams) (*ExchangeResult, error) {
	if params == nil {
		return nil, ErrExchangeParams
	}
	p := *params
	if err := tag.ApplyDefaults(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExchangeParams, err)
	}

	switch {
	case p.StaticKey == nil || p.StaticKey.d == nil:
		return nil, fmt.Errorf("%w: static key", ErrPrivateKeyEmpty)
	case p.EphemeralKey != nil && p.EphemeralKey.d == nil:
		return nil, fmt.Errorf("%w: ephemeral key", ErrPrivateKeyEmpty)
	case p.PeerStaticKey == nil || p.PeerStaticKey.x == nil || p.PeerStaticKey.y == nil:
		return nil, fmt.Errorf("%w: peer static key", ErrPublicKeyEmpty)
	case p.PeerEphemeralKey == nil || p.PeerEphemeralKey.x == nil || p.PeerEphemeralKey.y == nil:
		return nil, fmt.Errorf("%w: peer ephemeral key", ErrPublicKeyEmpty)
	case p.KeyLength <= 0:
		return nil, ErrInvalidKeyLength
	}

	eph := p.EphemeralKey
	if eph == nil {
		var err error
		if eph, err = GenerateKey(random); err != nil {
			return nil, err
		}
	}

	curve := ecc.P256Sm2()
	n := curve.N
	size := curve.CoordinateSize()
	w := uint(curve.BitSize/2 - 1)

	// t = (d_static + xbar * d_ephemeral) mod n
	xbar := reduceEphemeralX(eph.Public().x, w)
	t := new(big.Int).Mul(xbar, eph.d)
	t.Add(t, p.StaticKey.d)
	t.Mod(t, n)

	// V = [h*t](P_peer + [xbar_peer]R_peer); the cofactor is 1, so [h*t]
	// is [t].
	xbarPeer := reduceEphemeralX(p.PeerEphemeralKey.x, w)
	rx, ry := curve.ScalarMult(p.PeerEphemeralKey.x, p.PeerEphemeralKey.y, xbarPeer.Bytes())
	vx, vy := curve.Add(p.PeerStaticKey.x, p.PeerStaticKey.y, rx, ry)
	vx, vy = curve.ScalarMult(vx, vy, t.Bytes())
	if vx.Sign() == 0 && vy.Sign() == 0 {
		return nil, fmt.Errorf("%w: exchange point at infinity", ErrDegenerateKey)
	}

	zMine, err := ZA(p.StaticKey.Public(), p.UID)
	if err != nil {
		return nil, err
	}
	zPeer, err := ZA(p.PeerStaticKey, p.PeerUID)
	if err != nil {
		return nil, err
	}

	// Both sides order the Z values and ephemeral points initiator-first.
	zInit, zResp := zMine, zPeer
	rInit, rResp := eph.Public(), p.PeerEphemeralKey
	if !p.Initiator {
		zInit, zResp = zPeer, zMine
		rInit, rResp = p.PeerEphemeralKey, eph.Public()
	}

	vxb := internal.FixedBytes(vx, size)
	vyb := internal.FixedBytes(vy, size)

	key, err := kdf(p.KeyLength, vxb, vyb, zInit, zResp)
	if err != nil {
		return nil, err
	}

	inner := digest(
		vxb,
		zInit, zResp,
		internal.FixedBytes(rInit.x, size), internal.FixedBytes(rInit.y, size),
		internal.FixedBytes(rResp.x, size), internal.FixedBytes(rResp.y, size),
	)
	s1 := digest([]byte{confirmTagS1}, vyb, inner)
	s2 := digest([]byte{confirmTagS2}, vyb, inner)

	result := &ExchangeResult{
		Key:                key,
		EphemeralPublicKey: eph.Public(),
	}
	if p.Initiator {
		result.ConfirmationMine, result.ConfirmationPeer = s2, s1
	} else {
		result.ConfirmationMine, result.ConfirmationPeer = s1, s2
	}
	return result, nil
}

// reduceEphemeralX folds an ephemeral x-coordinate into
// 2^w + (x mod 2^w), the weighting the protocol applies before combining
// scalars.
func reduceEphemeralX(x *big.Int, w uint) *big.Int {
	top := new(big.Int).Lsh(big.NewInt(1), w)
	out := new(big.Int).Sub(top, big.NewInt(1))
	out.And(out, x)
	return out.Add(out, top)
}

// ConfirmTag compares a received confirmation tag against the expected
// one in constant time. Empty tags never confirm.
func ConfirmTag(want, got []byte) bool {
	return len(want) > 0 && subtle.ConstantTimeCompare(want, got) == 1
}
