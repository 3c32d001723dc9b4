package ecc

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"math/big"
	"testing"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("exhausted")
}

// TestRandFieldElement checks range and basic variability of scalar
// generation.
func TestRandFieldElement(t *testing.T) {
	curve := P256Sm2()

	prev := new(big.Int)
	for i := 0; i < 16; i++ {
		k, err := RandFieldElement(curve, rand.Reader)
		if err != nil {
			t.Fatalf("RandFieldElement failed: %v", err)
		}
		if k.Sign() <= 0 || k.Cmp(curve.N) >= 0 {
			t.Fatalf("scalar out of [1, n-1]: %s", k.Text(16))
		}
		if k.Cmp(prev) == 0 {
			t.Fatal("consecutive scalars are equal")
		}
		prev.Set(k)
	}
}

// TestRandPrivateScalarRange checks that private scalars stay below n-1.
func TestRandPrivateScalarRange(t *testing.T) {
	curve := P256Sm2()
	limit := new(big.Int).Sub(curve.N, big.NewInt(1))

	for i := 0; i < 16; i++ {
		d, err := RandPrivateScalar(curve, rand.Reader)
		if err != nil {
			t.Fatalf("RandPrivateScalar failed: %v", err)
		}
		if d.Sign() <= 0 || d.Cmp(limit) >= 0 {
			t.Fatalf("scalar out of [1, n-2]: %s", d.Text(16))
		}
	}
}

// TestRandScalarSourceFailures checks that a missing or broken random source
// fails loudly instead of degrading.
func TestRandScalarSourceFailures(t *testing.T) {
	curve := P256Sm2()

	if _, err := RandFieldElement(curve, nil); !errors.Is(err, ErrRandomUnavailable) {
		t.Errorf("nil reader: got %v, want ErrRandomUnavailable", err)
	}
	if _, err := RandFieldElement(curve, failingReader{}); !errors.Is(err, ErrRandomUnavailable) {
		t.Errorf("failing reader: got %v, want ErrRandomUnavailable", err)
	}
}

// TestSignVerifyRS checks the primitive over a fixed digest.
func TestSignVerifyRS(t *testing.T) {
	curve := P256Sm2()

	d, err := RandPrivateScalar(curve, rand.Reader)
	if err != nil {
		t.Fatalf("key generation failed: %v", err)
	}
	px, py := curve.ScalarBaseMult(d.Bytes())

	digest := sha256.Sum256([]byte("primitive digest input"))

	r, s, err := SignRS(rand.Reader, curve, d, digest[:])
	if err != nil {
		t.Fatalf("SignRS failed: %v", err)
	}
	if r.Sign() <= 0 || r.Cmp(curve.N) >= 0 || s.Sign() <= 0 || s.Cmp(curve.N) >= 0 {
		t.Fatal("signature components out of range")
	}

	if !VerifyRS(curve, px, py, digest[:], r, s) {
		t.Error("valid signature rejected")
	}

	bad := sha256.Sum256([]byte("different digest input"))
	if VerifyRS(curve, px, py, bad[:], r, s) {
		t.Error("signature accepted for the wrong digest")
	}

	if VerifyRS(curve, px, py, digest[:], s, r) {
		t.Error("swapped (r, s) accepted")
	}
	if VerifyRS(curve, px, py, digest[:], big.NewInt(0), s) {
		t.Error("r = 0 accepted")
	}
	if VerifyRS(curve, px, py, digest[:], r, curve.N) {
		t.Error("s = n accepted")
	}
	if VerifyRS(curve, px, py, digest[:], nil, s) {
		t.Error("nil r accepted")
	}
}

// TestSignRSRejectsBadScalar checks the private-scalar guards, including the
// d = n-1 case whose 1+d has no modular inverse.
func TestSignRSRejectsBadScalar(t *testing.T) {
	curve := P256Sm2()
	digest := sha256.Sum256([]byte("x"))

	nMinus1 := new(big.Int).Sub(curve.N, big.NewInt(1))

	for _, d := range []*big.Int{nil, big.NewInt(0), curve.N, nMinus1} {
		if _, _, err := SignRS(rand.Reader, curve, d, digest[:]); !errors.Is(err, ErrInvalidScalar) {
			t.Errorf("d=%v: got %v, want ErrInvalidScalar", d, err)
		}
	}
}

// TestSignRSRandomFailure checks that signing propagates source failures.
func TestSignRSRandomFailure(t *testing.T) {
	curve := P256Sm2()
	digest := sha256.Sum256([]byte("x"))

	if _, _, err := SignRS(failingReader{}, curve, big.NewInt(7), digest[:]); !errors.Is(err, ErrRandomUnavailable) {
		t.Errorf("got %v, want ErrRandomUnavailable", err)
	}
}
