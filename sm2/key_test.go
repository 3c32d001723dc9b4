package sm2

import (
	"crypto/rand"
	"errors"
	"strings"
	"testing"
)

// TestGenerateKey tests key pair generation and the serialized shapes
func TestGenerateKey(t *testing.T) {
	privateKey, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}
	defer privateKey.Destroy()

	if privateKey.Public() == nil {
		t.Fatal("Public key is nil")
	}

	privHex := privateKey.Hex()
	if len(privHex) != 2*PrivateKeySize {
		t.Errorf("Private key hex length = %d, want %d", len(privHex), 2*PrivateKeySize)
	}
	if privHex != strings.ToLower(privHex) {
		t.Error("Private key hex should be lowercase")
	}

	pubHex := privateKey.Public().Hex(false)
	if len(pubHex) != 2*UncompressedPointSize {
		t.Errorf("Public key hex length = %d, want %d", len(pubHex), 2*UncompressedPointSize)
	}
	if !strings.HasPrefix(pubHex, "04") {
		t.Errorf("Uncompressed public key should start with 04, got %s", pubHex[:2])
	}

	compHex := privateKey.Public().Hex(true)
	if len(compHex) != 2*CompressedPointSize {
		t.Errorf("Compressed public key hex length = %d, want %d", len(compHex), 2*CompressedPointSize)
	}
	if !strings.HasPrefix(compHex, "02") && !strings.HasPrefix(compHex, "03") {
		t.Errorf("Compressed public key should start with 02 or 03, got %s", compHex[:2])
	}
}

// TestGenerateKeyNilRandom tests that a missing random source is a hard error
func TestGenerateKeyNilRandom(t *testing.T) {
	_, err := GenerateKey(nil)
	if !errors.Is(err, ErrRandomUnavailable) {
		t.Errorf("Expected ErrRandomUnavailable, got %v", err)
	}
}

// TestKeyEquality tests constant-time key comparison
func TestKeyEquality(t *testing.T) {
	key1, _ := GenerateKey(rand.Reader)
	defer key1.Destroy()
	key2, _ := GenerateKey(rand.Reader)
	defer key2.Destroy()

	if !key1.Equals(key1) {
		t.Error("Key should equal itself")
	}
	if key1.Equals(key2) {
		t.Error("Different keys should not be equal")
	}
	if key1.Equals(nil) {
		t.Error("Key should not equal nil")
	}

	same, err := NewPrivateKey(key1.Bytes())
	if err != nil {
		t.Fatalf("NewPrivateKey failed: %v", err)
	}
	if !key1.Equals(same) {
		t.Error("Keys built from the same scalar should be equal")
	}
	if !key1.Public().Equals(same.Public()) {
		t.Error("Public keys of the same scalar should be equal")
	}
	if key1.Public().Equals(key2.Public()) {
		t.Error("Different public keys should not be equal")
	}
}

// TestKeyDestroy tests that Destroy clears the scalar
func TestKeyDestroy(t *testing.T) {
	privateKey, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}

	if len(privateKey.Bytes()) == 0 {
		t.Fatal("Key bytes are empty before destroy")
	}

	privateKey.Destroy()

	if privateKey.d != nil {
		t.Error("d should be nil after Destroy()")
	}
	if privateKey.Bytes() != nil {
		t.Error("Bytes() should return nil after Destroy()")
	}
}

// TestNewPrivateKey tests scalar range validation
func TestNewPrivateKey(t *testing.T) {
	tests := []struct {
		name    string
		d       []byte
		wantErr error
	}{
		{"nil", nil, ErrPrivateKeyEmpty},
		{"empty", []byte{}, ErrPrivateKeyEmpty},
		{"zero", make([]byte, 32), ErrInvalidPrivateKey},
		{"one", append(make([]byte, 31), 0x01), nil},
		{"short scalar", []byte{0x7f}, nil},
		{"too long", make([]byte, 33), ErrInvalidPrivateKey},
		{
			// the curve order n is out of range
			name: "order",
			d: []byte{
				0xff, 0xff, 0xff, 0xfe, 0xff, 0xff, 0xff, 0xff,
				0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
				0x72, 0x03, 0xdf, 0x6b, 0x21, 0xc6, 0x05, 0x2b,
				0x53, 0xbb, 0xf4, 0x09, 0x39, 0xd5, 0x41, 0x23,
			},
			wantErr: ErrInvalidPrivateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := NewPrivateKey(tt.d)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewPrivateKey() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPrivateKey() failed: %v", err)
			}
			if key.Public() == nil {
				t.Error("Public key not derived")
			}
		})
	}
}

// TestParsePrivateKey tests hex normalization on private key input
func TestParsePrivateKey(t *testing.T) {
	key, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}
	defer key.Destroy()
	canonical := key.Hex()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"canonical", canonical, false},
		{"0x prefix", "0x" + canonical, false},
		{"0X prefix", "0X" + canonical, false},
		{"uppercase", strings.ToUpper(canonical), false},
		{"empty", "", true},
		{"prefix only", "0x", true},
		{"non-hex", strings.Repeat("zz", 32), true},
		{"too long", canonical + "00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParsePrivateKey(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected parse error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePrivateKey() failed: %v", err)
			}
			if parsed.Hex() != canonical {
				t.Errorf("Parsed key = %s, want %s", parsed.Hex(), canonical)
			}
		})
	}
}

// TestParsePrivateKeyShortPad tests zero left-padding of short hex input
func TestParsePrivateKeyShortPad(t *testing.T) {
	parsed, err := ParsePrivateKey("0x1f")
	if err != nil {
		t.Fatalf("ParsePrivateKey() failed: %v", err)
	}
	want := strings.Repeat("0", 62) + "1f"
	if parsed.Hex() != want {
		t.Errorf("Parsed key = %s, want %s", parsed.Hex(), want)
	}
}

// TestPublicKeyCompression tests that the two point forms round-trip
// byte-for-byte
func TestPublicKeyCompression(t *testing.T) {
	key, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}
	defer key.Destroy()
	pub := key.Public()

	uncompressed := pub.Bytes(false)
	if len(uncompressed) != UncompressedPointSize {
		t.Errorf("Uncompressed length = %d, want %d", len(uncompressed), UncompressedPointSize)
	}

	compressed := pub.Bytes(true)
	if len(compressed) != CompressedPointSize {
		t.Errorf("Compressed length = %d, want %d", len(compressed), CompressedPointSize)
	}

	fromCompressed, err := NewPublicKey(compressed)
	if err != nil {
		t.Fatalf("Failed to decompress: %v", err)
	}
	if !fromCompressed.Equals(pub) {
		t.Error("Decompressed point differs from original")
	}
	if fromCompressed.Hex(false) != pub.Hex(false) {
		t.Error("Round trip through compression is not byte-for-byte")
	}
}

// TestPublicKeyHexHelpers tests the hex-level compression helpers
func TestPublicKeyHexHelpers(t *testing.T) {
	key, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}
	defer key.Destroy()
	pub := key.Public()

	compHex, err := CompressPublicKey(pub.Hex(false))
	if err != nil {
		t.Fatalf("CompressPublicKey failed: %v", err)
	}
	if compHex != pub.Hex(true) {
		t.Errorf("CompressPublicKey = %s, want %s", compHex, pub.Hex(true))
	}

	uncompHex, err := DecompressPublicKey(compHex)
	if err != nil {
		t.Fatalf("DecompressPublicKey failed: %v", err)
	}
	if uncompHex != pub.Hex(false) {
		t.Errorf("DecompressPublicKey = %s, want %s", uncompHex, pub.Hex(false))
	}

	// Compressing an already-compressed key is a no-op
	again, err := CompressPublicKey(compHex)
	if err != nil || again != compHex {
		t.Errorf("CompressPublicKey(compressed) = %s, %v", again, err)
	}

	if !EqualPublicKeyHex(compHex, uncompHex) {
		t.Error("EqualPublicKeyHex should accept mixed forms")
	}
	if !EqualPublicKeyHex("0x"+strings.ToUpper(compHex), uncompHex) {
		t.Error("EqualPublicKeyHex should normalize prefix and case")
	}
	other, _ := GenerateKey(rand.Reader)
	defer other.Destroy()
	if EqualPublicKeyHex(compHex, other.Public().Hex(false)) {
		t.Error("EqualPublicKeyHex should reject different points")
	}
	if EqualPublicKeyHex("zz", uncompHex) {
		t.Error("EqualPublicKeyHex should reject unparsable input")
	}
}

// TestParsePublicKeyRejects tests malformed public key input
func TestParsePublicKeyRejects(t *testing.T) {
	key, _ := GenerateKey(rand.Reader)
	defer key.Destroy()
	valid := key.Public().Hex(false)

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"bad prefix", "05" + valid[2:]},
		{"truncated", valid[:len(valid)-2]},
		{"non-hex", strings.Repeat("zz", UncompressedPointSize)},
		{"odd length", valid[:len(valid)-1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePublicKey(tt.input); err == nil {
				t.Error("Expected parse error")
			}
		})
	}
}

// TestNewPublicKeyOffCurve tests that off-curve points are rejected
func TestNewPublicKeyOffCurve(t *testing.T) {
	key, _ := GenerateKey(rand.Reader)
	defer key.Destroy()

	encoded := key.Public().Bytes(false)
	encoded[UncompressedPointSize-1] ^= 0x01 // perturb y

	if _, err := NewPublicKey(encoded); !errors.Is(err, ErrInvalidPublicKey) {
		t.Errorf("Expected ErrInvalidPublicKey, got %v", err)
	}
}
