package sm2

import "errors"

// Key-related errors
var (
	// ErrPrivateKeyEmpty indicates that the private key is nil or empty
	ErrPrivateKeyEmpty = errors.New("sm2: private key is empty")

	// ErrPublicKeyEmpty indicates that the public key is nil or empty
	ErrPublicKeyEmpty = errors.New("sm2: public key is empty")

	// ErrInvalidPrivateKey indicates a malformed or out-of-range private key
	ErrInvalidPrivateKey = errors.New("sm2: invalid private key")

	// ErrInvalidPublicKey indicates a malformed or off-curve public key
	ErrInvalidPublicKey = errors.New("sm2: invalid public key")

	// ErrUIDTooLong indicates an identity whose bit length overflows the
	// 16-bit ENTL field
	ErrUIDTooLong = errors.New("sm2: uid longer than 8191 bytes")
)

// Encryption/decryption errors
var (
	// ErrPlaintextEmpty indicates an empty plaintext passed to Encrypt
	ErrPlaintextEmpty = errors.New("sm2: plaintext is empty")

	// ErrCiphertextTooShort indicates a ciphertext shorter than its C1 and
	// C3 components
	ErrCiphertextTooShort = errors.New("sm2: ciphertext too short")

	// ErrCiphertextFormat indicates an unsupported ciphertext leading byte
	// or an undecodable C1 point
	ErrCiphertextFormat = errors.New("sm2: unsupported ciphertext format")

	// ErrIntegrity indicates the embedded C3 digest matched under no
	// accepted component ordering
	ErrIntegrity = errors.New("sm2: ciphertext integrity check failed")
)

// Key derivation errors
var (
	// ErrDegenerateKey indicates the KDF keystream came out all zero or an
	// exchange point collapsed to infinity
	ErrDegenerateKey = errors.New("sm2: degenerate key material")
)

// Signature errors
var (
	// ErrSignatureFormat indicates an unparsable raw or DER signature
	ErrSignatureFormat = errors.New("sm2: invalid signature format")

	// ErrVerification is the inner cause traced when a well-formed
	// signature fails the curve equations; Verify reports it as false
	ErrVerification = errors.New("sm2: verification failure")
)

// Randomness errors
var (
	// ErrRandomUnavailable indicates the random source is nil or failed;
	// there is no fallback source
	ErrRandomUnavailable = errors.New("sm2: random source unavailable")
)

// Key exchange errors
var (
	// ErrExchangeParams indicates missing or inconsistent exchange
	// parameters
	ErrExchangeParams = errors.New("sm2: incomplete exchange parameters")

	// ErrInvalidKeyLength indicates a non-positive derived key length
	ErrInvalidKeyLength = errors.New("sm2: invalid shared key length")
)
