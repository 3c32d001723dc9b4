// Package sm2 implements the SM2 elliptic-curve public-key cryptosystem
// (GB/T 32918): encryption, digital signatures, and two-party authenticated
// key exchange over the standard 256-bit prime curve.
//
// This implementation uses:
//   - The SM2 recommended curve via sm2/ecc (built on crypto/elliptic)
//   - SM3 as the digest for every hashing step (Z-value, message digest,
//     C3 integrity tag, KDF blocks, confirmation tags)
//   - XOR stream masking keyed by the KDF for encryption
//   - ASN.1 DER framing via golang.org/x/crypto/cryptobyte for signatures
//
// Interoperability:
//   - Ciphertexts use the C1 || C3 || C2 ordering recommended by the 2016
//     revision of the standard; the legacy C1 || C2 || C3 ordering is
//     available for older peers, and Decrypt auto-detects between the two
//     when no ordering is specified.
//   - C1 is emitted uncompressed (65 bytes) and accepted compressed or
//     uncompressed on decrypt.
//   - Signatures interchange between raw r || s (64 bytes) and DER.
//   - Signing binds the signer identity through the Z-value unless
//     explicitly skipped; signer and verifier must use matching options.
//
// Example usage:
//
//	// Generate a new key pair
//	privateKey, err := sm2.GenerateKey(rand.Reader)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer privateKey.Destroy()
//
//	publicKey := privateKey.Public()
//
//	// Encrypt a message
//	ciphertext, err := sm2.Encrypt(rand.Reader, publicKey, []byte("hello"), sm2.OrderC1C3C2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Decrypt the message
//	plaintext, err := sm2.Decrypt(privateKey, ciphertext, sm2.OrderAuto)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Sign and verify
//	sig, err := sm2.Sign(rand.Reader, privateKey, msg, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ok := sm2.Verify(publicKey, msg, sig, nil)
//
// For key agreement, each party fills an ExchangeParams with its own
// static and ephemeral pairs plus the peer's public values and calls
// Exchange; both sides derive the same key and can prove it to each other
// with the confirmation tags carried in the ExchangeResult.
package sm2
