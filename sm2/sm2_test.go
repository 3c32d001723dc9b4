package sm2

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"
)

// TestConcurrentUse tests that a single key pair is safe to share across
// goroutines: keys are immutable after construction and every operation
// keeps its working state local
func TestConcurrentUse(t *testing.T) {
	privateKey, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}
	publicKey := privateKey.Public()

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		i := i
		g.Go(func() error {
			message := fmt.Appendf(nil, "concurrent message %d", i)

			signature, err := Sign(rand.Reader, privateKey, message, nil)
			if err != nil {
				return fmt.Errorf("sign: %w", err)
			}
			if !Verify(publicKey, message, signature, nil) {
				return fmt.Errorf("signature rejected for %q", message)
			}

			ciphertext, err := Encrypt(rand.Reader, publicKey, message, OrderAuto)
			if err != nil {
				return fmt.Errorf("encrypt: %w", err)
			}
			plaintext, err := Decrypt(privateKey, ciphertext, OrderAuto)
			if err != nil {
				return fmt.Errorf("decrypt: %w", err)
			}
			if !bytes.Equal(plaintext, message) {
				return fmt.Errorf("round trip mismatch for %q", message)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

// TestConcurrentExchange tests concurrent sessions against one static key
func TestConcurrentExchange(t *testing.T) {
	serverStatic, err := GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		i := i
		g.Go(func() error {
			clientStatic, err := GenerateKey(rand.Reader)
			if err != nil {
				return err
			}
			serverEph, err := GenerateKey(rand.Reader)
			if err != nil {
				return err
			}

			client, err := Exchange(rand.Reader, &ExchangeParams{
				Initiator:        true,
				StaticKey:        clientStatic,
				PeerStaticKey:    serverStatic.Public(),
				PeerEphemeralKey: serverEph.Public(),
			})
			if err != nil {
				return fmt.Errorf("client exchange: %w", err)
			}

			server, err := Exchange(rand.Reader, &ExchangeParams{
				StaticKey:        serverStatic,
				EphemeralKey:     serverEph,
				PeerStaticKey:    clientStatic.Public(),
				PeerEphemeralKey: client.EphemeralPublicKey,
			})
			if err != nil {
				return fmt.Errorf("server exchange: %w", err)
			}

			if !bytes.Equal(client.Key, server.Key) {
				return fmt.Errorf("session %d derived mismatched keys", i)
			}
			if !ConfirmTag(client.ConfirmationPeer, server.ConfirmationMine) {
				return fmt.Errorf("session %d confirmation failed", i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
