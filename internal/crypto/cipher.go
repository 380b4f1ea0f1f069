// Package crypto holds the two cryptographic primitives of the service:
// bcrypt password hashing and the authenticated symmetric cipher protecting
// the resident registration number (RRN) at rest.
//
// Both primitives are pure, synchronous computations that depend only on
// their inputs and the process-wide keys fixed at construction time, so they
// are safe for unsynchronized concurrent use from request handlers.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// cipherTokenVersion is the format version byte prepended to every cipher
// token. A future key or format migration bumps this value; decryption
// rejects versions it does not recognize.
const cipherTokenVersion byte = 0x01

// ErrInvalidCipherToken is returned by [Cipher.Decrypt] when the input is not
// a well-formed cipher token, the authentication tag does not verify
// (tampered or corrupted ciphertext), or the token was produced under a
// different key. Callers must treat this as "data unreadable", which is a
// different condition from "field absent".
var ErrInvalidCipherToken = errors.New("invalid cipher token")

// Cipher encrypts and decrypts the protected identifier field with
// AES-256-GCM under a single process-wide key.
//
// Encryption is non-deterministic (a fresh nonce is drawn per call) but
// always invertible under the same key. The produced token is a
// self-contained string: base64(version ‖ nonce ‖ ciphertext+tag).
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher constructs a Cipher from a 32-byte key. The key is loaded once at
// process start from configuration and is fixed for the process lifetime —
// there is no rotation scheme.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("cipher key must be 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &Cipher{aead: aead}, nil
}

// Encrypt seals plaintext into a cipher token. Calling Encrypt twice on the
// same plaintext yields different tokens because the nonce is random, yet
// both decrypt to the original value.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// blob = version || nonce || ciphertext+tag
	blob := make([]byte, 0, 1+len(nonce)+len(plaintext)+c.aead.Overhead())
	blob = append(blob, cipherTokenVersion)
	blob = append(blob, nonce...)
	blob = c.aead.Seal(blob, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt opens a cipher token produced by [Cipher.Encrypt] and returns the
// original plaintext. Every failure mode — undecodable base64, unknown
// version byte, truncated blob, authentication-tag mismatch, wrong key —
// is reported as [ErrInvalidCipherToken]; a wrong key never yields
// valid-looking garbage.
func (c *Cipher) Decrypt(token string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrInvalidCipherToken, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(blob) < 1+nonceSize {
		return "", fmt.Errorf("%w: token too short", ErrInvalidCipherToken)
	}
	if blob[0] != cipherTokenVersion {
		return "", fmt.Errorf("%w: unsupported token version %#x", ErrInvalidCipherToken, blob[0])
	}

	nonce, ciphertext := blob[1:1+nonceSize], blob[1+nonceSize:]

	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidCipherToken, err)
	}

	return string(plaintext), nil
}
