package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"log"

	"golang.org/x/crypto/pbkdf2"

	"github.com/user/pension-backend/apperror"
)

const (
	saltLength    = 16
	nonceLength   = 12
	keyLength     = 32 // AES-256
	kdfIterations = 10000
)

// Crypter is the login-token codec: it symmetric-encrypts the canonical JSON
// of a MiniUser under a process-wide secret, producing an opaque string
// token. The codec enforces no expiry; that is the caller's concern.
type Crypter struct {
	secret []byte
}

// NewCrypter creates the codec. An empty secret is a configuration error and
// refused up front rather than at the first login.
func NewCrypter(secret string) (*Crypter, error) {
	if secret == "" {
		return nil, apperror.NewConfigError("token secret must not be empty", nil)
	}
	return &Crypter{secret: []byte(secret)}, nil
}

// Issue serializes the principal to JSON and encrypts it with AES-256-GCM
// under a key derived from the secret with PBKDF2 and a fresh random salt.
// The token is base64url(salt || nonce || ciphertext).
func (c *Crypter) Issue(principal *MiniUser) (string, error) {
	plaintext, err := json.Marshal(principal)
	if err != nil {
		return "", apperror.NewInternalError("failed to serialize principal", err)
	}

	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", apperror.NewInternalError("failed to generate token salt", err)
	}

	gcm, err := c.aead(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, nonceLength)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", apperror.NewInternalError("failed to generate token nonce", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	token := make([]byte, 0, saltLength+nonceLength+len(ciphertext))
	token = append(token, salt...)
	token = append(token, nonce...)
	token = append(token, ciphertext...)
	return base64.RawURLEncoding.EncodeToString(token), nil
}

// Verify decrypts and parses a token. On any failure (bad encoding, wrong
// key, truncated ciphertext, malformed JSON) it returns (nil, false); callers
// treat that as "unauthenticated", never as an error.
func (c *Crypter) Verify(token string) (*MiniUser, bool) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		log.Println("invalid login token")
		return nil, false
	}
	if len(raw) < saltLength+nonceLength {
		log.Println("invalid login token")
		return nil, false
	}

	salt := raw[:saltLength]
	nonce := raw[saltLength : saltLength+nonceLength]
	ciphertext := raw[saltLength+nonceLength:]

	gcm, err := c.aead(salt)
	if err != nil {
		return nil, false
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		log.Println("invalid login token")
		return nil, false
	}

	var principal MiniUser
	if err := json.Unmarshal(plaintext, &principal); err != nil {
		log.Println("invalid login token")
		return nil, false
	}
	return &principal, true
}

func (c *Crypter) aead(salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key(c.secret, salt, kdfIterations, keyLength, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, apperror.NewInternalError("failed to initialize token cipher", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, apperror.NewInternalError("failed to initialize token cipher", err)
	}
	return gcm, nil
}
