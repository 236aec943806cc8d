package password

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters. Fixed: digests must stay comparable across restarts.
const (
	iterations = 10000
	keyLength  = 64
	saltBytes  = 16
)

// Hash derives a hex-encoded PBKDF2-SHA512 digest from password and salt.
// Same inputs always yield the same digest.
func Hash(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLength, sha512.New)
	return hex.EncodeToString(key)
}

// NewSalt returns a fresh hex-encoded random salt. A new salt is generated
// on every credential-set operation and never reused.
func NewSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// Verify recomputes the digest with the stored salt and compares it to the
// stored digest in constant time.
func Verify(password, salt, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(Hash(password, salt)), []byte(digest)) == 1
}
