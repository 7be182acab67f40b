package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters matching the stored "salt:key" hex digests.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
)

// HashPassword derives an scrypt digest and encodes it as
// "salthex:keyhex". The hex-encoded salt string itself is the scrypt
// salt input, so existing digests keep verifying.
func HashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	saltHex := hex.EncodeToString(salt)

	key, err := scrypt.Key([]byte(password), []byte(saltHex), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", err
	}
	return saltHex + ":" + hex.EncodeToString(key), nil
}

// VerifyPassword checks password against a stored digest in constant
// time.
func VerifyPassword(password, digest string) (bool, error) {
	saltHex, keyHex, ok := strings.Cut(digest, ":")
	if !ok {
		return false, errors.New("malformed password digest")
	}
	stored, err := hex.DecodeString(keyHex)
	if err != nil {
		return false, err
	}

	key, err := scrypt.Key([]byte(password), []byte(saltHex), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(key, stored) == 1, nil
}
