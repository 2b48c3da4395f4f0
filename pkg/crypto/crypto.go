package crypto

import (
	"crypto/sha256"
	"encoding/base64"
)

func SHA256(b []byte) string {
	hashed := sha256.Sum256(b)
	return base64.StdEncoding.EncodeToString(hashed[:])
}

// PasswordHash returns the pwhash stored for a plain password.
func PasswordHash(password string) string {
	return SHA256([]byte(password))
}
