// Package shortkey derives the short suffix of a binding from its original URL.
package shortkey

import (
	"crypto/sha256"
	"encoding/base64"
)

// Length is the number of characters in a suffix.
const Length = 8

// Suffix returns the first Length characters of the unpadded base64url encoded
// SHA-256 digest of url. The same url always yields the same suffix.
func Suffix(url string) string {
	sum := sha256.Sum256([]byte(url))
	return base64.RawURLEncoding.EncodeToString(sum[:])[:Length]
}
