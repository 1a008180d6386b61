package ghcas

import (
	"crypto/md5"
	"encoding/hex"
	"path"
	"strings"
	"unicode/utf8"
)

// FingerprintLen is the stem length sync uses to recognize uploaded assets.
const FingerprintLen = 32

// Fingerprint returns the 32-character hex MD5 of data. It names files so
// that sync can recognize them later; it is unrelated to BlobHash.
func Fingerprint(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

// StorageName returns the fingerprint of data with the lowercased extension
// of displayName, e.g. "d41d8cd98f00b204e9800998ecf8427e.png".
func StorageName(data []byte, displayName string) string {
	return Fingerprint(data) + strings.ToLower(path.Ext(displayName))
}

// IsFingerprintName reports whether the part of name before the first dot
// is exactly FingerprintLen characters long. Only the length is checked,
// not whether the characters are hex.
func IsFingerprintName(name string) bool {
	stem, _, _ := strings.Cut(name, ".")
	return utf8.RuneCountInString(stem) == FingerprintLen
}
