package ghcas

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
)

// Digest is a Git object id: 40 lowercase hex characters.
type Digest string

func (d Digest) String() string { return string(d) }

// BlobHash returns the id Git assigns to data stored as a blob.
// Format: "blob {size}\0{content}" → SHA-1
func BlobHash(data []byte) Digest {
	h := sha1.New()
	h.Write([]byte("blob "))
	h.Write([]byte(strconv.Itoa(len(data))))
	h.Write([]byte{0})
	h.Write(data)
	return Digest(hex.EncodeToString(h.Sum(nil)))
}

// BlobHashString is BlobHash for text content.
func BlobHashString(s string) Digest {
	return BlobHash([]byte(s))
}
