package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher provides keyed HMAC-SHA256 signatures. Hash instances are pooled
// per Hasher so concurrent requests do not allocate a new HMAC each time.
type Hasher struct {
	hashKey []byte
	pool    sync.Pool
}

// NewHasher returns a Hasher that signs with hashKey.
//
//	h := utils.NewHasher("my-secret-key")
//	sig := h.Sum([]byte("payload"))
func NewHasher(hashKey string) *Hasher {
	h := &Hasher{hashKey: []byte(hashKey)}
	h.pool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, h.hashKey)
		},
	}
	return h
}

// Sum computes the HMAC-SHA256 digest of data.
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// Verify reports whether signature is the digest of data, in constant time.
func (h *Hasher) Verify(data, signature []byte) bool {
	return hmac.Equal(h.Sum(data), signature)
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Unlike [Hasher], a new HMAC instance is created on each call.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
