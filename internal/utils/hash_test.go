// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "test-secret-key"

func TestHasher_SumMatchesHMAC(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("alice|Family|42")

	sum1 := h.Sum(data)
	sum2 := h.Sum(data)
	require.NotEmpty(t, sum1)
	assert.Equal(t, sum1, sum2, "digest must be deterministic")

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(data)
	assert.Equal(t, mac.Sum(nil), sum1)
}

func TestHasher_Verify(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("payload")
	sig := h.Sum(data)

	assert.True(t, h.Verify(data, sig))
	assert.False(t, h.Verify([]byte("tampered"), sig))
	assert.False(t, NewHasher("other-key").Verify(data, sig))
	assert.False(t, h.Verify(data, nil))
}

func TestHasher_Concurrent(t *testing.T) {
	h := NewHasher(testHashKey)
	want := h.Sum([]byte("x"))

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, h.Sum([]byte("x")))
		}()
	}
	wg.Wait()
}

func TestHashString(t *testing.T) {
	got := HashString("data", testHashKey)

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write([]byte("data"))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), got)
	assert.NotEqual(t, got, HashString("data", "another"))
}
