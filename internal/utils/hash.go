// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// hasherPool is a package-level pool of reusable unkeyed BLAKE2b-256
// instances.
var hasherPool = sync.Pool{
	New: func() any {
		// New256 only fails for keys longer than 64 bytes.
		h, _ := blake2b.New256(nil)
		return h
	},
}

// Hash computes the BLAKE2b-256 digest of data using a hasher pulled from
// the pool.
//
// Example usage:
//
//	digest := utils.Hash([]byte("some data"))
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// Fingerprint returns the hex BLAKE2b-256 digest of the canonical JSON
// encoding of v. Map keys are encoded in sorted order, so equal trees always
// produce equal fingerprints.
//
// Example usage:
//
//	etag, err := utils.Fingerprint(snapshot.Tree)
func Fingerprint(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("error encoding value for fingerprint: %w", err)
	}

	return hex.EncodeToString(Hash(data)), nil
}
