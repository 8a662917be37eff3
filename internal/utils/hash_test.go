// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"
	"sync"
	"testing"

	"golang.org/x/crypto/blake2b"
)

func TestHash_MatchesBlake2b(t *testing.T) {
	data := []byte("typedconf")
	want := blake2b.Sum256(data)

	got := Hash(data)
	if hex.EncodeToString(got) != hex.EncodeToString(want[:]) {
		t.Fatalf("expected %x, got %x", want, got)
	}
}

func TestHash_Concurrent(t *testing.T) {
	want := hex.EncodeToString(Hash([]byte("value")))

	var wg sync.WaitGroup
	for range 32 {
		wg.Go(func() {
			if got := hex.EncodeToString(Hash([]byte("value"))); got != want {
				t.Errorf("expected %s, got %s", want, got)
			}
		})
	}
	wg.Wait()
}

func TestFingerprint_KeyOrderIndependent(t *testing.T) {
	a := map[string]any{"b": 1.0, "a": map[string]any{"y": true, "x": "s"}}
	b := map[string]any{"a": map[string]any{"x": "s", "y": true}, "b": 1.0}

	fa, err := Fingerprint(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fb, err := Fingerprint(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fa != fb {
		t.Errorf("expected equal fingerprints, got %s and %s", fa, fb)
	}
	if len(fa) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(fa))
	}
}

func TestFingerprint_DiffersOnChange(t *testing.T) {
	fa, _ := Fingerprint(map[string]any{"port": 80.0})
	fb, _ := Fingerprint(map[string]any{"port": 81.0})

	if fa == fb {
		t.Error("expected different fingerprints for different trees")
	}
}

func TestFingerprint_Unencodable(t *testing.T) {
	if _, err := Fingerprint(map[string]any{"ch": make(chan int)}); err == nil {
		t.Error("expected error for unencodable value, got nil")
	}
}
