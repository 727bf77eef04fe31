package hashing_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/freqpack/freqpack/internal/hashing"
)

func TestHash(t *testing.T) {
	hash := hashing.Hash([]byte{1, 1, 0, 0})

	if len(hash) != 32 {
		t.Errorf("Expected hash length 32, got %d", len(hash))
	}
}

func TestHashString(t *testing.T) {
	hashStr := hashing.HashString([]byte("test data"))
	if len(hashStr) != 64 {
		t.Errorf("Expected hash string length 64, got %d", len(hashStr))
	}
}

func TestHash_EmptyKnownVector(t *testing.T) {
	expected := "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"
	if got := hashing.HashString(nil); got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}

func TestHash_DistinguishesSameLength(t *testing.T) {
	a := hashing.HashString([]byte{1, 1, 0, 0})
	b := hashing.HashString([]byte{0, 0, 1, 1})
	if a == b {
		t.Error("Different content of equal length should hash differently")
	}
}

func TestHashReader(t *testing.T) {
	data := []byte(strings.Repeat("ABCD", 1000))

	fromReader, err := hashing.HashReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to hash reader: %v", err)
	}

	if !bytes.Equal(fromReader, hashing.Hash(data)) {
		t.Error("Reader hash should match direct hash")
	}

	if _, err := hashing.HashReader(nil); err == nil {
		t.Error("Expected error for nil reader")
	}
}

func TestHashFileString(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.bin")
	data := []byte{1, 0, 1, 0}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	got, err := hashing.HashFileString(path)
	if err != nil {
		t.Fatalf("Failed to hash file: %v", err)
	}
	if got != hashing.HashString(data) {
		t.Errorf("File hash %s does not match data hash", got)
	}

	if _, err := hashing.HashFileString(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error for missing file")
	}
}
