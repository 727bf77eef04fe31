package hashing

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// Hash computes a BLAKE3 hash of the input data
func Hash(data []byte) []byte {
	hasher := blake3.New()
	hasher.Write(data)
	return hasher.Sum(nil)
}

// HashString computes a BLAKE3 hash and returns it as a hex string
func HashString(data []byte) string {
	return hex.EncodeToString(Hash(data))
}

// HashReader computes a BLAKE3 hash of data read from an io.Reader
func HashReader(reader io.Reader) ([]byte, error) {
	if reader == nil {
		return nil, fmt.Errorf("reader cannot be nil")
	}
	hasher := blake3.New()
	if _, err := io.Copy(hasher, reader); err != nil {
		return nil, err
	}
	return hasher.Sum(nil), nil
}

// HashFileString hashes the contents of the file at path and returns a hex string
func HashFileString(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash, err := HashReader(file)
	if err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}
	return hex.EncodeToString(hash), nil
}
