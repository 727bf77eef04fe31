package compression_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/freqpack/freqpack/internal/compression"
)

func TestWriteReadArtifact(t *testing.T) {
	compressor, err := compression.NewGzipCompressor(6)
	if err != nil {
		t.Fatalf("Failed to create gzip compressor: %v", err)
	}

	path := filepath.Join(t.TempDir(), "compressed.gz")
	data := []byte{1, 1, 0, 0}

	result, err := compression.WriteArtifact(compressor, data, path)
	if err != nil {
		t.Fatalf("Failed to write artifact: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat artifact: %v", err)
	}
	if info.Size() != result.CompressedSize {
		t.Errorf("Expected artifact size %d, got %d", result.CompressedSize, info.Size())
	}
	if result.OriginalSize != 4 {
		t.Errorf("Expected original size 4, got %d", result.OriginalSize)
	}
	if result.Algorithm != "gzip" {
		t.Errorf("Expected algorithm gzip, got %s", result.Algorithm)
	}

	decompressed, err := compression.ReadArtifact(compressor, path)
	if err != nil {
		t.Fatalf("Failed to read artifact: %v", err)
	}
	if !bytes.Equal(decompressed, data) {
		t.Errorf("Expected %v, got %v", data, decompressed)
	}
}

func TestWriteArtifact_UnwritablePath(t *testing.T) {
	compressor := compression.NewNoOpCompressor()
	path := filepath.Join(t.TempDir(), "missing", "dir", "compressed.gz")

	if _, err := compression.WriteArtifact(compressor, []byte{1}, path); err == nil {
		t.Error("Expected error writing to a missing directory")
	}
}

func TestReadArtifact_Missing(t *testing.T) {
	compressor := compression.NewNoOpCompressor()

	if _, err := compression.ReadArtifact(compressor, filepath.Join(t.TempDir(), "nope.gz")); err == nil {
		t.Error("Expected error reading a missing artifact")
	}
}

func TestReadArtifact_Corrupted(t *testing.T) {
	compressor, err := compression.NewGzipCompressor(6)
	if err != nil {
		t.Fatalf("Failed to create gzip compressor: %v", err)
	}

	path := filepath.Join(t.TempDir(), "compressed.gz")
	if err := os.WriteFile(path, []byte{0x1f, 0x8b, 0x00, 0x01}, 0644); err != nil {
		t.Fatalf("Failed to write corrupted artifact: %v", err)
	}

	if _, err := compression.ReadArtifact(compressor, path); err == nil {
		t.Error("Expected error reading a corrupted artifact")
	}
}
