package compression_test

import (
	"bytes"
	"testing"

	"github.com/freqpack/freqpack/internal/compression"
)

func TestZstdCompression(t *testing.T) {
	compressor, err := compression.NewZstdCompressor(3)
	if err != nil {
		t.Fatalf("Failed to create zstd compressor: %v", err)
	}
	defer compressor.Close()

	data := []byte("This is test data for compression. " + string(make([]byte, 1000)))

	compressed, err := compressor.Compress(data)
	if err != nil {
		t.Fatalf("Failed to compress data: %v", err)
	}

	if len(compressed) >= len(data) {
		t.Error("Compressed data should be smaller than original")
	}

	decompressed, err := compressor.Decompress(compressed)
	if err != nil {
		t.Fatalf("Failed to decompress data: %v", err)
	}

	if !bytes.Equal(data, decompressed) {
		t.Error("Decompressed data doesn't match original")
	}
}

func TestGzipCompression(t *testing.T) {
	compressor, err := compression.NewGzipCompressor(6)
	if err != nil {
		t.Fatalf("Failed to create gzip compressor: %v", err)
	}

	data := bytes.Repeat([]byte{1, 1, 0, 0}, 500)

	compressed, err := compressor.Compress(data)
	if err != nil {
		t.Fatalf("Failed to compress data: %v", err)
	}

	if len(compressed) >= len(data) {
		t.Error("Compressed data should be smaller than original")
	}
	if len(compressed) < 18 || compressed[0] != 0x1f || compressed[1] != 0x8b {
		t.Errorf("Expected gzip framing, got header %x", compressed[:2])
	}

	decompressed, err := compressor.Decompress(compressed)
	if err != nil {
		t.Fatalf("Failed to decompress data: %v", err)
	}

	if !bytes.Equal(data, decompressed) {
		t.Error("Decompressed data doesn't match original")
	}
}

func TestRoundTripAllAlgorithms(t *testing.T) {
	inputs := map[string][]byte{
		"scenario": {1, 1, 0, 0},
		"single":   {1},
		"long":     bytes.Repeat([]byte{0, 1, 1, 0, 1}, 4096),
	}

	for _, algorithm := range []string{"gzip", "zstd", "lz4", "none"} {
		compressor, err := compression.NewCompressor(algorithm, 3)
		if err != nil {
			t.Fatalf("Failed to create %s compressor: %v", algorithm, err)
		}

		for name, data := range inputs {
			t.Run(algorithm+"/"+name, func(t *testing.T) {
				compressed, err := compressor.Compress(data)
				if err != nil {
					t.Fatalf("Failed to compress: %v", err)
				}

				decompressed, err := compressor.Decompress(compressed)
				if err != nil {
					t.Fatalf("Failed to decompress: %v", err)
				}

				if !bytes.Equal(data, decompressed) {
					t.Errorf("Round trip mismatch: expected %d bytes, got %d", len(data), len(decompressed))
				}
			})
		}

		if err := compression.Close(compressor); err != nil {
			t.Errorf("Failed to close %s compressor: %v", algorithm, err)
		}
	}
}

func TestNewCompressor_Invalid(t *testing.T) {
	if _, err := compression.NewCompressor("brotli", 3); err == nil {
		t.Error("Expected error for unknown algorithm")
	}
	if _, err := compression.NewCompressor("gzip", 10); err == nil {
		t.Error("Expected error for gzip level 10")
	}
	if _, err := compression.NewCompressor("zstd", 0); err == nil {
		t.Error("Expected error for zstd level 0")
	}
	if _, err := compression.NewCompressor("lz4", 12); err == nil {
		t.Error("Expected error for lz4 level 12")
	}
}

func TestGzipDecompress_Corrupted(t *testing.T) {
	compressor, err := compression.NewGzipCompressor(6)
	if err != nil {
		t.Fatalf("Failed to create gzip compressor: %v", err)
	}

	if _, err := compressor.Decompress([]byte("definitely not gzip")); err == nil {
		t.Error("Expected error decompressing corrupted data")
	}
}

func TestCalculateCompressionRatio(t *testing.T) {
	if ratio := compression.CalculateCompressionRatio(0, 10); ratio != 0 {
		t.Errorf("Expected 0 for empty original, got %f", ratio)
	}
	if ratio := compression.CalculateCompressionRatio(100, 25); ratio != 0.25 {
		t.Errorf("Expected 0.25, got %f", ratio)
	}
}
