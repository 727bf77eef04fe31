package compression

import (
	"fmt"
	"io"
	"os"
)

// WriteArtifact compresses data with c and writes the result to path,
// truncating any existing file. The file is closed on every return path.
func WriteArtifact(c Compressor, data []byte, path string) (result *CompressionResult, err error) {
	compressed, err := c.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to compress artifact: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create artifact: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			result = nil
			err = fmt.Errorf("failed to close artifact: %w", closeErr)
		}
	}()

	if _, err := file.Write(compressed); err != nil {
		return nil, fmt.Errorf("failed to write artifact: %w", err)
	}

	return &CompressionResult{
		Path:             path,
		OriginalSize:     int64(len(data)),
		CompressedSize:   int64(len(compressed)),
		CompressionRatio: CalculateCompressionRatio(int64(len(data)), int64(len(compressed))),
		Algorithm:        c.Algorithm(),
	}, nil
}

// ReadArtifact reads the compressed artifact at path and returns the decompressed bytes
func ReadArtifact(c Compressor, path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open artifact: %w", err)
	}
	defer file.Close()

	compressed, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	data, err := c.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress artifact %s: %w", path, err)
	}

	return data, nil
}
