package compression

import (
	"fmt"
)

// Algorithm names accepted by NewCompressor
const (
	AlgorithmGzip = "gzip"
	AlgorithmZstd = "zstd"
	AlgorithmLZ4  = "lz4"
	AlgorithmNone = "none"
)

// NewCompressor creates a compressor based on algorithm name
func NewCompressor(algorithm string, level int) (Compressor, error) {
	switch algorithm {
	case AlgorithmZstd:
		return NewZstdCompressor(level)
	case AlgorithmLZ4:
		return NewLZ4Compressor(level)
	case AlgorithmGzip:
		return NewGzipCompressor(level)
	case AlgorithmNone:
		return NewNoOpCompressor(), nil
	default:
		return nil, fmt.Errorf("unknown compression algorithm: %s", algorithm)
	}
}

// ValidateLevel checks level against the range supported by algorithm
func ValidateLevel(algorithm string, level int) error {
	switch algorithm {
	case AlgorithmZstd:
		if level < 1 || level > 22 {
			return fmt.Errorf("zstd level must be between 1 and 22, got %d", level)
		}
	case AlgorithmLZ4:
		if level < 1 || level > 9 {
			return fmt.Errorf("lz4 level must be between 1 and 9, got %d", level)
		}
	case AlgorithmGzip:
		if level < 1 || level > 9 {
			return fmt.Errorf("gzip level must be between 1 and 9, got %d", level)
		}
	case AlgorithmNone:
	default:
		return fmt.Errorf("unknown compression algorithm: %s", algorithm)
	}
	return nil
}

// Close releases codec resources held by c, if any
func Close(c Compressor) error {
	if closer, ok := c.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// NoOpCompressor is a compressor that doesn't compress (pass-through)
type NoOpCompressor struct{}

// NewNoOpCompressor creates a no-op compressor
func NewNoOpCompressor() *NoOpCompressor {
	return &NoOpCompressor{}
}

// Compress returns a copy of data
func (n *NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return append([]byte(nil), data...), nil
}

// Decompress returns a copy of data
func (n *NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return append([]byte(nil), data...), nil
}

// Algorithm returns "none"
func (n *NoOpCompressor) Algorithm() string {
	return AlgorithmNone
}
