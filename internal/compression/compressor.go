package compression

// Compressor defines the interface for byte-stream codecs
type Compressor interface {
	// Compress compresses data and returns compressed data
	Compress(data []byte) ([]byte, error)

	// Decompress decompresses data and returns original data
	Decompress(data []byte) ([]byte, error)

	// Algorithm returns the algorithm name
	Algorithm() string
}

// CompressionResult represents the result of writing a compressed artifact
type CompressionResult struct {
	Path             string
	OriginalSize     int64
	CompressedSize   int64
	CompressionRatio float64
	Algorithm        string
}

// CalculateCompressionRatio calculates the compression ratio (compressed/original)
func CalculateCompressionRatio(originalSize, compressedSize int64) float64 {
	if originalSize == 0 {
		return 0.0
	}
	return float64(compressedSize) / float64(originalSize)
}
