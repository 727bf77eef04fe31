package compression

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

var lz4Levels = []lz4.CompressionLevel{
	lz4.Level1, lz4.Level2, lz4.Level3,
	lz4.Level4, lz4.Level5, lz4.Level6,
	lz4.Level7, lz4.Level8, lz4.Level9,
}

// LZ4Compressor implements LZ4 compression using the frame format, which
// records content sizes and checksums so no size hint is needed to decode.
type LZ4Compressor struct {
	level int
}

// NewLZ4Compressor creates a new LZ4 compressor
func NewLZ4Compressor(level int) (*LZ4Compressor, error) {
	if err := ValidateLevel(AlgorithmLZ4, level); err != nil {
		return nil, err
	}

	return &LZ4Compressor{
		level: level,
	}, nil
}

// Compress compresses data into an LZ4 frame
func (l *LZ4Compressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := lz4.NewWriter(&buf)
	if err := writer.Apply(lz4.CompressionLevelOption(lz4Levels[l.level-1])); err != nil {
		return nil, fmt.Errorf("failed to configure lz4 writer: %w", err)
	}

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return nil, fmt.Errorf("failed to compress: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close lz4 writer: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses an LZ4 frame
func (l *LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	decompressed, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}

	return decompressed, nil
}

// Algorithm returns the algorithm name
func (l *LZ4Compressor) Algorithm() string {
	return AlgorithmLZ4
}
