package analysis

import (
	"bytes"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// PackBits packs the sequence 8 bits per byte, most significant bit first.
// The final byte is zero padded.
func PackBits(bits BitSequence) ([]byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for _, bit := range bits {
		if err := w.WriteBool(bit == 1); err != nil {
			return nil, fmt.Errorf("failed to write bit: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush bits: %w", err)
	}
	return buf.Bytes(), nil
}

// UnpackBits expands the first n bits of packed back into one byte per bit
func UnpackBits(packed []byte, n int) (BitSequence, error) {
	if n > len(packed)*8 {
		return nil, fmt.Errorf("cannot unpack %d bits from %d bytes", n, len(packed))
	}

	r := bitio.NewReader(bytes.NewReader(packed))
	bits := make(BitSequence, n)
	for i := 0; i < n; i++ {
		set, err := r.ReadBool()
		if err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("unexpected end of packed data at bit %d", i)
			}
			return nil, fmt.Errorf("failed to read bit: %w", err)
		}
		if set {
			bits[i] = 1
		}
	}
	return bits, nil
}
