package pipeline

import (
	"fmt"
	"io"

	"github.com/freqpack/freqpack/internal/analysis"
	"github.com/freqpack/freqpack/internal/verify"
)

// Report is everything a run produced, in the order it was produced
type Report struct {
	RunID            string
	Algorithm        string
	Packing          string
	Frequencies      *analysis.FrequencyTable
	Bits             analysis.BitSequence
	Payload          []byte
	Decompressed     []byte
	CompressionRatio float64
	Verdict          verify.Verdict
}

// Sizes returns the input, compressed and decompressed artifact sizes
func (r *Report) Sizes() verify.SizeTriple {
	return r.Verdict.Sizes
}

// Print writes the console report to w
func (r *Report) Print(w io.Writer) error {
	sizes := r.Sizes()

	lines := []string{
		r.Frequencies.String(),
		r.Bits.String(),
		fmt.Sprintf("%v", r.Decompressed),
		fmt.Sprintf("Input file size: %d bytes", sizes.Input),
		fmt.Sprintf("Compressed file size: %d bytes", sizes.Compressed),
		fmt.Sprintf("Decompressed file size: %d bytes", sizes.Decompressed),
	}
	if r.Verdict.Mode == verify.ModeContent {
		lines = append(lines,
			fmt.Sprintf("Payload digest: %s", r.Verdict.PayloadDigest),
			fmt.Sprintf("Decompressed digest: %s", r.Verdict.DecompressedDigest),
		)
	}
	lines = append(lines, r.Verdict.Message())

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
