// Package verify decides whether a compress/decompress round trip succeeded.
//
// The default check compares only the size of the input file with the size
// of the decompressed artifact. Two files of equal length but different
// content pass that check. VerifyContent compares the compressed payload
// with the decompressed bytes by length and BLAKE3 digest instead.
package verify

import (
	"errors"
	"fmt"

	"github.com/freqpack/freqpack/internal/hashing"
)

// Verification modes
const (
	ModeSize    = "size"
	ModeContent = "content"
)

// ErrVerificationFailed is returned by Verdict.Err for a failed round trip
var ErrVerificationFailed = errors.New("round trip verification failed")

// SizeTriple holds the byte sizes of the three artifacts of a run
type SizeTriple struct {
	Input        int64
	Compressed   int64
	Decompressed int64
}

// Verdict is the outcome of a verification
type Verdict struct {
	Mode    string
	Success bool
	Sizes   SizeTriple

	// Set in content mode only
	PayloadDigest      string
	DecompressedDigest string
}

// VerifySizes succeeds iff the decompressed size equals the input size.
// The compressed size is reported but not compared.
func VerifySizes(sizes SizeTriple) Verdict {
	return Verdict{
		Mode:    ModeSize,
		Success: sizes.Decompressed == sizes.Input,
		Sizes:   sizes,
	}
}

// VerifyContent succeeds iff the decompressed artifact at decompressedPath
// holds byte-for-byte the payload that was compressed. Equality is decided
// by length and BLAKE3 digest; the artifact is hashed as stored on disk.
func VerifyContent(sizes SizeTriple, payload []byte, decompressedPath string) (Verdict, error) {
	decompressedDigest, err := hashing.HashFileString(decompressedPath)
	if err != nil {
		return Verdict{}, fmt.Errorf("failed to hash decompressed artifact: %w", err)
	}
	payloadDigest := hashing.HashString(payload)

	return Verdict{
		Mode:               ModeContent,
		Success:            int64(len(payload)) == sizes.Decompressed && payloadDigest == decompressedDigest,
		Sizes:              sizes,
		PayloadDigest:      payloadDigest,
		DecompressedDigest: decompressedDigest,
	}, nil
}

// Message returns the human readable verdict line
func (v Verdict) Message() string {
	switch {
	case v.Mode == ModeContent && v.Success:
		return "Decompression successful: Decompressed content matches compressed payload."
	case v.Mode == ModeContent:
		return "Decompression failed: Decompressed content does not match compressed payload."
	case v.Success:
		return "Decompression successful: Decompressed file size matches input file size."
	default:
		return "Decompression failed: Decompressed file size does not match input file size."
	}
}

// Err returns nil for a successful verdict and a wrapped ErrVerificationFailed otherwise
func (v Verdict) Err() error {
	if v.Success {
		return nil
	}
	if v.Mode == ModeContent {
		return fmt.Errorf("%w: payload digest %s, decompressed digest %s",
			ErrVerificationFailed, v.PayloadDigest, v.DecompressedDigest)
	}
	return fmt.Errorf("%w: input %d bytes, decompressed %d bytes",
		ErrVerificationFailed, v.Sizes.Input, v.Sizes.Decompressed)
}
