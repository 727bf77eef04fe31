package analysis

import (
	"slices"
	"strings"
)

// CharSet is a set of characters
type CharSet map[rune]struct{}

// NewCharSet builds a set holding every character of chars
func NewCharSet(chars string) CharSet {
	set := make(CharSet, len(chars))
	for _, char := range chars {
		set[char] = struct{}{}
	}
	return set
}

// Contains reports whether char is a member of the set
func (s CharSet) Contains(char rune) bool {
	_, ok := s[char]
	return ok
}

// String returns the members of the set in code point order
func (s CharSet) String() string {
	chars := make([]rune, 0, len(s))
	for char := range s {
		chars = append(chars, char)
	}
	slices.Sort(chars)
	return string(chars)
}

// PairSpec is the ordered pair of character sets used by the bit mapper.
// Only First decides bit values; Second is carried for reporting.
type PairSpec struct {
	First  CharSet
	Second CharSet
}

// NewPairSpec builds a pair specification from two strings of member characters
func NewPairSpec(first, second string) PairSpec {
	return PairSpec{
		First:  NewCharSet(first),
		Second: NewCharSet(second),
	}
}

// DefaultPairSpec returns the pair ({'A','B'}, {'C','D'})
func DefaultPairSpec() PairSpec {
	return NewPairSpec("AB", "CD")
}

// BitSequence holds one bit per input character, stored one byte per bit (0 or 1)
type BitSequence []byte

// MapBits emits 1 for every character of text that is in pairs.First and 0
// for everything else, including characters that only appear in pairs.Second.
func MapBits(text string, pairs PairSpec) BitSequence {
	bits := make(BitSequence, 0, len(text))
	for _, char := range text {
		if pairs.First.Contains(char) {
			bits = append(bits, 1)
		} else {
			bits = append(bits, 0)
		}
	}
	return bits
}

// Ones returns the number of set bits
func (b BitSequence) Ones() int {
	n := 0
	for _, bit := range b {
		if bit == 1 {
			n++
		}
	}
	return n
}

// Bytes returns the raw one-byte-per-bit serialization
func (b BitSequence) Bytes() []byte {
	return []byte(b)
}

// String renders the sequence as [1, 1, 0, 0]
func (b BitSequence) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, bit := range b {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('0' + bit)
	}
	sb.WriteByte(']')
	return sb.String()
}
