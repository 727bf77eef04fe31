package analysis

import (
	"fmt"
	"strconv"
	"strings"
)

// FrequencyTable maps each distinct character to the number of times it occurs.
// Characters are kept in order of first appearance so output is reproducible.
type FrequencyTable struct {
	counts map[rune]uint64
	order  []rune
	total  uint64
}

// CountFrequencies tallies every character of text. No filtering or case
// normalization is applied.
func CountFrequencies(text string) *FrequencyTable {
	table := &FrequencyTable{
		counts: make(map[rune]uint64),
	}

	for _, char := range text {
		if _, seen := table.counts[char]; !seen {
			table.order = append(table.order, char)
		}
		table.counts[char]++
		table.total++
	}

	return table
}

// Count returns the number of occurrences of char
func (f *FrequencyTable) Count(char rune) uint64 {
	return f.counts[char]
}

// Len returns the number of distinct characters
func (f *FrequencyTable) Len() int {
	return len(f.order)
}

// Total returns the sum of all counts, which equals the character length of the input
func (f *FrequencyTable) Total() uint64 {
	return f.total
}

// Characters returns the distinct characters in order of first appearance
func (f *FrequencyTable) Characters() []rune {
	chars := make([]rune, len(f.order))
	copy(chars, f.order)
	return chars
}

// Map returns a copy of the underlying counts
func (f *FrequencyTable) Map() map[rune]uint64 {
	m := make(map[rune]uint64, len(f.counts))
	for char, count := range f.counts {
		m[char] = count
	}
	return m
}

// String renders the table as {'A': 1, 'B': 2} in first-appearance order
func (f *FrequencyTable) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, char := range f.order {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %d", strconv.QuoteRune(char), f.counts[char])
	}
	sb.WriteByte('}')
	return sb.String()
}
