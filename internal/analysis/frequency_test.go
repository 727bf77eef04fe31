package analysis_test

import (
	"testing"
	"unicode/utf8"

	"github.com/freqpack/freqpack/internal/analysis"
)

func TestCountFrequencies(t *testing.T) {
	table := analysis.CountFrequencies("ABCD")

	if table.Len() != 4 {
		t.Fatalf("Expected 4 distinct characters, got %d", table.Len())
	}
	for _, char := range "ABCD" {
		if got := table.Count(char); got != 1 {
			t.Errorf("Expected count 1 for %q, got %d", char, got)
		}
	}
	if got := table.String(); got != "{'A': 1, 'B': 1, 'C': 1, 'D': 1}" {
		t.Errorf("Unexpected table rendering: %s", got)
	}
}

func TestCountFrequencies_Empty(t *testing.T) {
	table := analysis.CountFrequencies("")

	if table.Len() != 0 {
		t.Errorf("Expected empty table, got %d entries", table.Len())
	}
	if table.Total() != 0 {
		t.Errorf("Expected total 0, got %d", table.Total())
	}
	if table.String() != "{}" {
		t.Errorf("Expected {}, got %s", table.String())
	}
}

func TestCountFrequencies_SumEqualsLength(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"hello world",
		"AABBCCDD\n\n",
		"Äpfel und Öl",
		"日本語のテキスト",
		"mixed CASE case",
	}

	for _, input := range inputs {
		table := analysis.CountFrequencies(input)

		var sum uint64
		for _, count := range table.Map() {
			sum += count
		}

		want := uint64(utf8.RuneCountInString(input))
		if sum != want {
			t.Errorf("%q: sum of counts %d, expected %d", input, sum, want)
		}
		if table.Total() != want {
			t.Errorf("%q: total %d, expected %d", input, table.Total(), want)
		}
	}
}

func TestCountFrequencies_NoCaseFolding(t *testing.T) {
	table := analysis.CountFrequencies("aAa")

	if table.Count('a') != 2 {
		t.Errorf("Expected 2 for 'a', got %d", table.Count('a'))
	}
	if table.Count('A') != 1 {
		t.Errorf("Expected 1 for 'A', got %d", table.Count('A'))
	}
}

func TestCountFrequencies_FirstAppearanceOrder(t *testing.T) {
	table := analysis.CountFrequencies("banana")

	chars := table.Characters()
	if string(chars) != "ban" {
		t.Errorf("Expected order \"ban\", got %q", string(chars))
	}
	if table.String() != "{'b': 1, 'a': 3, 'n': 2}" {
		t.Errorf("Unexpected table rendering: %s", table.String())
	}
}

func TestFrequencyTable_MapIsCopy(t *testing.T) {
	table := analysis.CountFrequencies("xx")

	m := table.Map()
	m['x'] = 100

	if table.Count('x') != 2 {
		t.Errorf("Mutating the returned map changed the table: %d", table.Count('x'))
	}
}
