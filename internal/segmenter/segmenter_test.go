package segmenter_test

import (
	"testing"

	"github.com/linguarelay/linguarelay/internal/segmenter"
)

func TestSplit_NoTerminalPunctuation(t *testing.T) {
	units := segmenter.Split("Hello there")
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	if units[0].Text != "Hello there" {
		t.Errorf("expected input unchanged, got %q", units[0].Text)
	}
	if units[0].TrailingSpace {
		t.Error("unit does not end in whitespace")
	}
}

func TestSplit_EmptyInput(t *testing.T) {
	if units := segmenter.Split(""); len(units) != 0 {
		t.Errorf("expected no units for empty input, got %d", len(units))
	}
}

func TestSplit_TwoSentences(t *testing.T) {
	units := segmenter.Split("Hello. How are you?")
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %v", units)
	}
	if units[0].Text != "Hello. " {
		t.Errorf("first unit: got %q", units[0].Text)
	}
	if !units[0].TrailingSpace {
		t.Error("first unit should carry the trailing-space flag")
	}
	if units[1].Text != "How are you?" {
		t.Errorf("second unit: got %q", units[1].Text)
	}
	if units[1].TrailingSpace {
		t.Error("second unit does not end in whitespace")
	}
}

func TestSplit_PunctuationRuns(t *testing.T) {
	units := segmenter.Split("Wait... what?! Really?")
	want := []string{"Wait... ", "what?! ", "Really?"}
	if len(units) != len(want) {
		t.Fatalf("expected %d units, got %v", len(want), units)
	}
	for i, w := range want {
		if units[i].Text != w {
			t.Errorf("unit %d: expected %q, got %q", i, w, units[i].Text)
		}
	}
}

func TestSplit_VerticalBarAndSemicolon(t *testing.T) {
	units := segmenter.Split("one; two| three")
	want := []string{"one; ", "two| ", "three"}
	if len(units) != len(want) {
		t.Fatalf("expected %d units, got %v", len(want), units)
	}
	for i, w := range want {
		if units[i].Text != w {
			t.Errorf("unit %d: expected %q, got %q", i, w, units[i].Text)
		}
	}
}

func TestSplit_PunctuationWithoutSpaceDoesNotSplit(t *testing.T) {
	// Punctuation not followed by whitespace (URLs, decimals) stays in
	// one unit until a real boundary or end of input.
	units := segmenter.Split("see example.com ok")
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %v", units)
	}
}

func TestUnits_ConcatenationReproducesInput(t *testing.T) {
	inputs := []string{
		"Hello. How are you?",
		"Hello there",
		"Wait... what?!  Double  spaced. ",
		"a; b| c. d",
		"ends with punctuation.",
		"trailing space ",
		"tabs.\tand. newlines.\nkept. intact",
		"¿Qué tal? Bien. Gracias",
	}
	for _, in := range inputs {
		var got string
		for u := range segmenter.Units(in) {
			got += u.Text
		}
		if got != in {
			t.Errorf("concatenation mismatch: input %q, got %q", in, got)
		}
	}
}

func TestUnits_Restartable(t *testing.T) {
	seq := segmenter.Units("Hello. World.")
	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	if first != second || first == 0 {
		t.Errorf("sequence not restartable: first pass %d, second pass %d", first, second)
	}
}

func TestUnits_EarlyStop(t *testing.T) {
	count := 0
	for range segmenter.Units("a. b. c. d.") {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("expected iteration to stop after 2 units, got %d", count)
	}
}

func TestSplit_TrailingSpaceFlagPerUnit(t *testing.T) {
	units := segmenter.Split("First. Second. ")
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %v", units)
	}
	for i, u := range units {
		if !u.TrailingSpace {
			t.Errorf("unit %d ends in whitespace, flag not set: %q", i, u.Text)
		}
	}
}
