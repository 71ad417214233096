package colorutil

import (
	"errors"
	"image/color"
	"testing"
)

// TestParseHex_Teal tests the effect's own color string
func TestParseHex_Teal(t *testing.T) {
	got, err := ParseHex("#00bf9b")
	if err != nil {
		t.Fatalf("ParseHex(#00bf9b) returned error: %v", err)
	}
	want := color.NRGBA{R: 0, G: 191, B: 155, A: 255}
	if got != want {
		t.Errorf("ParseHex(#00bf9b) = %v, want %v", got, want)
	}
}

// TestParseHex_PrefixAndCaseOptional tests that '#' and letter case don't matter
func TestParseHex_PrefixAndCaseOptional(t *testing.T) {
	want := color.NRGBA{R: 0, G: 191, B: 155, A: 255}
	for _, s := range []string{"00bf9b", "00BF9B", "#00BF9B"} {
		got, err := ParseHex(s)
		if err != nil {
			t.Errorf("ParseHex(%q) returned error: %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("ParseHex(%q) = %v, want %v", s, got, want)
		}
	}
}

// TestParseHex_NoMatch tests that malformed input yields ErrNoMatch
func TestParseHex_NoMatch(t *testing.T) {
	for _, s := range []string{"not-a-color", "", "#00bf9", "#00bf9bb", "00bg9b", "##00bf9b"} {
		if _, err := ParseHex(s); !errors.Is(err, ErrNoMatch) {
			t.Errorf("ParseHex(%q) error = %v, want ErrNoMatch", s, err)
		}
	}
}

// TestMustParseHex_PanicsOnBadInput tests the init-time wrapper
func TestMustParseHex_PanicsOnBadInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseHex(bogus) did not panic")
		}
	}()
	MustParseHex("bogus")
}
