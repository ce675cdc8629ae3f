package vector

import (
	"errors"
	"math"
	"testing"
)

func TestParseText_Basic(t *testing.T) {
	vec, err := ParseText("[1, 2, 3]")
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	want := []float32{1, 2, 3}
	if len(vec) != len(want) {
		t.Fatalf("len = %d, want %d", len(vec), len(want))
	}
	for i := range want {
		if vec[i] != want[i] {
			t.Fatalf("vec[%d] = %v, want %v", i, vec[i], want[i])
		}
	}
}

func TestParseText_LenientPunctuation(t *testing.T) {
	// Brackets and commas are just skipped; bare lists and stray
	// punctuation both parse.
	for _, s := range []string{"1 2 3", "[[1,,2,]3]", "\t1\n2\r3 ", "],[1 2,3"} {
		vec, err := ParseText(s)
		if err != nil {
			t.Fatalf("ParseText(%q) failed: %v", s, err)
		}
		if len(vec) != 3 {
			t.Fatalf("ParseText(%q) len = %d, want 3", s, len(vec))
		}
	}
}

func TestParseText_NumericForms(t *testing.T) {
	vec, err := ParseText("[-1.5, +2, .25, 1e3, 2.5E-1]")
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	want := []float32{-1.5, 2, 0.25, 1000, 0.25}
	for i := range want {
		if vec[i] != want[i] {
			t.Fatalf("vec[%d] = %v, want %v", i, vec[i], want[i])
		}
	}
}

func TestParseText_SpecialValues(t *testing.T) {
	vec, err := ParseText("[NaN, Inf, -Infinity]")
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if !math.IsNaN(float64(vec[0])) {
		t.Fatalf("vec[0] = %v, want NaN", vec[0])
	}
	if !math.IsInf(float64(vec[1]), 1) {
		t.Fatalf("vec[1] = %v, want +Inf", vec[1])
	}
	if !math.IsInf(float64(vec[2]), -1) {
		t.Fatalf("vec[2] = %v, want -Inf", vec[2])
	}
}

func TestParseText_SignedNaN(t *testing.T) {
	vec, err := ParseText("[-NaN, +nan]")
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if len(vec) != 2 {
		t.Fatalf("len = %d, want 2", len(vec))
	}
	for i := range vec {
		if !math.IsNaN(float64(vec[i])) {
			t.Fatalf("vec[%d] = %v, want NaN", i, vec[i])
		}
	}
}

func TestParseText_Overflow(t *testing.T) {
	// Values beyond float32 range saturate, as with strtof.
	vec, err := ParseText("[1e40, -1e40]")
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	if !math.IsInf(float64(vec[0]), 1) || !math.IsInf(float64(vec[1]), -1) {
		t.Fatalf("overflow parse = %v, want [+Inf, -Inf]", vec)
	}
}

func TestParseText_Malformed(t *testing.T) {
	for _, s := range []string{"[1, bad, 3]", "x", "[1}2]", "+", "-", ".", "[1, 2, None]", "nan"} {
		vec, err := ParseText(s)
		if !errors.Is(err, ErrMalformed) {
			t.Fatalf("ParseText(%q) error = %v, want ErrMalformed", s, err)
		}
		if vec != nil {
			t.Fatalf("ParseText(%q) returned partial result %v", s, vec)
		}
	}
}

func TestParseText_Empty(t *testing.T) {
	for _, s := range []string{"", "[]", " [ , ] "} {
		vec, err := ParseText(s)
		if err != nil {
			t.Fatalf("ParseText(%q) failed: %v", s, err)
		}
		if len(vec) != 0 {
			t.Fatalf("ParseText(%q) len = %d, want 0", s, len(vec))
		}
	}
}

func TestTextDim(t *testing.T) {
	if got := TextDim("[1, 2, 3]"); got != 3 {
		t.Fatalf("TextDim = %d, want 3", got)
	}
	if got := TextDim("[]"); got != 0 {
		t.Fatalf("TextDim([]) = %d, want 0", got)
	}
	if got := TextDim("[1, bad]"); got != -1 {
		t.Fatalf("TextDim(malformed) = %d, want -1", got)
	}
}

func TestFormatText(t *testing.T) {
	cases := []struct {
		vec  []float32
		want string
	}{
		{nil, "[]"},
		{[]float32{1, 2, 3}, "[1,2,3]"},
		{[]float32{-1.5, 0.25}, "[-1.5,0.25]"},
		{[]float32{1e20}, "[1e+20]"},
		{[]float32{1.0 / 3.0}, "[0.333333]"},
	}
	for _, c := range cases {
		if got := FormatText(c.vec); got != c.want {
			t.Fatalf("FormatText(%v) = %q, want %q", c.vec, got, c.want)
		}
	}
}

func TestFormatParse_RoundTrip(t *testing.T) {
	orig := []float32{0, 1.5, -2.25, 100, 0.001}
	vec, err := ParseText(FormatText(orig))
	if err != nil {
		t.Fatalf("round trip parse failed: %v", err)
	}
	if len(vec) != len(orig) {
		t.Fatalf("round trip len = %d, want %d", len(vec), len(orig))
	}
	for i := range orig {
		// Text rendering keeps six significant digits; these values
		// survive exactly.
		if vec[i] != orig[i] {
			t.Fatalf("round trip [%d] = %v, want %v", i, vec[i], orig[i])
		}
	}
}
