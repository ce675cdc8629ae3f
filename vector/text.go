package vector

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// growChunk sizes the parser's initial element buffer so short vectors parse
// with a single allocation.
const growChunk = 64

// ParseText loosely parses a JSON-array-like list of numbers into a vector.
// Whitespace and the characters '[', ']' and ',' are ignored wherever they
// appear; everything else must start a numeric token (decimal or exponential
// literal, or an Inf/Infinity/NaN form). Any unrecognized character, or a
// token the numeric conversion cannot consume, aborts the whole parse with
// ErrMalformed and no partial result.
func ParseText(s string) ([]float32, error) {
	vec, _, err := scanText(s, true)
	return vec, err
}

// TextDim counts the numeric tokens in s without materializing them. It
// returns -1 if s is malformed.
func TextDim(s string) int {
	_, n, err := scanText(s, false)
	if err != nil {
		return -1
	}
	return n
}

// FormatText renders a vector as a compact JSON-style array: bracketed,
// comma-separated, no spaces. Elements use %g-equivalent formatting (six
// significant digits, fixed or exponential chosen automatically), so the
// text form is lossy at the last digit. An empty vector renders as "[]".
func FormatText(vec []float32) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range vec {
		if i != 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(float64(v), 'g', 6, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}

func scanText(s string, materialize bool) ([]float32, int, error) {
	var vec []float32
	n := 0
	for i := 0; i < len(s); {
		c := s[i]
		if isListPunct(c) {
			i++
			continue
		}
		if !isTokenStart(c) {
			return nil, -1, fmt.Errorf("vector: unexpected character %q at offset %d: %w", c, i, ErrMalformed)
		}
		width := floatTokenWidth(s[i:])
		if width == 0 {
			return nil, -1, fmt.Errorf("vector: dangling numeric token at offset %d: %w", i, ErrMalformed)
		}
		if materialize {
			tok := s[i : i+width]
			v, err := strconv.ParseFloat(tok, 32)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				// strtof accepts a signed NaN; ParseFloat only signs Inf.
				if (tok[0] == '+' || tok[0] == '-') && foldPrefix(tok[1:], "nan") > 0 {
					v = math.NaN()
				} else {
					// Out-of-range values saturate like strtof; anything
					// else the scanner should never have admitted.
					return nil, -1, fmt.Errorf("vector: bad numeric token %q at offset %d: %w", tok, i, ErrMalformed)
				}
			}
			if vec == nil {
				vec = make([]float32, 0, growChunk)
			}
			vec = append(vec, float32(v))
		}
		n++
		i += width
	}
	return vec, n, nil
}

// isListPunct reports bytes the scanner skips: whitespace and list
// punctuation.
func isListPunct(c byte) bool {
	switch c {
	case ' ', '\t', '\v', '\n', '\r', '[', ',', ']':
		return true
	}
	return false
}

// isTokenStart reports bytes that may begin a numeric token, including the
// leading letters of NaN and Inf/Infinity.
func isTokenStart(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '+' || c == '-' || c == '.':
		return true
	case c == 'N' || c == 'I':
		return true
	}
	return false
}

// floatTokenWidth returns the length of the longest prefix of s that parses
// as a floating-point literal (optional sign; digits with optional fraction
// and exponent; or inf, infinity, nan, case-insensitive). A zero width means
// the token is malformed.
func floatTokenWidth(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if n := foldPrefix(s[i:], "infinity"); n > 0 {
		return i + n
	}
	if n := foldPrefix(s[i:], "inf"); n > 0 {
		return i + n
	}
	if n := foldPrefix(s[i:], "nan"); n > 0 {
		return i + n
	}

	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && s[j] >= '0' && s[j] <= '9' {
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			i = j
		}
	}
	return i
}

// foldPrefix returns len(want) if s starts with want under ASCII case
// folding, otherwise 0.
func foldPrefix(s, want string) int {
	if len(s) < len(want) {
		return 0
	}
	if strings.EqualFold(s[:len(want)], want) {
		return len(want)
	}
	return 0
}
