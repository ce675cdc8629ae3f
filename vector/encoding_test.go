package vector

import (
	"errors"
	"testing"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	orig := []float32{0.0, 1.5, -2.25, 3.75}

	b := Encode(orig)
	if len(b) != len(orig)*4 {
		t.Fatalf("Encode length = %d, want %d", len(b), len(orig)*4)
	}

	decoded, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(decoded) != len(orig) {
		t.Fatalf("decoded length = %d, want %d", len(decoded), len(orig))
	}
	for i := range orig {
		if got, want := decoded[i], orig[i]; got != want {
			t.Fatalf("decoded[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestEncodeDecode_Empty(t *testing.T) {
	if b := Encode(nil); len(b) != 0 {
		t.Fatalf("expected empty blob for nil slice, got len=%d", len(b))
	}

	vec, err := Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil) failed: %v", err)
	}
	if len(vec) != 0 {
		t.Fatalf("expected empty vector for nil blob, got len=%d", len(vec))
	}
}

func TestDecode_BadLength(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 7} {
		_, err := Decode(make([]byte, n))
		if !errors.Is(err, ErrNotVector) {
			t.Fatalf("Decode(len=%d) error = %v, want ErrNotVector", n, err)
		}
	}
}

func TestDim(t *testing.T) {
	if got := Dim(Encode([]float32{1, 2, 3})); got != 3 {
		t.Fatalf("Dim = %d, want 3", got)
	}
	if got := Dim(nil); got != 0 {
		t.Fatalf("Dim(nil) = %d, want 0", got)
	}
	if got := Dim(make([]byte, 6)); got != 0 {
		t.Fatalf("Dim(len=6) = %d, want 0", got)
	}
}
