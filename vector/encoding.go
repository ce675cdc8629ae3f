package vector

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Encode encodes a slice of float32 values into the BLOB representation used
// for storage in SQLite: a headerless little-endian sequence of IEEE 754
// float32 values. Dimension is implicit in the blob length; an empty vector
// encodes to an empty blob.
func Encode(vec []float32) []byte {
	if len(vec) == 0 {
		return nil
	}
	b := make([]byte, len(vec)*4)
	for i, v := range vec {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	return b
}

// Decode decodes a BLOB produced by Encode back into a slice of float32
// values. A buffer whose length is not a multiple of 4 is not a vector and
// yields ErrNotVector; an empty buffer is a valid dimension-0 vector.
func Decode(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("vector: invalid blob length %d: %w", len(b), ErrNotVector)
	}
	n := len(b) / 4
	vec := make([]float32, n)
	for i := 0; i < n; i++ {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return vec, nil
}

// Dim returns the dimension of an encoded vector without materializing it,
// or 0 if the buffer cannot be interpreted as a vector.
func Dim(b []byte) int {
	if len(b)%4 != 0 {
		return 0
	}
	return len(b) / 4
}
