package vector

import "errors"

// ErrNotVector reports a byte buffer whose length is not a multiple of the
// float32 element size. Such a buffer is a typed absence, not a corrupt
// vector: SQL-level callers map it to NULL.
var ErrNotVector = errors.New("vector: blob length is not a multiple of 4")

// ErrDimensionMismatch reports two operands of unequal dimension handed to a
// binary kernel. Mapped to NULL at the SQL level.
var ErrDimensionMismatch = errors.New("vector: dimension mismatch")

// ErrMalformed reports text that the lenient parser could not fully consume.
var ErrMalformed = errors.New("vector: malformed vector text")
