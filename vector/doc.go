// Package vector implements the VecDex vector value: an ordered sequence of
// float32 elements with three interchangeable representations (binary BLOB,
// JSON-array-style text, scalar argument list). It provides:
//   - the binary codec (headerless little-endian float32 sequence)
//   - the lenient text parser and the compact formatter
//   - dimension-checked algebra kernels (compare, cosine similarity,
//     Euclidean distance, mean, L2 norm, elementwise arithmetic)
//
// All operations are pure functions. Callers tell "operand was not a
// vector" apart from hard failures with errors.Is against ErrNotVector,
// ErrDimensionMismatch and ErrMalformed.
package vector
