package engine

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"

	sqlite "modernc.org/sqlite"

	"github.com/Ronsor/VecDex/vector"
)

// maxZeroDim bounds vector0 so a stray large argument cannot allocate an
// arbitrarily sized blob before SQLite's own length limit would apply.
const maxZeroDim = 1 << 26

type scalarFunc struct {
	name string
	nArg int32
	impl func(ctx *sqlite.FunctionContext, args []driver.Value) (driver.Value, error)
}

// functions is the static registration table: every VecDex SQL function with
// its arity (-1 means variadic). vector_from_json shares vectorImpl with
// vector, whose single-text path is exactly the JSON parse.
var functions = []scalarFunc{
	{"vector", -1, vectorImpl},
	{"vector0", 1, vector0Impl},
	{"vector_from_json", 1, vectorImpl},
	{"vector_to_json", 1, vectorToJSONImpl},
	{"vector_compare", 2, vectorCompareImpl},
	{"vector_cosim", 2, vectorCosimImpl},
	{"vector_dist", 2, vectorDistImpl},
	{"vector_dim", 1, vectorDimImpl},
	{"vector_avg", 1, vectorAvgImpl},
	{"vector_norm", 1, vectorNormImpl},
	{"vector_add", 2, vectorAddImpl},
	{"vector_sub", 2, vectorSubImpl},
	{"vector_mul", 2, vectorMulImpl},
	{"vector_div", 2, vectorDivImpl},
}

// RegisterVectorFunctions registers every VecDex scalar function with the
// driver so they are available on new connections opened after this call.
// Registration is process-wide; all functions are marked deterministic so
// SQLite may cache and fold their results.
// Note: existing open connections will not see new functions.
func RegisterVectorFunctions(_ *sql.DB) error {
	// Idempotent registration; driver rejects duplicates but we ignore errors silently here.
	for _, fn := range functions {
		_ = sqlite.RegisterDeterministicScalarFunction(fn.name, fn.nArg, fn.impl)
	}
	return nil
}

// argShape classifies a call to the vector constructor once, so dispatch is
// over the inferred shape of the whole argument list rather than ad hoc
// count/type branching.
type argShape int

const (
	shapeScalarList argShape = iota
	shapeSingleBlob
	shapeSingleText
	shapeSingleOther
)

func classifyArgs(args []driver.Value) argShape {
	if len(args) != 1 {
		return shapeScalarList
	}
	switch args[0].(type) {
	case int64, float64:
		return shapeScalarList
	case []byte:
		return shapeSingleBlob
	case string:
		return shapeSingleText
	}
	return shapeSingleOther
}

// vectorImpl backs both vector(...) and vector_from_json(...). Multiple
// arguments, or a single numeric argument, construct a vector from scalars;
// a single blob passes through (copied) when its length is a multiple of 4;
// a single text argument is parsed leniently. Everything else is NULL.
func vectorImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) == 0 {
		return nil, nil
	}
	switch classifyArgs(args) {
	case shapeScalarList:
		vec := make([]float32, len(args))
		for i, arg := range args {
			v, ok := numericValue(arg)
			if !ok {
				return nil, nil
			}
			vec[i] = v
		}
		return blobValue(vec), nil
	case shapeSingleBlob:
		b := args[0].([]byte)
		if len(b)%4 != 0 {
			return nil, nil
		}
		// Copied rather than aliased: the result owns its buffer.
		return append(make([]byte, 0, len(b)), b...), nil
	case shapeSingleText:
		vec, err := vector.ParseText(args[0].(string))
		if err != nil {
			return nil, asAbsent(err)
		}
		return blobValue(vec), nil
	}
	return nil, nil
}

// vector0Impl returns an all-zero vector of the requested dimension.
func vector0Impl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	n := intValue(args[0])
	if n < 0 {
		n = 0
	}
	if n > maxZeroDim {
		return nil, fmt.Errorf("vector0: dimension %d too large", n)
	}
	return make([]byte, n*4), nil
}

func vectorToJSONImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	vec, ok := vectorArg(args[0])
	if !ok {
		return nil, nil
	}
	return vector.FormatText(vec), nil
}

func vectorCompareImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, ok := twoVectorArgs(args)
	if !ok {
		return nil, nil
	}
	cmp, err := vector.Compare(a, b)
	if err != nil {
		return nil, asAbsent(err)
	}
	return int64(cmp), nil
}

func vectorCosimImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, ok := twoVectorArgs(args)
	if !ok {
		return nil, nil
	}
	sim, err := vector.CosineSimilarity(a, b)
	if err != nil {
		return nil, asAbsent(err)
	}
	return sim, nil
}

func vectorDistImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	a, b, ok := twoVectorArgs(args)
	if !ok {
		return nil, nil
	}
	dist, err := vector.EuclideanDistance(a, b)
	if err != nil {
		return nil, asAbsent(err)
	}
	return dist, nil
}

func vectorDimImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	b, isBlob := args[0].([]byte)
	if !isBlob || len(b)%4 != 0 {
		return nil, nil
	}
	return int64(vector.Dim(b)), nil
}

func vectorAvgImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	vec, ok := vectorArg(args[0])
	if !ok {
		return nil, nil
	}
	// Dimension 0 yields IEEE NaN, which SQLite reports as NULL.
	return vector.Mean(vec), nil
}

func vectorNormImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	vec, ok := vectorArg(args[0])
	if !ok {
		return nil, nil
	}
	return vector.Norm(vec), nil
}

func vectorAddImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	return elementwise(args, vector.Add)
}

func vectorSubImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	return elementwise(args, vector.Sub)
}

func vectorMulImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	return elementwise(args, vector.Mul)
}

func vectorDivImpl(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	return elementwise(args, vector.Div)
}

// elementwise runs a binary vector kernel and returns the result as a fresh
// BLOB, or NULL when either operand is absent.
func elementwise(args []driver.Value, op func(a, b []float32) ([]float32, error)) (driver.Value, error) {
	a, b, ok := twoVectorArgs(args)
	if !ok {
		return nil, nil
	}
	out, err := op(a, b)
	if err != nil {
		return nil, asAbsent(err)
	}
	return blobValue(out), nil
}

// vectorArg decodes a BLOB argument into a vector. ok is false when the
// argument is not a vector (non-BLOB, or length not a multiple of 4); that
// is a typed absence, and the function yields NULL.
func vectorArg(arg driver.Value) ([]float32, bool) {
	b, isBlob := arg.([]byte)
	if !isBlob {
		return nil, false
	}
	vec, err := vector.Decode(b)
	if err != nil {
		return nil, false
	}
	return vec, true
}

func twoVectorArgs(args []driver.Value) (a, b []float32, ok bool) {
	if a, ok = vectorArg(args[0]); !ok {
		return nil, nil, false
	}
	if b, ok = vectorArg(args[1]); !ok {
		return nil, nil, false
	}
	return a, b, true
}

// asAbsent collapses the typed-absence errors (mismatched dimensions,
// non-vector operands, malformed text) to a nil error so the function
// yields SQL NULL. Any other error still fails the statement.
func asAbsent(err error) error {
	if errors.Is(err, vector.ErrDimensionMismatch) ||
		errors.Is(err, vector.ErrNotVector) ||
		errors.Is(err, vector.ErrMalformed) {
		return nil
	}
	return err
}

// blobValue encodes vec as a BLOB value, keeping dimension-0 results as
// empty blobs rather than NULL.
func blobValue(vec []float32) driver.Value {
	if b := vector.Encode(vec); b != nil {
		return b
	}
	return []byte{}
}

// numericValue applies SQLite numeric affinity to a scalar argument:
// integers truncate to float32, floats narrow directly, and fully numeric
// text coerces. Anything else is not a numeric scalar.
func numericValue(arg driver.Value) (float32, bool) {
	switch v := arg.(type) {
	case int64:
		return float32(v), true
	case float64:
		return float32(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		return float32(f), true
	}
	return 0, false
}

// intValue coerces an argument to an integer the way sqlite3_value_int
// would: floats truncate, numeric text converts, everything else is 0.
func intValue(arg driver.Value) int64 {
	switch v := arg.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return int64(f)
		}
	}
	return 0
}
