// Package engine exposes the VecDex vector operations as deterministic
// scalar SQL functions on the modernc.org/sqlite driver: construction
// (vector, vector0, vector_from_json), codec (vector_to_json), and the
// algebra kernels (vector_compare, vector_cosim, vector_dist, vector_dim,
// vector_avg, vector_norm, vector_add/sub/mul/div). It also provides Open so
// other packages can share the same driver instance.
package engine
