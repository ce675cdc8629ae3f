// Package vecutil provides application-level helpers for keeping named
// vectors in an ordinary SQLite table: schema creation, upsert/load of
// encoded embeddings, and text import/export that runs through the
// registered vector SQL functions.
package vecutil
