package vecutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Ronsor/VecDex/vector"
)

const vectorsSchema = `
CREATE TABLE IF NOT EXISTS vectors (
    id TEXT PRIMARY KEY,
    label TEXT,
    embedding BLOB
);
`

// EnsureSchema creates the vectors table in the provided database if it does
// not already exist.
func EnsureSchema(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("vecutil: db is nil")
	}
	_, err := db.Exec(vectorsSchema)
	return err
}

// Upsert inserts or updates a named vector, encoding it into the BLOB form.
// When id is empty a fresh UUID is assigned. The stored id is returned.
func Upsert(ctx context.Context, db *sql.DB, id, label string, vec []float32) (string, error) {
	if db == nil {
		return "", fmt.Errorf("vecutil: db is nil")
	}
	if id == "" {
		id = uuid.NewString()
	}
	_, err := db.ExecContext(ctx, `
INSERT INTO vectors(id, label, embedding)
VALUES (?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  label = excluded.label,
  embedding = excluded.embedding`, id, label, vector.Encode(vec))
	if err != nil {
		return "", err
	}
	return id, nil
}

// Load fetches and decodes the vector stored under id. A missing row is
// reported as sql.ErrNoRows.
func Load(ctx context.Context, db *sql.DB, id string) ([]float32, error) {
	if db == nil {
		return nil, fmt.Errorf("vecutil: db is nil")
	}
	var blob []byte
	if err := db.QueryRowContext(ctx, `SELECT embedding FROM vectors WHERE id = ?`, id).Scan(&blob); err != nil {
		return nil, err
	}
	return vector.Decode(blob)
}

// ImportText stores a vector given in the bracketed text form, converting it
// inside SQL via vector_from_json. Malformed text is reported as
// vector.ErrMalformed. When id is empty a fresh UUID is assigned; the stored
// id is returned.
//
// RegisterVectorFunctions must have been called before the db connection was
// opened.
func ImportText(ctx context.Context, db *sql.DB, id, label, text string) (string, error) {
	if db == nil {
		return "", fmt.Errorf("vecutil: db is nil")
	}
	if id == "" {
		id = uuid.NewString()
	}
	// vector_from_json yields NULL for malformed text; probe before writing
	// so a bad row is never stored. typeof() distinguishes NULL from a
	// legitimate zero-length blob.
	var typ string
	var blob []byte
	err := db.QueryRowContext(ctx,
		`SELECT typeof(vector_from_json(?)), vector_from_json(?)`, text, text).Scan(&typ, &blob)
	if err != nil {
		return "", err
	}
	if typ == "null" {
		return "", fmt.Errorf("vecutil: import %q: %w", id, vector.ErrMalformed)
	}
	_, err = db.ExecContext(ctx, `
INSERT INTO vectors(id, label, embedding)
VALUES (?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  label = excluded.label,
  embedding = excluded.embedding`, id, label, blob)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ExportText reads the vector stored under id back in the bracketed text
// form, rendering it inside SQL via vector_to_json. Rows whose embedding is
// not a vector export as an empty string.
func ExportText(ctx context.Context, db *sql.DB, id string) (string, error) {
	if db == nil {
		return "", fmt.Errorf("vecutil: db is nil")
	}
	var text sql.NullString
	err := db.QueryRowContext(ctx, `SELECT vector_to_json(embedding) FROM vectors WHERE id = ?`, id).Scan(&text)
	if err != nil {
		return "", err
	}
	return text.String, nil
}
