package store

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/sukoon/internal/model"
)

// SQLiteStore implements VectorStore using SQLite. Searches are brute-force
// cosine scans over the collection, which is fine at knowledge-base scale.
type SQLiteStore struct {
	db   *sql.DB
	path string

	entropyMu sync.Mutex
	entropy   *rand.Rand

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		path:    dbPath,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
		locks:   make(map[string]*sync.Mutex),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string { return s.path }

func (s *SQLiteStore) newBatchID() string {
	s.entropyMu.Lock()
	defer s.entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS collections (
		name       TEXT PRIMARY KEY,
		dims       INTEGER,
		metric     TEXT NOT NULL DEFAULT 'cosine',
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS documents (
		collection TEXT NOT NULL REFERENCES collections(name) ON DELETE CASCADE,
		id         TEXT NOT NULL,
		content    TEXT NOT NULL,
		metadata   TEXT,
		vector     BLOB NOT NULL,
		batch_id   TEXT NOT NULL,
		created_at TEXT NOT NULL,
		PRIMARY KEY (collection, id)
	);
	CREATE INDEX IF NOT EXISTS idx_documents_batch ON documents(collection, batch_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// collectionLock serializes writers per collection.
func (s *SQLiteStore) collectionLock(name string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	mu, ok := s.locks[name]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[name] = mu
	}
	return mu
}

func (s *SQLiteStore) Initialize(ctx context.Context, collection string) error {
	if collection == "" {
		return errors.New("collection name is required")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO collections (name, created_at) VALUES (?, ?)`,
		collection, time.Now().UTC().Format(time.RFC3339))
	return err
}

// collectionDims returns the established dimensionality, 0 if no vectors
// have been stored yet.
func collectionDims(ctx context.Context, q queryer, collection string) (int, error) {
	var dims sql.NullInt64
	err := q.QueryRowContext(ctx, `SELECT dims FROM collections WHERE name = ?`, collection).Scan(&dims)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", ErrCollectionNotFound, collection)
	}
	if err != nil {
		return 0, err
	}
	return int(dims.Int64), nil
}

// Dims returns the collection's vector dimensionality, 0 before the first
// insert or after Clear.
func (s *SQLiteStore) Dims(ctx context.Context, collection string) (int, error) {
	return collectionDims(ctx, s.db, collection)
}

func (s *SQLiteStore) AddDocuments(ctx context.Context, collection string, docs []model.KnowledgeDocument, vectors [][]float32) error {
	if len(docs) != len(vectors) {
		return fmt.Errorf("%w: %d documents, %d vectors", ErrLengthMismatch, len(docs), len(vectors))
	}
	if len(docs) == 0 {
		return nil
	}

	mu := s.collectionLock(collection)
	mu.Lock()
	defer mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	dims, err := collectionDims(ctx, tx, collection)
	if err != nil {
		return err
	}
	if dims == 0 {
		dims = len(vectors[0])
		if _, err := tx.ExecContext(ctx, `UPDATE collections SET dims = ? WHERE name = ?`, dims, collection); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(docs))
	for i, d := range docs {
		if seen[d.ID] {
			return fmt.Errorf("%w: %q repeated in batch", ErrDuplicateID, d.ID)
		}
		seen[d.ID] = true
		if len(vectors[i]) != dims {
			return fmt.Errorf("%w: document %q has %d dims, collection has %d", ErrDimensionMismatch, d.ID, len(vectors[i]), dims)
		}
		var exists int
		err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM documents WHERE collection = ? AND id = ?`, collection, d.ID).Scan(&exists)
		if err != nil {
			return err
		}
		if exists > 0 {
			return fmt.Errorf("%w: %q already in %s", ErrDuplicateID, d.ID, collection)
		}
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO documents (collection, id, content, metadata, vector, batch_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	batchID := s.newBatchID()
	now := time.Now().UTC().Format(time.RFC3339)
	for i, d := range docs {
		var meta *string
		if len(d.Metadata) > 0 {
			b, _ := json.Marshal(d.Metadata)
			m := string(b)
			meta = &m
		}
		if _, err := stmt.ExecContext(ctx, collection, d.ID, d.Content, meta, encodeVector(vectors[i]), batchID, now); err != nil {
			return fmt.Errorf("insert %q: %w", d.ID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Count(ctx context.Context, collection string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents WHERE collection = ?`, collection).Scan(&n)
	return n, err
}

// Clear removes all documents and resets the collection's dimensionality so
// it can be repopulated with a different embedder.
func (s *SQLiteStore) Clear(ctx context.Context, collection string) error {
	mu := s.collectionLock(collection)
	mu.Lock()
	defer mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE collection = ?`, collection); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE collections SET dims = NULL WHERE name = ?`, collection); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanDocument(row scanner) (model.KnowledgeDocument, []float32, error) {
	var d model.KnowledgeDocument
	var meta sql.NullString
	var blob []byte
	if err := row.Scan(&d.ID, &d.Content, &meta, &blob); err != nil {
		return d, nil, err
	}
	if meta.Valid {
		if err := json.Unmarshal([]byte(meta.String), &d.Metadata); err != nil {
			return d, nil, fmt.Errorf("decode metadata for %q: %w", d.ID, err)
		}
	}
	vec, err := decodeVector(blob)
	if err != nil {
		return d, nil, fmt.Errorf("decode vector for %q: %w", d.ID, err)
	}
	return d, vec, nil
}

// Vectors are stored as little-endian float32.
func encodeVector(v []float32) []byte {
	buf := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(f))
	}
	return buf
}

func decodeVector(b []byte) ([]float32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("vector blob length %d not a multiple of 4", len(b))
	}
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return v, nil
}
