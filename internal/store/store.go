package store

import (
	"context"
	"fmt"
	"math"

	"github.com/andresmejia3/frames/internal/types"
	"github.com/jackc/pgx/v5"
)

// Store mirrors the frame table into PostgreSQL for out-of-process readers.
type Store struct {
	conn *pgx.Conn
}

// New establishes a connection to the database and ensures the schema is initialized.
func New(ctx context.Context, connString string) (*Store, error) {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return nil, err
	}

	if err := initSchema(ctx, conn); err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("failed to initialize database schema: %w", err)
	}

	return &Store{conn: conn}, nil
}

// initSchema creates the frame table if it doesn't exist (Auto-Migration).
func initSchema(ctx context.Context, conn *pgx.Conn) error {
	_, err := conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS detection_frames (
			idx INT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			words BIGINT[] NOT NULL,
			published_at TIMESTAMPTZ DEFAULT NOW()
		);
	`)
	return err
}

// Close terminates the database connection.
func (s *Store) Close(ctx context.Context) {
	s.conn.Close(ctx)
}

// UpsertFrame writes one record, replacing any row already at its index.
func (s *Store) UpsertFrame(ctx context.Context, rec types.FrameRecord) error {
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(context.Background())

	if err := upsertFrame(ctx, tx, rec); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Publish replaces the published table with recs in one transaction: every
// record is upserted and rows at or beyond len(recs) are pruned. On any error,
// including cancellation, readers keep seeing the previous mirror.
// step, if non-nil, runs after each record is written.
func (s *Store) Publish(ctx context.Context, recs []types.FrameRecord, step func(types.FrameRecord)) (int64, error) {
	tx, err := s.conn.Begin(ctx)
	if err != nil {
		return 0, err
	}
	// Background: a cancelled ctx would fail the rollback and kill the connection
	defer tx.Rollback(context.Background())

	for _, rec := range recs {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if err := upsertFrame(ctx, tx, rec); err != nil {
			return 0, fmt.Errorf("frame %d (%s): %w", rec.Index, rec.Name, err)
		}
		if step != nil {
			step(rec)
		}
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	tag, err := tx.Exec(ctx, "DELETE FROM detection_frames WHERE idx >= $1", len(recs))
	if err != nil {
		return 0, fmt.Errorf("failed to prune stale frames: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func upsertFrame(ctx context.Context, tx pgx.Tx, rec types.FrameRecord) error {
	// Postgres has no unsigned types; BIGINT holds the full uint32 range
	words := make([]int64, len(rec.Words))
	for i, w := range rec.Words {
		words[i] = int64(w)
	}

	// A renamed frame would otherwise collide with its old row on the name constraint
	if _, err := tx.Exec(ctx, "DELETE FROM detection_frames WHERE name = $1 AND idx <> $2", rec.Name, rec.Index); err != nil {
		return err
	}

	_, err := tx.Exec(ctx, `
		INSERT INTO detection_frames (idx, name, words, published_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (idx) DO UPDATE SET name = EXCLUDED.name, words = EXCLUDED.words, published_at = NOW()
	`, rec.Index, rec.Name, words)
	return err
}

// ListFrames returns every published frame ordered by index.
func (s *Store) ListFrames(ctx context.Context) ([]types.FrameRecord, error) {
	rows, err := s.conn.Query(ctx, "SELECT idx, name, words FROM detection_frames ORDER BY idx ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []types.FrameRecord
	for rows.Next() {
		var rec types.FrameRecord
		var words []int64
		if err := rows.Scan(&rec.Index, &rec.Name, &words); err != nil {
			return nil, err
		}
		rec.Words = make([]uint32, len(words))
		for i, w := range words {
			if w < 0 || w > math.MaxUint32 {
				return nil, fmt.Errorf("frame %d word %d out of uint32 range: %d", rec.Index, i, w)
			}
			rec.Words[i] = uint32(w)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Prune deletes published rows at or beyond count and reports how many went.
func (s *Store) Prune(ctx context.Context, count int) (int64, error) {
	tag, err := s.conn.Exec(ctx, "DELETE FROM detection_frames WHERE idx >= $1", count)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Reset drops the frame table to clear the database state.
func (s *Store) Reset(ctx context.Context) error {
	_, err := s.conn.Exec(ctx, "DROP TABLE IF EXISTS detection_frames CASCADE")
	return err
}
