package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/shandysiswandi/goresult/internal/result/entity"
)

// SQLite stores results in a SQLite database.
//
// Use ":memory:" as the DSN for an in-memory database, or a file path for
// persistent storage.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return s, nil
}

func (s *SQLite) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS results (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		value TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLite) CreateResult(ctx context.Context, result entity.Result) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO results (id, title, value, created_at) VALUES (?, ?, ?, ?)",
		result.ID, result.Title, result.Value, result.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicate
		}
		return fmt.Errorf("insert result: %w", err)
	}

	return nil
}

func (s *SQLite) GetResult(ctx context.Context, id int64) (entity.Result, error) {
	var result entity.Result
	err := s.db.QueryRowContext(ctx,
		"SELECT id, title, value, created_at FROM results WHERE id = ?", id,
	).Scan(&result.ID, &result.Title, &result.Value, &result.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Result{}, ErrNoRows
		}
		return entity.Result{}, fmt.Errorf("query result: %w", err)
	}

	return result, nil
}

func (s *SQLite) ListResults(ctx context.Context, page, pageSize int) ([]entity.Result, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM results").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count results: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, value, created_at FROM results ORDER BY id LIMIT ? OFFSET ?",
		pageSize, (page-1)*pageSize,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	items := make([]entity.Result, 0, pageSize)
	for rows.Next() {
		var result entity.Result
		if err := rows.Scan(&result.ID, &result.Title, &result.Value, &result.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan result: %w", err)
		}
		items = append(items, result)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate results: %w", err)
	}

	return items, total, nil
}

func (s *SQLite) DeleteResult(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM results WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete result: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete result: %w", err)
	}
	if affected == 0 {
		return ErrNoRows
	}

	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
