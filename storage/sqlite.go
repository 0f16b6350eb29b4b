// Copyright 2025 Spacelift, Inc. and contributors
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Import SQLite driver for database/sql.

	"gitlab-mcp/types"
)

// SQLiteStorage implements types.Storage using SQLite
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage creates a new SQLite-based audit log storage
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	storage := &SQLiteStorage{db: db}

	if err := storage.initSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	if err := storage.migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) initSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS tool_invocations (
		id TEXT PRIMARY KEY,
		tool TEXT NOT NULL,
		status TEXT NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		duration_ms INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)
	`

	_, err := s.db.ExecContext(ctx, query)
	return err
}

// RecordInvocation appends one tool invocation to the audit timeline. A
// missing ID or timestamp is filled in here so callers only describe the call.
func (s *SQLiteStorage) RecordInvocation(ctx context.Context, record types.InvocationRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt == "" {
		record.CreatedAt = s.getCurrentTimestamp()
	}

	query := `
	INSERT INTO tool_invocations (id, tool, status, error, duration_ms, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		record.ID, record.Tool, record.Status, record.Error, record.Duration, record.CreatedAt)
	return err
}

// GetTimeline returns a page of recorded invocations, newest first,
// optionally filtered by tool name.
func (s *SQLiteStorage) GetTimeline(ctx context.Context, query types.TimelineQuery) (*types.TimelineResponse, error) {
	where := ""
	args := []any{}
	if query.Tool != "" {
		where = "WHERE tool = ?"
		args = append(args, query.Tool)
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tool_invocations %s", where)
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, err
	}

	limit := query.Limit
	if limit <= 0 {
		limit = 20
	}

	pageQuery := fmt.Sprintf(`
	SELECT id, tool, status, error, duration_ms, created_at
	FROM tool_invocations %s
	ORDER BY created_at DESC, id DESC
	LIMIT ? OFFSET ?
	`, where)
	args = append(args, limit, query.Offset)

	rows, err := s.db.QueryContext(ctx, pageQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []types.InvocationRecord{}
	for rows.Next() {
		var record types.InvocationRecord
		err := rows.Scan(&record.ID, &record.Tool, &record.Status, &record.Error, &record.Duration, &record.CreatedAt)
		if err != nil {
			return nil, err
		}
		events = append(events, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &types.TimelineResponse{
		Events:     events,
		TotalCount: total,
		HasMore:    query.Offset+len(events) < total,
	}, nil
}

// Close closes the underlying database handle.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *SQLiteStorage) getCurrentTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
