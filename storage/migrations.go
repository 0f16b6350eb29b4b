// Copyright 2025 Spacelift, Inc. and contributors
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// migration represents a single database migration
type migration struct {
	name string
	fn   func(context.Context, *sql.Tx) error
}

// allMigrations contains all migrations in order
var allMigrations = []migration{
	{
		name: "add_tool_invocations_created_at_index",
		fn:   addToolInvocationsCreatedAtIndex,
	},
	{
		name: "add_tool_invocations_tool_index",
		fn:   addToolInvocationsToolIndex,
	},
}

// migrate runs all database migrations in an idempotent manner
func (s *SQLiteStorage) migrate(ctx context.Context) error {
	for _, m := range allMigrations {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %s: %w", m.name, err)
		}

		if err := m.fn(ctx, tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %s failed: %w", m.name, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", m.name, err)
		}
	}

	return nil
}

func addToolInvocationsCreatedAtIndex(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS idx_tool_invocations_created_at ON tool_invocations (created_at)")
	return err
}

func addToolInvocationsToolIndex(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS idx_tool_invocations_tool ON tool_invocations (tool)")
	return err
}
