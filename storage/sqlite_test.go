// Copyright 2025 Spacelift, Inc. and contributors
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // Import SQLite driver for database/sql.

	"gitlab-mcp/types"
)

func newTestSQLiteStorage(t *testing.T) (*SQLiteStorage, context.Context) {
	t.Helper()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "sqlite.db")
	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.db.Close())
	})
	return store, ctx
}

func TestSQLiteRecordInvocationFillsDefaults(t *testing.T) {
	t.Parallel()

	store, ctx := newTestSQLiteStorage(t)

	err := store.RecordInvocation(ctx, types.InvocationRecord{
		Tool:     "projects-list",
		Status:   types.InvocationStatusOK,
		Duration: 120,
	})
	require.NoError(t, err)

	res, err := store.GetTimeline(ctx, types.TimelineQuery{Limit: 10})
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	require.NotEmpty(t, res.Events[0].ID)
	require.NotEmpty(t, res.Events[0].CreatedAt)
	require.Equal(t, "projects-list", res.Events[0].Tool)
	require.Equal(t, types.InvocationStatusOK, res.Events[0].Status)
	require.Equal(t, int64(120), res.Events[0].Duration)
}

func TestSQLiteGetTimelinePagination(t *testing.T) {
	t.Parallel()

	store, ctx := newTestSQLiteStorage(t)

	baseTime := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		createdAt := baseTime.Add(time.Duration(i) * time.Minute).Format(time.RFC3339)
		_, err := store.db.ExecContext(ctx, `
			INSERT INTO tool_invocations (id, tool, status, error, duration_ms, created_at)
			VALUES (?, ?, ?, '', 0, ?)
		`, fmt.Sprintf("event-%d", i), fmt.Sprintf("tool-%d", i%2), "ok", createdAt)
		require.NoError(t, err)
	}

	testCases := []struct {
		name          string
		query         types.TimelineQuery
		expectedIDs   []string
		expectedCount int
		expectedMore  bool
	}{
		{
			name: "first page returns newest events and indicates more",
			query: types.TimelineQuery{
				Limit:  2,
				Offset: 0,
			},
			expectedIDs:   []string{"event-4", "event-3"},
			expectedCount: 5,
			expectedMore:  true,
		},
		{
			name: "last partial page returns remaining events",
			query: types.TimelineQuery{
				Limit:  2,
				Offset: 4,
			},
			expectedIDs:   []string{"event-0"},
			expectedCount: 5,
			expectedMore:  false,
		},
		{
			name: "offset beyond total returns empty slice",
			query: types.TimelineQuery{
				Limit:  3,
				Offset: 5,
			},
			expectedIDs:   []string{},
			expectedCount: 5,
			expectedMore:  false,
		},
		{
			name: "tool filter narrows both page and count",
			query: types.TimelineQuery{
				Tool:  "tool-1",
				Limit: 10,
			},
			expectedIDs:   []string{"event-3", "event-1"},
			expectedCount: 2,
			expectedMore:  false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res, err := store.GetTimeline(ctx, tc.query)
			require.NoError(t, err)
			require.Equal(t, tc.expectedCount, res.TotalCount)
			require.Equal(t, tc.expectedMore, res.HasMore)

			gotIDs := make([]string, len(res.Events))
			for i, event := range res.Events {
				gotIDs[i] = event.ID
			}
			require.Equal(t, tc.expectedIDs, gotIDs)
		})
	}
}

func TestSQLiteMigrationsAreIdempotent(t *testing.T) {
	t.Parallel()

	store, ctx := newTestSQLiteStorage(t)

	// NewSQLiteStorage already ran them once; a second pass must not fail.
	require.NoError(t, store.migrate(ctx))
}
