// Copyright 2025 Spacelift, Inc. and contributors
// SPDX-License-Identifier: Apache-2.0

package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	items := []string{"a", "b", "c"}

	require.Equal(t, []string{"a", "b"}, Truncate(items, 2))
	require.Equal(t, items, Truncate(items, 3))
	require.Equal(t, items, Truncate(items, 10))
	require.Empty(t, Truncate([]string{}, 5))
}
