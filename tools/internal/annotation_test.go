// Copyright 2025 Spacelift, Inc. and contributors
// SPDX-License-Identifier: Apache-2.0

package internal

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"
)

func TestAnnotationHintConstants(t *testing.T) {
	expectedValues := map[AnnotationHint]uint8{
		Readonly:    1,
		Destructive: 2,
		Idempotent:  4,
		OpenWorld:   8,
	}

	for hint, expected := range expectedValues {
		require.Equal(t, expected, uint8(hint))
	}
}

func TestToolAnnotations(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		hints    AnnotationHint
		expected mcp.ToolAnnotation
	}{
		{
			name:  "no hints",
			title: "Test Tool",
			hints: 0,
			expected: mcp.ToolAnnotation{
				Title:           "Test Tool",
				ReadOnlyHint:    mcp.ToBoolPtr(false),
				DestructiveHint: mcp.ToBoolPtr(false),
				IdempotentHint:  mcp.ToBoolPtr(false),
				OpenWorldHint:   mcp.ToBoolPtr(false),
			},
		},
		{
			name:  "readonly and idempotent",
			title: "List Tool",
			hints: Readonly | Idempotent,
			expected: mcp.ToolAnnotation{
				Title:           "List Tool",
				ReadOnlyHint:    mcp.ToBoolPtr(true),
				DestructiveHint: mcp.ToBoolPtr(false),
				IdempotentHint:  mcp.ToBoolPtr(true),
				OpenWorldHint:   mcp.ToBoolPtr(false),
			},
		},
		{
			name:  "destructive",
			title: "Delete Tool",
			hints: Destructive,
			expected: mcp.ToolAnnotation{
				Title:           "Delete Tool",
				ReadOnlyHint:    mcp.ToBoolPtr(false),
				DestructiveHint: mcp.ToBoolPtr(true),
				IdempotentHint:  mcp.ToBoolPtr(false),
				OpenWorldHint:   mcp.ToBoolPtr(false),
			},
		},
		{
			name:  "all hints combined",
			title: "All Tool",
			hints: Readonly | Destructive | Idempotent | OpenWorld,
			expected: mcp.ToolAnnotation{
				Title:           "All Tool",
				ReadOnlyHint:    mcp.ToBoolPtr(true),
				DestructiveHint: mcp.ToBoolPtr(true),
				IdempotentHint:  mcp.ToBoolPtr(true),
				OpenWorldHint:   mcp.ToBoolPtr(true),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToolAnnotations(tt.title, tt.hints)

			require.Equal(t, tt.expected.Title, result.Title)
			require.Equal(t, *tt.expected.ReadOnlyHint, *result.ReadOnlyHint)
			require.Equal(t, *tt.expected.DestructiveHint, *result.DestructiveHint)
			require.Equal(t, *tt.expected.IdempotentHint, *result.IdempotentHint)
			require.Equal(t, *tt.expected.OpenWorldHint, *result.OpenWorldHint)
		})
	}
}
