// Copyright 2025 Spacelift, Inc. and contributors
// SPDX-License-Identifier: Apache-2.0

package internal

// Truncate caps a response list the way the upstream API tools present them:
// the first n items, fewer when the list is short.
func Truncate[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
