// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSnapshotExists is returned when a snapshot with the same run ID has
	// already been stored.
	ErrSnapshotExists = errors.New("snapshot already exists")

	// ErrSnapshotNotFound is returned when a query expected to match a
	// snapshot produces an empty result set.
	ErrSnapshotNotFound = errors.New("snapshot was not found")

	// ErrUnsupportedDSN is returned when a DSN cannot be mapped to a driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan snapshot rows")

	// ErrEncodingSnapshot is returned when a snapshot's tree or overrides
	// cannot be converted to or from their stored JSON form.
	ErrEncodingSnapshot = errors.New("failed to encode snapshot")
)
