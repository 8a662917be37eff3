// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/typedconf/internal/logger"
	"github.com/MKhiriev/typedconf/models"
	"github.com/google/uuid"
)

const snapshotsTable = "snapshots"

var snapshotColumns = []string{
	"id", "environment", "deployment", "user_name", "overrides", "tree", "fingerprint", "resolved_at",
}

// snapshotRepository is the SQL-backed implementation of
// [SnapshotRepository]. Trees and overrides are stored as JSON text so the
// same schema serves both engines.
type snapshotRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSnapshotRepository constructs a [SnapshotRepository] backed by the
// provided database connection and logger.
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating snapshot repository")
	return &snapshotRepository{
		db:     db,
		logger: logger,
	}
}

// Save inserts snapshot.
//
// Error handling:
//   - unique violation on id (either engine): [ErrSnapshotExists].
//   - any other driver-level error: wrapped [ErrExecutingStatement].
func (r *snapshotRepository) Save(ctx context.Context, snapshot models.Snapshot) error {
	log := logger.FromContext(ctx)

	tree, err := json.Marshal(snapshot.Tree)
	if err != nil {
		return fmt.Errorf("%w: tree: %w", ErrEncodingSnapshot, err)
	}
	overrides, err := json.Marshal(snapshot.Selectors.Overrides)
	if err != nil {
		return fmt.Errorf("%w: overrides: %w", ErrEncodingSnapshot, err)
	}

	query, args, err := r.db.builder.
		Insert(snapshotsTable).
		Columns(snapshotColumns...).
		Values(
			snapshot.ID.String(),
			snapshot.Selectors.Environment,
			snapshot.Selectors.Deployment,
			snapshot.Selectors.User,
			string(overrides),
			string(tree),
			snapshot.Fingerprint,
			snapshot.ResolvedAt.UTC(),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*snapshotRepository.Save").Msg("error inserting snapshot")
		if isUniqueViolation(err) {
			return ErrSnapshotExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *snapshotRepository) List(ctx context.Context, limit int) ([]models.Snapshot, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.
		Select(snapshotColumns...).
		From(snapshotsTable).
		OrderBy("resolved_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.List").Msg("error querying snapshots")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	snapshots := make([]models.Snapshot, 0, max(limit, 0))
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			log.Err(err).Str("func", "*snapshotRepository.List").Msg("error scanning snapshot")
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return snapshots, nil
}

func (r *snapshotRepository) Latest(ctx context.Context) (models.Snapshot, error) {
	snapshots, err := r.List(ctx, 1)
	if err != nil {
		return models.Snapshot{}, err
	}
	if len(snapshots) == 0 {
		return models.Snapshot{}, ErrSnapshotNotFound
	}

	return snapshots[0], nil
}

func (r *snapshotRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(snapshotsTable).
		Where(sq.Lt{"resolved_at": cutoff.UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.DeleteOlderThan").Msg("error deleting snapshots")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (models.Snapshot, error) {
	var (
		snapshot  models.Snapshot
		id        string
		overrides string
		tree      string
	)

	err := row.Scan(
		&id,
		&snapshot.Selectors.Environment,
		&snapshot.Selectors.Deployment,
		&snapshot.Selectors.User,
		&overrides,
		&tree,
		&snapshot.Fingerprint,
		&snapshot.ResolvedAt,
	)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if snapshot.ID, err = uuid.Parse(id); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: id: %w", ErrEncodingSnapshot, err)
	}
	if err = json.Unmarshal([]byte(tree), &snapshot.Tree); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: tree: %w", ErrEncodingSnapshot, err)
	}
	if err = json.Unmarshal([]byte(overrides), &snapshot.Selectors.Overrides); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: overrides: %w", ErrEncodingSnapshot, err)
	}

	return snapshot, nil
}
