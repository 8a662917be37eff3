// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/typedconf/internal/logger"
	"github.com/MKhiriev/typedconf/internal/source"
	"github.com/MKhiriev/typedconf/internal/store"
	"github.com/MKhiriev/typedconf/internal/tree"
	"github.com/MKhiriev/typedconf/internal/utils"
	"github.com/MKhiriev/typedconf/internal/validators"
	"github.com/MKhiriev/typedconf/models"
	"github.com/google/uuid"
)

// confService is the concrete implementation of [ConfService].
//
// The current snapshot lives in an atomic pointer: readers see either nil
// or a complete snapshot, never a partially built one.
type confService struct {
	source    LayerSource
	resolver  Resolver
	validator validators.Validator

	// history is optional; nil disables recording.
	history  store.SnapshotRepository
	recorder Recorder

	current atomic.Pointer[models.Snapshot]
	now     func() time.Time

	logger *logger.Logger
}

// ConfOption configures a [ConfService].
type ConfOption func(*confService)

// WithHistory records every published snapshot in repo.
func WithHistory(repo store.SnapshotRepository) ConfOption {
	return func(s *confService) {
		s.history = repo
	}
}

// WithRecorder reports resolution cycles to rec.
func WithRecorder(rec Recorder) ConfOption {
	return func(s *confService) {
		s.recorder = rec
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) ConfOption {
	return func(s *confService) {
		s.now = now
	}
}

// NewConfService constructs a [ConfService] reading layers from src and
// resolving them with res.
func NewConfService(src LayerSource, res Resolver, logger *logger.Logger, opts ...ConfOption) ConfService {
	s := &confService{
		source:    src,
		resolver:  res,
		validator: validators.NewSelectorsValidator(),
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Unresolved loads default.json (required) and the optional environment,
// deployment and user layers, then merges them with the overrides in that
// order of increasing precedence.
func (s *confService) Unresolved(ctx context.Context, sel models.Selectors) (*tree.Node, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, sel); err != nil {
		log.Err(err).Msg("rejected layer selectors")
		return nil, err
	}

	base, err := s.source.Load(source.BaseFile)
	if err != nil {
		if errors.Is(err, source.ErrNotFound) {
			log.Error().Str("file", source.BaseFile).Msg("base layer is missing")
			return nil, fmt.Errorf("%w: %w", ErrConfigMissing, err)
		}
		return nil, err
	}

	layers := []*tree.Node{tree.FromMap(base)}

	optional := []struct {
		selector string
		file     func(string) string
	}{
		{sel.Environment, source.EnvironmentFile},
		{sel.Deployment, source.DeploymentFile},
		{sel.User, source.UserFile},
	}
	for _, layer := range optional {
		if layer.selector == "" {
			continue
		}

		name := layer.file(layer.selector)
		m, err := s.source.Load(name)
		switch {
		case errors.Is(err, source.ErrNotFound):
			log.Debug().Str("file", name).Msg("optional layer is missing")
			continue
		case err != nil:
			return nil, err
		}
		layers = append(layers, tree.FromMap(m))
	}

	layers = append(layers, tree.FromMap(sel.Overrides))

	return tree.Merge(layers...), nil
}

// Load runs one resolution cycle. The snapshot is published only when the
// cycle succeeds; on failure the previous snapshot, if any, stays current.
func (s *confService) Load(ctx context.Context, sel models.Selectors) (*models.Snapshot, error) {
	runID := utils.NewRunID()
	log := s.logger.GetChildLogger().With().Str("run_id", runID.String()).Logger()
	ctx = log.WithContext(ctx)

	start := s.now()
	snapshot, err := s.load(ctx, runID, sel)
	if s.recorder != nil {
		s.recorder.RecordResolution(s.now().Sub(start), err)
	}
	if err != nil {
		log.Err(err).Msg("resolution failed")
		return nil, err
	}

	s.current.Store(snapshot)
	log.Info().Str("fingerprint", snapshot.Fingerprint).Msg("configuration resolved")

	if s.history != nil {
		if err = s.history.Save(ctx, *snapshot); err != nil {
			log.Err(err).Msg("error saving snapshot to history")
		}
	}

	return snapshot, nil
}

func (s *confService) load(ctx context.Context, runID uuid.UUID, sel models.Selectors) (*models.Snapshot, error) {
	root, err := s.Unresolved(ctx, sel)
	if err != nil {
		return nil, err
	}

	resolved, err := s.resolver.Resolve(ctx, root)
	if err != nil {
		return nil, err
	}

	// Loader results are opaque and may not encode as JSON. Such a snapshot
	// is still published, only without a fingerprint.
	fingerprint, err := utils.Fingerprint(resolved)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("snapshot has no fingerprint")
		fingerprint = ""
	}

	return &models.Snapshot{
		ID:          runID,
		Selectors:   sel,
		Tree:        resolved,
		Fingerprint: fingerprint,
		ResolvedAt:  s.now().UTC(),
	}, nil
}

func (s *confService) Reload(ctx context.Context) (*models.Snapshot, error) {
	current, err := s.Get()
	if err != nil {
		return nil, err
	}

	return s.Load(ctx, current.Selectors)
}

func (s *confService) Get() (*models.Snapshot, error) {
	snapshot := s.current.Load()
	if snapshot == nil {
		return nil, ErrNotLoaded
	}

	return snapshot, nil
}

func (s *confService) Value(path string) (any, error) {
	snapshot, err := s.Get()
	if err != nil {
		return nil, err
	}

	value, ok := snapshot.Lookup(models.SplitPath(path))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPathNotFound, path)
	}

	return value, nil
}

func (s *confService) History(ctx context.Context, limit int) ([]models.Snapshot, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}

	snapshots, err := s.history.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing history: %w", err)
	}

	return snapshots, nil
}
