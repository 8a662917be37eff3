// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/typedconf/internal/config"
	"github.com/MKhiriev/typedconf/internal/logger"
	"github.com/MKhiriev/typedconf/internal/store"
)

// HistoryPruner periodically deletes stored snapshots older than the
// retention period.
type HistoryPruner struct {
	repo      store.SnapshotRepository
	retention time.Duration
	interval  time.Duration
	now       func() time.Time

	logger *logger.Logger
}

// NewHistoryPruner returns nil when there is no repository or when
// retention or interval is not positive.
func NewHistoryPruner(repo store.SnapshotRepository, cfg config.History, logger *logger.Logger) *HistoryPruner {
	if repo == nil || cfg.Retention <= 0 || cfg.PruneInterval <= 0 {
		return nil
	}

	return &HistoryPruner{
		repo:      repo,
		retention: cfg.Retention,
		interval:  cfg.PruneInterval,
		now:       time.Now,
		logger:    logger,
	}
}

// Run prunes once immediately and then on every tick.
func (p *HistoryPruner) Run(ctx context.Context) {
	p.logger.Info().
		Dur("retention", p.retention).
		Dur("interval", p.interval).
		Msg("history pruner started")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.prune(ctx)

		select {
		case <-ctx.Done():
			p.logger.Info().Msg("history pruner stopped")
			return
		case <-ticker.C:
		}
	}
}

func (p *HistoryPruner) prune(ctx context.Context) {
	cutoff := p.now().Add(-p.retention)

	deleted, err := p.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		p.logger.Err(err).Time("cutoff", cutoff).Msg("error pruning history")
		return
	}
	if deleted > 0 {
		p.logger.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("history pruned")
	}
}
