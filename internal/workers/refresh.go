// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-phonebook/internal/logger"
)

// RefreshWorker calls refresh on a fixed interval. A non-positive interval
// disables it: Run returns immediately.
type RefreshWorker struct {
	interval time.Duration
	refresh  func()

	logger *logger.Logger
}

func NewRefreshWorker(interval time.Duration, refresh func(), logger *logger.Logger) *RefreshWorker {
	return &RefreshWorker{
		interval: interval,
		refresh:  refresh,
		logger:   logger,
	}
}

func (r *RefreshWorker) Run(ctx context.Context) {
	if r.interval <= 0 || r.refresh == nil {
		r.logger.Debug().Msg("refresh worker disabled")
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Debug().Dur("interval", r.interval).Msg("refresh worker started")
	for {
		select {
		case <-ctx.Done():
			r.logger.Debug().Msg("refresh worker stopped")
			return
		case <-ticker.C:
			r.refresh()
		}
	}
}
