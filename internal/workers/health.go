// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/service"
)

const defaultHealthInterval = 30 * time.Second

type healthWorker struct {
	ctx      context.Context
	health   service.HealthService
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewHealthWorker returns a worker that refreshes the health report every
// interval, so /health and the gRPC Check answer from the last probe. A
// non-positive interval defaults to 30 seconds.
func NewHealthWorker(ctx context.Context, health service.HealthService, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultHealthInterval
	}
	return &healthWorker{
		ctx:      ctx,
		health:   health,
		interval: interval,
		logger:   logger,
	}
}

// Run probes once synchronously, then keeps probing on a ticker until the
// worker's context is cancelled or Stop is called.
func (w *healthWorker) Run() {
	w.Stop()

	w.mu.Lock()
	ctx, cancel := context.WithCancel(w.ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.probe(ctx)

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				w.logger.Debug().Msg("health worker stopped")
				return
			case <-t.C:
				w.probe(ctx)
			}
		}
	}()
}

func (w *healthWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *healthWorker) probe(ctx context.Context) {
	report := w.health.Probe(ctx)
	w.logger.Debug().
		Str("status", report.Status).
		Any("services", report.Services).
		Msg("health probe")
}
