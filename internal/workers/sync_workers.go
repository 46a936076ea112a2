// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-doc-sync/internal/logger"
	"github.com/MKhiriev/go-doc-sync/internal/service"
)

// DefaultFlushTimeout bounds the final drain performed by [FlushWorker].
const DefaultFlushTimeout = 10 * time.Second

// ChannelWorker keeps the change channel of a sync session open through its
// [service.ClientSyncJob].
type ChannelWorker struct {
	job           service.ClientSyncJob
	retryInterval time.Duration
}

func NewChannelWorker(job service.ClientSyncJob, retryInterval time.Duration) *ChannelWorker {
	return &ChannelWorker{job: job, retryInterval: retryInterval}
}

func (w *ChannelWorker) Start(ctx context.Context) {
	w.job.Start(ctx, w.retryInterval)
}

func (w *ChannelWorker) Stop() {
	w.job.Stop()
}

// FlushWorker drains the queued writes of a sync session when it is stopped,
// so that nothing buffered behind the debounce is lost on shutdown.
type FlushWorker struct {
	syncService service.ClientSyncService
	timeout     time.Duration
	logger      *logger.Logger
}

func NewFlushWorker(syncService service.ClientSyncService, timeout time.Duration, log *logger.Logger) *FlushWorker {
	if timeout <= 0 {
		timeout = DefaultFlushTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &FlushWorker{syncService: syncService, timeout: timeout, logger: log.GetChildLogger("flush-worker")}
}

// Start is a no-op: writes are drained by the session's own debounce while
// the worker runs.
func (w *FlushWorker) Start(context.Context) {}

func (w *FlushWorker) Stop() {
	pending := w.syncService.Pending()
	if pending.Total() == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	if err := w.syncService.Flush(ctx); err != nil {
		left := w.syncService.Pending()
		w.logger.Err(err).
			Str("func", "FlushWorker.Stop").
			Int("pending", left.Total()).
			Msg("final flush failed")
		return
	}

	w.logger.Info().
		Str("func", "FlushWorker.Stop").
		Int("flushed", pending.Total()).
		Msg("pending writes flushed")
}
