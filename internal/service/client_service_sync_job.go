package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-doc-sync/internal/config"
	"github.com/MKhiriev/go-doc-sync/internal/logger"
)

type clientSyncJob struct {
	syncService ClientSyncService
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that keeps the change channel of
// syncService open. The job is idle until Start is called.
func NewClientSyncJob(syncService ClientSyncService, log *logger.Logger) ClientSyncJob {
	if log == nil {
		log = logger.Nop()
	}
	return &clientSyncJob{syncService: syncService, logger: log.GetChildLogger("sync-job")}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that opens the change channel and reopens
// it retryInterval after it fails. The goroutine exits when ctx is cancelled,
// Stop is called or the session is closed.
func (j *clientSyncJob) Start(ctx context.Context, retryInterval time.Duration) {
	if retryInterval <= 0 {
		retryInterval = config.DefaultChannelRetryInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		j.run(jobCtx, retryInterval)
	}()
}

func (j *clientSyncJob) run(ctx context.Context, retryInterval time.Duration) {
	t := time.NewTimer(0)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}

		err := j.syncService.OpenChannel(ctx)
		if err == nil {
			err = j.syncService.WaitChannel(ctx)
		}

		switch {
		case ctx.Err() != nil:
			return
		case err == nil, errors.Is(err, ErrSessionClosed):
			j.logger.Info().Str("func", "clientSyncJob.run").Msg("change channel closed")
			return
		}

		j.logger.Err(err).
			Str("func", "clientSyncJob.run").
			Dur("retry_in", retryInterval).
			Msg("change channel failed")
		t.Reset(retryInterval)
	}
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
