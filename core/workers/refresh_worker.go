// ABOUTME: Refresh worker reloads the country collection on a fixed interval
// ABOUTME: Provides a managed background loop with graceful start and stop

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"countries-app-api/core/interfaces"
)

var (
	// ErrRefreshDisabled is returned by Start when the interval is not positive
	ErrRefreshDisabled = errors.New("refresh interval must be positive")
)

// Loader is anything that can reload its data. The store's Load records its
// own errors, so the loop has nothing to handle.
type Loader interface {
	Load(ctx context.Context)
}

// RefreshConfig holds configuration for the refresh worker
type RefreshConfig struct {
	// Interval between two loads
	Interval time.Duration

	// Timeout bounds a single load; 0 means no bound beyond Stop
	Timeout time.Duration

	// LoadOnStart triggers a load immediately instead of after the first interval
	LoadOnStart bool
}

// RefreshWorker periodically calls Load on a Loader
type RefreshWorker struct {
	logger interfaces.Logger
	target Loader
	config RefreshConfig

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewRefreshWorker creates a new refresh worker
func NewRefreshWorker(target Loader, config RefreshConfig, logger interfaces.Logger) *RefreshWorker {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &RefreshWorker{
		logger: logger,
		target: target,
		config: config,
	}
}

// Start launches the refresh loop. Calling Start on a running worker is a no-op.
func (w *RefreshWorker) Start() error {
	if w.config.Interval <= 0 {
		return ErrRefreshDisabled
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})
	w.running = true

	go w.run(ctx, w.done)

	w.logger.Info("Refresh worker started", map[string]interface{}{
		"interval": w.config.Interval.String(),
	})
	return nil
}

// Stop cancels any in-flight load and waits for the loop to exit
func (w *RefreshWorker) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	w.cancel()
	<-w.done
	w.running = false

	w.logger.Info("Refresh worker stopped", nil)
	return nil
}

// IsRunning returns whether the loop is active
func (w *RefreshWorker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *RefreshWorker) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	if w.config.LoadOnStart {
		w.loadOnce(ctx)
	}

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.loadOnce(ctx)
		}
	}
}

func (w *RefreshWorker) loadOnce(ctx context.Context) {
	if w.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.config.Timeout)
		defer cancel()
	}

	w.logger.Debug("Refreshing countries", nil)
	w.target.Load(ctx)
}
