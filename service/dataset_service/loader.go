package dataset_service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/BubsLB/airdropbreakdown/metrics"
	"github.com/BubsLB/airdropbreakdown/model"

	"github.com/sirupsen/logrus"
)

var logger = logrus.StandardLogger().WithField("module", "dataset")

// State loader lifecycle: uninitialized -> loading -> ready | failed
type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateReady         State = "ready"
	StateFailed        State = "failed"
)

// LoaderStatus point-in-time view of the loader
type LoaderStatus struct {
	State    State
	Source   string
	Layout   model.Layout
	Records  int
	Aliases  int
	LoadedAt time.Time
	Err      error // cause of a failed load, for operators only
}

// Loader loads the datasets once and publishes an immutable snapshot.
// There is no retry: a failed load stays failed until the process restarts.
type Loader struct {
	source Source

	once sync.Once
	done chan struct{}

	mu       sync.RWMutex
	state    State
	snapshot *model.Snapshot
	err      error
}

// NewLoader create loader for a source
func NewLoader(source Source) *Loader {
	metrics.SetDatasetState(string(StateUninitialized))
	return &Loader{
		source: source,
		done:   make(chan struct{}),
		state:  StateUninitialized,
	}
}

// Start begin loading in the background and return immediately. Later calls are no-ops.
func (l *Loader) Start(ctx context.Context) {
	l.once.Do(func() {
		l.setState(StateLoading)
		go l.run(ctx)
	})
}

// Load start loading if needed and wait for the outcome
func (l *Loader) Load(ctx context.Context) error {
	l.Start(ctx)
	return l.Wait(ctx)
}

// Wait block until the load finished or ctx is done
func (l *Loader) Wait(ctx context.Context) error {
	select {
	case <-l.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}

func (l *Loader) run(ctx context.Context) {
	defer close(l.done)

	logger.Infof("Loading eligibility data from %s", l.source.Name())
	started := time.Now()
	snapshot, err := l.source.Load(ctx)
	elapsed := time.Since(started)
	if err == nil && snapshot == nil {
		err = errors.New("source returned no data")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		l.state = StateFailed
		l.err = fmt.Errorf("%w: %v", ErrLoadFailed, err)
		metrics.ObserveLoad(elapsed, false)
		metrics.SetDatasetState(string(StateFailed))
		logger.WithError(err).Error("Failed to load airdrop data")
		return
	}

	l.state = StateReady
	l.snapshot = snapshot
	metrics.ObserveLoad(elapsed, true)
	metrics.SetDatasetState(string(StateReady))
	metrics.SetDatasetSize(len(snapshot.Airdrop), len(snapshot.Aliases))
	logger.WithFields(logrus.Fields{
		"records": len(snapshot.Airdrop),
		"aliases": len(snapshot.Aliases),
		"elapsed": elapsed.String(),
	}).Info("Eligibility data loaded")
}

func (l *Loader) setState(state State) {
	l.mu.Lock()
	l.state = state
	l.mu.Unlock()
	metrics.SetDatasetState(string(state))
}

// Snapshot the ready snapshot, ErrDataNotReady before the load finished, ErrLoadFailed after a failure
func (l *Loader) Snapshot() (*model.Snapshot, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	switch l.state {
	case StateReady:
		return l.snapshot, nil
	case StateFailed:
		return nil, l.err
	default:
		return nil, ErrDataNotReady
	}
}

// Status current loader status
func (l *Loader) Status() LoaderStatus {
	l.mu.RLock()
	defer l.mu.RUnlock()

	status := LoaderStatus{
		State:  l.state,
		Source: l.source.Name(),
		Err:    l.err,
	}
	if l.snapshot != nil {
		status.Layout = l.snapshot.Layout
		status.Records = len(l.snapshot.Airdrop)
		status.Aliases = len(l.snapshot.Aliases)
		status.LoadedAt = l.snapshot.LoadedAt
	}
	return status
}
