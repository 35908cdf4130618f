// Package service runs the dashboard's background work: it probes the
// prediction service and reports what it saw through /stats and metrics.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/okian/footrisk/internal/domain/prediction"
	"github.com/okian/footrisk/pkg/logger"
	"github.com/okian/footrisk/pkg/metrics"
)

const defaultProbeInterval = 30 * time.Second

// ErrNoClient is returned by Probe when the service has no health checker.
var ErrNoClient = errors.New("no prediction client configured")

// HealthChecker is the part of the prediction client the service needs.
type HealthChecker interface {
	HealthCheck(ctx context.Context) (prediction.HealthStatus, error)
}

// Service probes the upstream prediction service on an interval.
type Service struct {
	mu sync.RWMutex

	client        HealthChecker
	upstreamURL   string
	probeInterval time.Duration

	// State
	started bool
	stopCh  chan struct{}
	doneCh  chan struct{}

	// Last probe
	probes     int64
	lastProbe  time.Time
	upstreamUp bool
	lastStatus string
	lastError  string

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithProbeInterval sets how often the upstream is probed. Zero disables probing.
func WithProbeInterval(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.probeInterval = d
		}
	}
}

// WithUpstreamURL records the base URL reported by GetStats.
func WithUpstreamURL(u string) Option {
	return func(s *Service) {
		s.upstreamURL = u
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service. client may be nil, which disables probing.
func New(client HealthChecker, opts ...Option) *Service {
	s := &Service{
		client:        client,
		probeInterval: defaultProbeInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins probing. Calling Start on a started service is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	s.started = true

	if s.client == nil || s.probeInterval == 0 {
		close(s.doneCh)
		s.logger.Info(ctx, "upstream probing disabled")
		return nil
	}

	go s.probeLoop(ctx, s.stopCh, s.doneCh)
	s.logger.Info(ctx, "dashboard service started",
		logger.Duration("probe_interval", s.probeInterval),
		logger.String("upstream", s.upstreamURL),
	)
	return nil
}

// Stop halts probing and waits for an in-flight probe to finish.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	close(s.stopCh)
	done := s.doneCh
	s.started = false
	s.mu.Unlock()

	<-done
	s.logger.Info(context.Background(), "dashboard service stopped")
}

func (s *Service) probeLoop(ctx context.Context, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.probeInterval)
	defer ticker.Stop()

	_ = s.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case <-ticker.C:
			_ = s.Probe(ctx)
		}
	}
}

// Probe runs one upstream health check and records the outcome.
func (s *Service) Probe(ctx context.Context) error {
	if s.client == nil {
		return ErrNoClient
	}
	timeout := s.probeInterval
	if timeout <= 0 {
		timeout = defaultProbeInterval
	}
	pctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	hs, err := s.client.HealthCheck(pctx)
	now := time.Now()

	s.mu.Lock()
	s.probes++
	s.lastProbe = now
	s.upstreamUp = err == nil
	s.lastStatus = hs.Status
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	log := s.logger
	s.mu.Unlock()

	metrics.SetUpstreamUp(err == nil, now.Unix())
	if log != nil {
		up := logger.Bool("upstream_up", err == nil)
		if err != nil {
			log.Warn(ctx, "upstream health probe failed", up, logger.Error(err))
		} else {
			log.Debug(ctx, "upstream healthy", up, logger.String("status", hs.Status))
		}
	}
	return err
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":           s.started,
		"upstream_url":      s.upstreamURL,
		"probe_interval_ms": s.probeInterval.Milliseconds(),
		"probes":            s.probes,
		"upstream_up":       s.upstreamUp,
	}
	if !s.lastProbe.IsZero() {
		stats["last_probe"] = s.lastProbe.UTC().Format(time.RFC3339)
		stats["upstream_status"] = s.lastStatus
	}
	if s.lastError != "" {
		stats["last_error"] = s.lastError
	}
	return stats
}
