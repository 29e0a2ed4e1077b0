package telemetry

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/grafana/pyroscope-go"
	"github.com/tenantbill/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// ErrProfilerAddressRequired is returned when profiling is enabled without a server.
var ErrProfilerAddressRequired = errors.New("profiler server address is required when profiling is enabled")

// defaultProfileTypes are collected when profiling is on. Mutex and block
// profiles need runtime sampling rates and are left off.
var defaultProfileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileAllocObjects,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseObjects,
	pyroscope.ProfileInuseSpace,
	pyroscope.ProfileGoroutines,
}

// Profiling label names attached to CPU samples per request
const (
	ProfilingLabelRoute  = "route"
	ProfilingLabelMethod = "method"
)

// WithProfilingLabels runs fn with the labels attached to the goroutine's
// profiling samples. Labels apply whether or not a profiler is running.
func WithProfilingLabels(ctx context.Context, labels map[string]string, fn func(ctx context.Context)) {
	if len(labels) == 0 {
		fn(ctx)
		return
	}
	kv := make([]string, 0, len(labels)*2)
	for k, v := range labels {
		kv = append(kv, k, v)
	}
	pyroscope.TagWrapper(ctx, pyroscope.Labels(kv...), fn)
}

// Profiler pushes continuous profiles to a Pyroscope server.
type Profiler struct {
	profiler *pyroscope.Profiler
	logger   *zap.Logger
	mu       sync.Mutex
	stopped  bool
}

// NewProfiler starts profiling when ProfilingEnabled is set, and otherwise
// returns a no-op profiler.
func NewProfiler(cfg config.TelemetryConfig, logger *zap.Logger) (*Profiler, error) {
	p := &Profiler{logger: logger}

	if !cfg.ProfilingEnabled {
		logger.Info("Continuous profiling disabled")
		return p, nil
	}
	if cfg.ProfilingServerAddress == "" {
		return nil, ErrProfilerAddressRequired
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: cfg.ServiceName,
		ServerAddress:   cfg.ProfilingServerAddress,
		Logger:          pyroscopeLogger{logger.Named("pyroscope").Sugar()},
		Tags:            profileTags(),
		ProfileTypes:    defaultProfileTypes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start profiler: %w", err)
	}
	p.profiler = profiler

	logger.Info("Profiler started",
		zap.String("server_address", cfg.ProfilingServerAddress),
		zap.String("application_name", cfg.ServiceName),
	)
	return p, nil
}

func profileTags() map[string]string {
	tags := map[string]string{}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		tags["hostname"] = hostname
	}
	if podName := os.Getenv("POD_NAME"); podName != "" {
		tags["pod"] = podName
	}
	return tags
}

// Stop flushes pending profiles. Safe to call more than once.
func (p *Profiler) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped || p.profiler == nil {
		p.stopped = true
		return nil
	}
	p.stopped = true

	if err := p.profiler.Stop(); err != nil {
		return fmt.Errorf("failed to stop profiler: %w", err)
	}
	p.logger.Info("Profiler stopped")
	return nil
}

// IsEnabled reports whether profiles are being pushed.
func (p *Profiler) IsEnabled() bool {
	return p.profiler != nil
}

type pyroscopeLogger struct {
	*zap.SugaredLogger
}

func (l pyroscopeLogger) Infof(format string, args ...any)  { l.SugaredLogger.Infof(format, args...) }
func (l pyroscopeLogger) Debugf(format string, args ...any) { l.SugaredLogger.Debugf(format, args...) }
func (l pyroscopeLogger) Errorf(format string, args ...any) { l.SugaredLogger.Errorf(format, args...) }
