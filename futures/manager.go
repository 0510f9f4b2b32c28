package futures

import (
	"sync"

	"github.com/ygrebnov/errorc"
	"go.uber.org/zap"

	"github.com/jolly-good-toolbelt/jgt-common/metrics"
	"github.com/jolly-good-toolbelt/jgt-common/pool"
)

// Manager owns a shared, lazily-created, fixed-size worker pool.
//
// Lifecycle: size the pool with Configure before first use; the pool itself
// is instantiated by the first submission; Shutdown drains in-flight work
// and releases it. Using an unconfigured Manager fails with
// ErrPoolNotConfigured.
//
// All methods are safe for concurrent use.
type Manager struct {
	cfg managerConfig

	mu         sync.Mutex
	size       int
	configured bool
	pool       *pool.Fixed
	released   bool

	submitted metrics.Counter
	completed metrics.Counter
	failed    metrics.Counter
	inflight  metrics.UpDownCounter
}

// NewManager constructs a Manager. The pool size is supplied separately via
// Configure, so configuration data can stay with application setup code.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	cfg := defaultManagerConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return newManager(cfg), nil
}

func newManager(cfg managerConfig) *Manager {
	return &Manager{
		cfg:       cfg,
		submitted: cfg.metrics.Counter(metrics.TasksSubmitted),
		completed: cfg.metrics.Counter(metrics.TasksCompleted),
		failed:    cfg.metrics.Counter(metrics.TasksFailed),
		inflight:  cfg.metrics.UpDownCounter(metrics.TasksInFlight),
	}
}

// Configure records the desired worker-pool size (must be > 0). It has to be
// called before the pool is first used.
//
// Calling Configure again after the pool has been instantiated changes only
// the recorded desired size, not the live pool. This is a documented
// limitation of the shared-pool model, kept for compatibility.
func (m *Manager) Configure(maxWorkers int) error {
	if maxWorkers <= 0 {
		return errorc.With(ErrInvalidConfig, errorc.String("", "Configure requires maxWorkers > 0"))
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.size = maxWorkers
	m.configured = true
	return nil
}

// Pool returns the shared pool, creating it on first call using the
// previously configured size. It fails with ErrPoolNotConfigured when no
// size was ever configured, and with ErrPoolShutDown after Shutdown.
func (m *Manager) Pool() (*pool.Fixed, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.released {
		return nil, ErrPoolShutDown
	}
	if m.pool != nil {
		return m.pool, nil
	}
	if !m.configured {
		return nil, ErrPoolNotConfigured
	}

	m.pool = pool.NewFixed(m.size)
	m.cfg.logger.Debug("worker pool created", zap.Int("max_workers", m.size))
	return m.pool, nil
}

// Shutdown blocks until all submitted work completes, then releases the
// pool. It is a no-op when no pool was ever created and safe to call
// multiple times.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	p := m.pool
	alreadyReleased := m.released
	if p != nil {
		m.released = true
	}
	m.mu.Unlock()

	if p == nil || alreadyReleased {
		return
	}
	p.Close()
	m.cfg.logger.Debug("worker pool shut down")
}

// observeDone records a task completion.
func (m *Manager) observeDone(err error) {
	m.completed.Add(1)
	m.inflight.Add(-1)
	if err != nil {
		m.failed.Add(1)
		m.cfg.logger.Debug("task failed", zap.Error(err))
	}
}
