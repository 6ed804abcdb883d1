// Package shutdown turns OS signals into an orderly stop.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"splashkit/internal/logger"
)

const (
	component      = "ShutdownManager"
	DefaultTimeout = 5 * time.Second
)

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable.
type Func func()

func (f Func) Shutdown() { f() }

type entry struct {
	name string
	c    Shutdownable
}

// Manager stops registered components in reverse registration order, at
// most once.
type Manager struct {
	components []entry
	logger     logger.Logger
	timeout    time.Duration

	mu   sync.Mutex
	once sync.Once
	done chan struct{}
}

func NewManager(log logger.Logger, timeout time.Duration) *Manager {
	if log == nil {
		log = logger.NopLogger{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Manager{
		logger:  log,
		timeout: timeout,
		done:    make(chan struct{}),
	}
}

func (m *Manager) Register(name string, c Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.components = append(m.components, entry{name: name, c: c})
}

// Listen shuts down on SIGINT or SIGTERM. It returns immediately; the
// listener exits when ctx is cancelled or shutdown has run.
func (m *Manager) Listen(ctx context.Context) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			m.logger.Info(component, "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
		case <-ctx.Done():
		case <-m.done:
		}
	}()
}

func (m *Manager) Shutdown() {
	m.once.Do(m.shutdown)
}

func (m *Manager) shutdown() {
	m.mu.Lock()
	components := make([]entry, len(m.components))
	copy(components, m.components)
	m.mu.Unlock()

	m.logger.Info(component, "shutdown sequence initiated", map[string]interface{}{
		"components": len(components),
	})

	for i := len(components) - 1; i >= 0; i-- {
		e := components[i]

		done := make(chan struct{})
		go func() {
			defer close(done)
			e.c.Shutdown()
		}()

		select {
		case <-done:
			m.logger.Debug(component, "component stopped", map[string]interface{}{
				"component_name": e.name,
			})
		case <-time.After(m.timeout):
			m.logger.Warning(component, "component shutdown timeout", map[string]interface{}{
				"component_name": e.name,
			})
		}
	}

	close(m.done)
	m.logger.Info(component, "shutdown sequence completed", nil)
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
