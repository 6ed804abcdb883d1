package app

import (
	"splashkit/internal/coordinator"
	"splashkit/internal/logger"

	"fyne.io/fyne/v2"
)

// Lifecycle stops the coordinator from outside the event loop.
type Lifecycle struct {
	coordinator *coordinator.Coordinator
	logger      logger.Logger
}

func NewLifecycle(c *coordinator.Coordinator, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		coordinator: c,
		logger:      log,
	}
}

// Shutdown marshals Stop onto the Fyne main goroutine and waits for it.
func (l *Lifecycle) Shutdown() {
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)
	fyne.DoAndWait(l.coordinator.Stop)
	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}
