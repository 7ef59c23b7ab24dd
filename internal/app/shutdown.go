package app

import (
	"sync"
	"time"

	"github.com/goldenanvil/compendium/internal/logger"
)

type Shutdownable interface {
	Shutdown()
}

// ShutdownManager tears registered components down in reverse order when
// the window closes. A component that hangs is abandoned after a timeout
// so the process always exits.
type ShutdownManager struct {
	components []Shutdownable
	logger     logger.Logger
	mu         sync.Mutex
	done       bool
}

const componentShutdownTimeout = 10 * time.Second

func NewShutdownManager(log logger.Logger) *ShutdownManager {
	return &ShutdownManager{
		components: make([]Shutdownable, 0),
		logger:     log,
	}
}

func (m *ShutdownManager) Register(component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component)
}

func (m *ShutdownManager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.done {
		return
	}
	m.done = true

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	for i := len(m.components) - 1; i >= 0; i-- {
		component := m.components[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			component.Shutdown()
		}()

		select {
		case <-finished:
		case <-time.After(componentShutdownTimeout):
			m.logger.Warning("ShutdownManager", "component shutdown timeout", map[string]interface{}{
				"component_index": i,
			})
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}
