package invoker

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/grocerymesh/core"
	"github.com/hupe1980/grocerymesh/logging"
)

// LocalOptions configures the local invoker.
type LocalOptions struct {
	Logger logging.Logger
}

// Local dispatches workers registered in-process. It is the deployment-free
// counterpart of a remote function invoker and the default wiring for tests
// and single-process setups. Safe for concurrent use.
type Local struct {
	mu      sync.RWMutex
	workers map[string]core.Worker
	logger  logging.Logger
}

// Compile-time interface assertion.
var _ Invoker = (*Local)(nil)

// NewLocal constructs an empty local invoker.
func NewLocal(optFns ...func(o *LocalOptions)) *Local {
	opts := LocalOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Local{workers: make(map[string]core.Worker), logger: logging.OrNoOp(opts.Logger)}
}

// Register adds a worker under its own name, replacing any previous
// registration.
func (l *Local) Register(w core.Worker) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.workers[w.Name()] = w
}

// Invoke runs the named worker. Unknown names, worker errors and panics all
// collapse to an error payload.
func (l *Local) Invoke(ctx context.Context, workerName string, payload core.Payload) (out core.Payload) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("invoker.panic", "worker", workerName, "panic", fmt.Sprint(r))
			out = core.ErrorPayload(fmt.Sprintf("worker %s panicked: %v", workerName, r))
		}
	}()

	l.mu.RLock()
	w, ok := l.workers[workerName]
	l.mu.RUnlock()
	if !ok {
		return core.ErrorPayload(fmt.Sprintf("unknown worker: %s", workerName))
	}

	l.logger.Debug("invoker.invoke", "worker", workerName)
	resp, err := w.Run(ctx, payload)
	if err != nil {
		l.logger.Warn("invoker.failed", "worker", workerName, "error", err.Error())
		return core.ErrorPayload(err.Error())
	}
	if resp == nil {
		resp = core.Payload{}
	}
	return resp
}
