// Package notify is the toast surface: fire-and-forget presentation of
// human-readable success and error strings. Not awaited, not part of the
// control-flow contract.
package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Notifier receives user-facing messages. Implementations must not block.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type logNotifier struct {
	logger *zap.Logger
}

// NewLog returns a Notifier that writes toasts to the application log; the
// real toast rendering lives in the UI, outside this repository.
func NewLog(logger *zap.Logger) Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Success(msg string) { n.logger.Info("toast", zap.String("message", msg)) }
func (n *logNotifier) Error(msg string)   { n.logger.Warn("toast", zap.String("message", msg)) }

// Capture records messages for assertions in tests.
type Capture struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (c *Capture) Success(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Successes = append(c.Successes, msg)
}

func (c *Capture) Error(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Errors = append(c.Errors, msg)
}
