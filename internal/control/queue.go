package control

import (
	"sync"
	"time"

	"github.com/genricoloni/onair/internal/domain"
	"go.uber.org/zap"
)

const (
	defaultQueueSize = 16
	// Rate limit to max one warning per 5 seconds
	warningInterval = 5 * time.Second
)

// Queue carries commands from control surfaces to the engine
type Queue struct {
	logger          *zap.Logger
	commands        chan domain.Command
	mu              sync.Mutex
	lastDropWarning time.Time
}

// NewQueue creates a bounded command queue
func NewQueue(logger *zap.Logger) *Queue {
	return &Queue{
		logger:   logger,
		commands: make(chan domain.Command, defaultQueueSize),
	}
}

// Submit enqueues a command without blocking.
// It returns false when the queue is full and the command was dropped.
func (q *Queue) Submit(cmd domain.Command) bool {
	select {
	case q.commands <- cmd:
		q.logger.Debug("Command queued", zap.String("command", string(cmd)))
		return true
	default:
		q.logQueueFullWarning(cmd)
		return false
	}
}

// Commands returns a read-only channel of submitted commands
func (q *Queue) Commands() <-chan domain.Command {
	return q.commands
}

// logQueueFullWarning logs a dropped command, rate-limited to avoid log
// spam when a key is held down
func (q *Queue) logQueueFullWarning(cmd domain.Command) {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := time.Now()
	if now.Sub(q.lastDropWarning) >= warningInterval {
		q.logger.Warn("Command queue full, dropping command",
			zap.String("command", string(cmd)))
		q.lastDropWarning = now
	}
}
