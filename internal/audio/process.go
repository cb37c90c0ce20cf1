package audio

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/genricoloni/onair/internal/config"
	"github.com/genricoloni/onair/internal/domain"
	"go.uber.org/zap"
)

const (
	// A player that survives this long has connected to the stream
	defaultStartupGrace = 750 * time.Millisecond
	stopTimeout         = 3 * time.Second
	stderrTailSize      = 2048
)

// process is one run of the external player
type process struct {
	cmd    *exec.Cmd
	stderr *tailBuffer
	done   chan struct{} // closed under ProcessOutput.mu when the process exits
	err    error

	// live is set once the startup grace period has passed
	live     bool
	stopping bool
}

// ProcessOutput plays the stream through an external player process
type ProcessOutput struct {
	logger       *zap.Logger
	cfg          config.PlayerConfig
	startupGrace time.Duration
	errors       chan error

	mu   sync.Mutex
	proc *process
}

// NewProcessOutput creates an audio output. The player binary is resolved
// on every Play so that installing one does not require a restart.
func NewProcessOutput(logger *zap.Logger, cfg config.PlayerConfig) *ProcessOutput {
	return &ProcessOutput{
		logger:       logger,
		cfg:          cfg,
		startupGrace: defaultStartupGrace,
		errors:       make(chan error, 1),
	}
}

// Play spawns the player and waits for the startup grace period.
// A player that exits during that window is reported as an error.
func (p *ProcessOutput) Play(ctx context.Context, streamURL string) error {
	p.mu.Lock()
	if p.proc != nil {
		p.mu.Unlock()
		return nil
	}

	command, err := detectCommand(p.logger, p.cfg)
	if err != nil {
		p.mu.Unlock()
		return err
	}

	args := expandArgs(command.Args, streamURL)
	proc := &process{
		stderr: newTailBuffer(stderrTailSize),
		done:   make(chan struct{}),
	}
	// Not CommandContext: the player outlives the request that started it
	proc.cmd = exec.Command(command.Binary, args...)
	proc.cmd.Stderr = proc.stderr

	p.logger.Debug("Starting stream player",
		zap.String("command", command.Binary),
		zap.Strings("args", args))

	if err := proc.cmd.Start(); err != nil {
		p.mu.Unlock()
		return fmt.Errorf("failed to start %s: %w", command.Name, err)
	}
	p.proc = proc
	p.mu.Unlock()

	go p.wait(proc, command.Name)

	timer := time.NewTimer(p.startupGrace)
	defer timer.Stop()

	select {
	case <-proc.done:
		return p.exitError(command.Name, proc)
	case <-ctx.Done():
		_ = p.Pause(context.Background())
		return ctx.Err()
	case <-timer.C:
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	select {
	case <-proc.done:
		return p.exitError(command.Name, proc)
	default:
		proc.live = true
	}

	p.logger.Info("Stream player running",
		zap.String("player", command.Name),
		zap.Int("pid", proc.cmd.Process.Pid))
	return nil
}

// Pause terminates the player, killing it if it does not exit in time
func (p *ProcessOutput) Pause(ctx context.Context) error {
	p.mu.Lock()
	proc := p.proc
	if proc == nil {
		p.mu.Unlock()
		return nil
	}
	proc.stopping = true
	p.mu.Unlock()

	if err := terminate(proc.cmd.Process); err != nil {
		p.logger.Debug("Graceful terminate failed, killing player", zap.Error(err))
		_ = proc.cmd.Process.Kill()
	}

	timer := time.NewTimer(stopTimeout)
	defer timer.Stop()

	select {
	case <-proc.done:
	case <-timer.C:
		p.logger.Warn("Stream player did not exit, killing it")
		_ = proc.cmd.Process.Kill()
		<-proc.done
	case <-ctx.Done():
		_ = proc.cmd.Process.Kill()
		<-proc.done
		return ctx.Err()
	}

	return nil
}

// Errors emits when a running player exits without Pause
func (p *ProcessOutput) Errors() <-chan error {
	return p.errors
}

// wait reaps the process and reports exits that nobody asked for
func (p *ProcessOutput) wait(proc *process, name string) {
	err := proc.cmd.Wait()

	p.mu.Lock()
	proc.err = err
	unexpected := proc.live && !proc.stopping
	if p.proc == proc {
		p.proc = nil
	}
	close(proc.done)
	p.mu.Unlock()

	if !unexpected {
		return
	}

	exitErr := p.exitError(name, proc)
	select {
	case p.errors <- exitErr:
	default:
		p.logger.Warn("Dropping player exit report, previous one not consumed", zap.Error(exitErr))
	}
}

func (p *ProcessOutput) exitError(name string, proc *process) error {
	msg := strings.TrimSpace(proc.stderr.String())
	if msg == "" && proc.err != nil {
		msg = proc.err.Error()
	}
	if msg == "" {
		return fmt.Errorf("%w: %s", domain.ErrPlayerExited, name)
	}
	return fmt.Errorf("%w: %s: %s", domain.ErrPlayerExited, name, msg)
}

// tailBuffer keeps the last n bytes written to it
type tailBuffer struct {
	mu  sync.Mutex
	n   int
	buf []byte
}

func newTailBuffer(n int) *tailBuffer {
	return &tailBuffer{n: n}
}

func (b *tailBuffer) Write(data []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.buf = append(b.buf, data...)
	if over := len(b.buf) - b.n; over > 0 {
		b.buf = b.buf[over:]
	}
	return len(data), nil
}

func (b *tailBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.buf)
}
