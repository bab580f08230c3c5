package subprocess

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/parruda/claude-code-sdk-go/internal/cli"
	"github.com/parruda/claude-code-sdk-go/internal/config"
	"github.com/parruda/claude-code-sdk-go/internal/errors"
)

const (
	// readChunkSize is the read size for draining CLI stdout. Chunks are
	// reassembled into complete JSON values by the reassembler, so the
	// exact size only affects syscall granularity.
	readChunkSize = 4096

	// maxStderrBufferSize caps the stderr buffer retained for error
	// reporting. The stderr callback still receives every line; only the
	// buffered copy stops growing past this limit.
	maxStderrBufferSize = 10 * 1024 * 1024 // 10MB
)

// disconnectGracePeriod is how long Disconnect waits between the polite
// interrupt and the forceful kill. A variable so tests can shorten it.
var disconnectGracePeriod = 5 * time.Second

// CLITransport implements Transport by spawning a Claude CLI subprocess.
//
// A transport is a single-use session: once disconnected it cannot be
// connected again. Create a new transport for each query.
type CLITransport struct {
	log            *slog.Logger
	options        *config.Options
	prompt         string
	cliPath        string
	args           []string
	env            []string
	cwd            string
	stderrCallback func(string)

	mu           sync.Mutex
	cmd          *exec.Cmd
	stdout       io.ReadCloser
	stderr       io.ReadCloser
	disconnected bool // Set once Disconnect has run; the session is spent
	closing      bool // Set while Disconnect is tearing the process down

	waitOnce sync.Once
	waitErr  error
	exited   chan struct{}
}

// Compile-time verification that CLITransport implements the Transport interface.
var _ config.Transport = (*CLITransport)(nil)

// NewCLITransport creates a new CLI transport for a one-shot prompt.
//
// CLI discovery runs eagerly here, before any process is spawned, so a
// missing installation surfaces as CLINotFoundError at construction time
// rather than as an opaque spawn failure later. The search order is:
//  1. The explicit path in options.CliPath (if provided)
//  2. The system PATH
//  3. Common installation directories (npm global, yarn, ~/.local/bin)
//
// The logger receives debug, info, warn, and error messages during
// transport operations; each session is tagged with a unique id so
// concurrent sessions can be told apart in shared log output.
func NewCLITransport(
	log *slog.Logger,
	prompt string,
	options *config.Options,
) (*CLITransport, error) {
	sessionID := ulid.Make().String()
	log = log.With("component", "cli_transport", "transport_id", sessionID)

	discoverer := cli.NewDiscoverer(&cli.Config{
		CliPath: options.CliPath,
		Logger:  log,
	})

	cliPath, err := discoverer.Discover(context.Background())
	if err != nil {
		return nil, fmt.Errorf("discover CLI: %w", err)
	}

	return &CLITransport{
		log:            log,
		options:        options,
		prompt:         prompt,
		cliPath:        cliPath,
		stderrCallback: options.Stderr,
		exited:         make(chan struct{}),
	}, nil
}

// Connect spawns the CLI subprocess.
//
// Connect is idempotent: calling it on an already-connected transport is a
// no-op. Calling it after Disconnect returns ErrSessionClosed because a
// transport is bound to one process for its lifetime.
//
// The child's stdin is closed immediately; the prompt travels on the
// command line and all output flows back over stdout.
//
// Returns CLINotFoundError if the resolved binary disappeared between
// discovery and spawn, or CLIConnectionError for any other spawn failure.
func (t *CLITransport) Connect(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.disconnected {
		return errors.ErrSessionClosed
	}

	if t.cmd != nil {
		t.log.Debug("Connect called on connected transport, ignoring")

		return nil
	}

	t.args = cli.BuildArgs(t.prompt, t.options)
	t.log.Debug("Built command arguments", "args", t.args)

	t.env = cli.BuildEnvironment(t.options)

	t.cwd = t.options.Cwd
	if t.cwd != "" {
		info, err := os.Stat(t.cwd)
		if err != nil || !info.IsDir() {
			return &errors.CLIConnectionError{
				Err: fmt.Errorf("working directory does not exist: %s", t.cwd),
			}
		}
	}

	t.log.Info("Starting Claude CLI subprocess", "cli_path", t.cliPath, "cwd", t.cwd)

	//nolint:gosec // G204: Subprocess launching with dynamic args is expected for CLI invocation
	cmd := exec.CommandContext(ctx, t.cliPath, t.args...)
	cmd.Dir = t.cwd
	cmd.Env = t.env
	cmd.Cancel = func() error {
		return interruptProcess(cmd.Process)
	}
	cmd.WaitDelay = disconnectGracePeriod

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		t.log.Error("Failed to create stdout pipe", "error", err)

		return &errors.CLIConnectionError{Err: fmt.Errorf("stdout pipe: %w", err)}
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		t.log.Error("Failed to create stderr pipe", "error", err)

		return &errors.CLIConnectionError{Err: fmt.Errorf("stderr pipe: %w", err)}
	}

	if err := cmd.Start(); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) || stderrors.Is(err, exec.ErrNotFound) {
			return &errors.CLINotFoundError{
				Message:       fmt.Sprintf("Claude Code not found at: %s", t.cliPath),
				SearchedPaths: []string{t.cliPath},
			}
		}

		t.log.Error("Failed to start CLI process", "error", err)

		return &errors.CLIConnectionError{Err: fmt.Errorf("start process: %w", err)}
	}

	t.cmd = cmd
	t.stdout = stdout
	t.stderr = stderr
	t.log.Info("Claude CLI subprocess started", "pid", cmd.Process.Pid)

	return nil
}

// Connected reports whether the transport has a live subprocess.
func (t *CLITransport) Connected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cmd == nil || t.cmd.Process == nil || t.disconnected {
		return false
	}

	select {
	case <-t.exited:
		return false
	default:
	}

	return processAlive(t.cmd.Process)
}

// ReadMessages reads JSON messages from the CLI stdout.
//
// Stdout and stderr are drained by concurrent goroutines under one group,
// so a process that floods stderr while stdout is being read cannot fill
// its pipe and stall. Stdout is consumed in raw chunks and reassembled
// into complete JSON values; each value is sent to the messages channel.
//
// After both streams are exhausted the process is reaped. A non-zero exit
// is reported as a ProcessError carrying the exit code and the buffered
// stderr, unless the exit was caused by Disconnect. Both channels are
// closed when the reading pass ends.
//
// Returns ErrTransportNotConnected (via the error channel) when called
// before Connect.
func (t *CLITransport) ReadMessages(
	ctx context.Context,
) (<-chan map[string]any, <-chan error) {
	messages := make(chan map[string]any)
	errs := make(chan error, 1)

	t.mu.Lock()
	stdout, stderr := t.stdout, t.stderr
	t.mu.Unlock()

	if stdout == nil {
		errs <- errors.ErrTransportNotConnected

		close(messages)
		close(errs)

		return messages, errs
	}

	var stderrBuffer strings.Builder

	var stderrMu sync.Mutex

	go func() {
		defer close(messages)
		defer close(errs)
		defer t.log.Debug("ReadMessages goroutine stopped")

		var group errgroup.Group

		group.Go(func() error {
			return t.drainStdout(ctx, stdout, messages)
		})

		group.Go(func() error {
			t.drainStderr(stderr, &stderrBuffer, &stderrMu)

			return nil
		})

		drainErr := group.Wait()

		// Reap the process regardless of how the drains ended
		t.log.Debug("Waiting for CLI process to exit")

		waitErr := t.awaitExit()

		if drainErr != nil {
			errs <- drainErr

			return
		}

		if waitErr == nil {
			t.log.Info("CLI process exited successfully")

			return
		}

		t.mu.Lock()
		closing := t.closing
		t.mu.Unlock()

		if closing {
			t.log.Debug("CLI process terminated during shutdown")

			return
		}

		stderrMu.Lock()
		stderrOutput := stderrBuffer.String()
		stderrMu.Unlock()

		exitCode := 0

		if exitErr, ok := stderrors.AsType[*exec.ExitError](waitErr); ok {
			exitCode = exitErr.ExitCode()
		}

		t.log.Error("CLI process exited with error", "exit_code", exitCode, "stderr", stderrOutput)

		errs <- &errors.ProcessError{
			ExitCode: exitCode,
			Stderr:   stderrOutput,
			Err:      waitErr,
		}
	}()

	return messages, errs
}

// drainStdout reads raw chunks from stdout and emits every complete JSON
// value onto the messages channel. Returns nil at EOF, the reassembler's
// decode error on overflow, or the context error on cancellation.
func (t *CLITransport) drainStdout(
	ctx context.Context,
	stdout io.Reader,
	messages chan<- map[string]any,
) error {
	asm := newReassembler()
	chunk := make([]byte, readChunkSize)
	messageCount := 0

	for {
		n, readErr := stdout.Read(chunk)

		if n > 0 {
			err := asm.Feed(chunk[:n], func(msg map[string]any) error {
				messageCount++
				t.log.Debug("Received message from CLI", "message_count", messageCount)

				select {
				case messages <- msg:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			})
			if err != nil {
				return err
			}
		}

		if readErr != nil {
			if readErr == io.EOF {
				if pending := asm.Pending(); pending > 0 {
					t.log.Debug("Discarding incomplete trailing data", "bytes", pending)
				}

				return nil
			}

			t.mu.Lock()
			closing := t.closing
			t.mu.Unlock()

			if closing {
				// Pipe close during Disconnect surfaces as a read error;
				// the exit handling decides whether that matters
				t.log.Debug("Stdout read ended during shutdown", "error", readErr)
			} else {
				t.log.Warn("Stdout read failed before shutdown", "error", readErr)
			}

			return nil
		}
	}
}

// drainStderr streams stderr lines to the callback and buffers them for
// error reporting, capped at maxStderrBufferSize.
func (t *CLITransport) drainStderr(
	stderr io.Reader,
	buffer *strings.Builder,
	bufferMu *sync.Mutex,
) {
	scanner := bufio.NewScanner(stderr)
	for scanner.Scan() {
		line := scanner.Text()

		bufferMu.Lock()

		if buffer.Len() < maxStderrBufferSize {
			if buffer.Len() > 0 {
				buffer.WriteString("\n")
			}

			buffer.WriteString(line)
		}

		bufferMu.Unlock()

		if t.stderrCallback != nil {
			t.stderrCallback(line)
		}
	}

	if err := scanner.Err(); err != nil {
		t.log.Debug("Stderr scanner error", "error", err)
	}
}

// awaitExit reaps the subprocess exactly once and caches the result.
// Safe to call from multiple goroutines; later callers get the cached
// outcome after the first Wait returns.
func (t *CLITransport) awaitExit() error {
	t.waitOnce.Do(func() {
		t.waitErr = t.cmd.Wait()

		close(t.exited)
	})

	return t.waitErr
}

// Disconnect terminates the CLI subprocess and releases the handle.
//
// The process is first sent an interrupt so it can flush and exit
// cleanly. If it has not exited after the grace period it is killed.
// The handle is released unconditionally, even if signalling failed, so
// a disconnected transport never retains a reference to the process.
//
// Disconnect on a never-connected or already-disconnected transport is a
// no-op. After Disconnect the session is spent; Connect returns
// ErrSessionClosed.
func (t *CLITransport) Disconnect() error {
	t.mu.Lock()

	if t.disconnected {
		t.mu.Unlock()

		return nil
	}

	t.disconnected = true

	cmd := t.cmd
	if cmd == nil || cmd.Process == nil {
		t.mu.Unlock()

		return nil
	}

	t.closing = true
	t.mu.Unlock()

	var termErr error

	select {
	case <-t.exited:
		// Already reaped by the reading pass
	default:
		t.log.Debug("Interrupting CLI process", "pid", cmd.Process.Pid)

		if err := interruptProcess(cmd.Process); err != nil {
			t.log.Debug("Interrupt failed, process may have exited", "error", err)
		}

		// Guarantee the process is reaped even when nobody is reading
		go func() { _ = t.awaitExit() }()

		select {
		case <-t.exited:
			t.log.Debug("CLI process exited after interrupt")
		case <-time.After(disconnectGracePeriod):
			t.log.Warn("CLI process did not exit in time, killing", "pid", cmd.Process.Pid)

			if err := killProcess(cmd.Process); err != nil {
				termErr = fmt.Errorf("kill CLI process (pid %d): %w", cmd.Process.Pid, err)
			}

			<-t.exited
		}
	}

	t.mu.Lock()
	t.cmd = nil
	t.stdout = nil
	t.stderr = nil
	t.mu.Unlock()

	t.log.Info("Claude CLI subprocess disconnected")

	return termErr
}
