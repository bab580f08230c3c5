// Package config provides configuration types for the Claude SDK.
package config

import "context"

// Transport defines the interface for Claude CLI communication.
// Implement this to provide custom transports for testing, mocking,
// or alternative communication methods (e.g., remote connections).
//
// The default implementation is CLITransport which spawns a subprocess.
// Custom transports can be injected via Options.Transport.
//
// A transport owns exactly one session: Connect it once, drain it once,
// Disconnect it once. It is not reusable after Disconnect.
type Transport interface {
	// Connect spawns the underlying process and prepares the streams.
	// Calling Connect on an already-connected transport is a no-op.
	Connect(ctx context.Context) error

	// ReadMessages returns channels for receiving messages and errors.
	// The message channel yields parsed JSON objects from the CLI as they
	// complete, and closes when the stream and the process both finish.
	// The error channel carries at most one fatal error (decode overflow,
	// non-zero exit, cancellation) and closes with the message channel.
	ReadMessages(ctx context.Context) (<-chan map[string]any, <-chan error)

	// Disconnect terminates the transport and releases resources.
	// It is best-effort and safe to call at any time, including before
	// Connect and multiple times.
	Disconnect() error

	// Connected reports whether the underlying process is alive.
	Connected() bool
}
