package claudesdk

import "github.com/parruda/claude-code-sdk-go/internal/config"

// Transport defines the interface for Claude CLI communication.
//
// Implementations manage the connection lifecycle and deliver raw JSON
// messages from the CLI. The default implementation spawns the CLI as a
// subprocess; a custom transport can be injected with WithTransport, for
// example to test against a fake CLI.
//
// A transport is a single-use session: once disconnected it cannot be
// connected again.
type Transport = config.Transport
