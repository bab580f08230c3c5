// Package subprocess provides the subprocess-based transport for the Claude CLI.
//
// This package implements the Transport interface by spawning the Claude CLI
// as a child process and reassembling the stream-json output on its stdout
// into discrete JSON values. It handles process lifecycle management, stream
// buffering, and error classification.
package subprocess
