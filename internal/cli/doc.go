// Package cli provides CLI discovery, version validation, and command building
// for the Claude Code CLI binary.
//
// # CLI Discovery
//
// The Discoverer interface locates the Claude CLI binary:
//
//	discoverer := cli.NewDiscoverer(&cli.Config{
//	    CliPath: "",           // Optional explicit path
//	    Logger:  slog.Default(),
//	})
//	cliPath, err := discoverer.Discover(ctx)
//
// Discovery searches in the following order:
//  1. Explicit path in Config.CliPath (if provided)
//  2. System PATH (platform executable extensions included)
//  3. Common installation directories (npm global, /usr/local/bin, ~/.local/bin, yarn)
//
// When nothing is found, the returned CLINotFoundError explains how to
// install Claude Code, distinguishing a missing Node.js runtime from a
// missing CLI.
//
// # Version Validation
//
// During discovery, the CLI version is probed and compared against
// MinimumVersion. The probe is advisory: a warning is logged when the
// version is too old, and probe failures are ignored. It can be skipped via
// Config.SkipVersionCheck or the CLAUDE_CODE_SDK_SKIP_VERSION_CHECK
// environment variable.
//
// # Command Building
//
// The package provides pure functions to build the CLI argument vector and
// environment:
//
//	args := cli.BuildArgs("prompt", options)
//	env := cli.BuildEnvironment(options)
package cli
