// Package claudesdk provides a Go SDK for interacting with the Claude Code CLI.
//
// This SDK enables Go applications to run one-shot Claude Code queries by
// spawning the official CLI tool as a subprocess and streaming its JSON
// output back as typed messages.
//
// # Basic Usage
//
// Use the Query function for one-shot queries:
//
//	ctx := context.Background()
//	for msg, err := range claudesdk.Query(ctx, "What is 2+2?",
//	    claudesdk.WithMaxTurns(1),
//	) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    switch m := msg.(type) {
//	    case *claudesdk.AssistantMessage:
//	        for _, block := range m.Content {
//	            if text, ok := block.(*claudesdk.TextBlock); ok {
//	                fmt.Println(text.Text)
//	            }
//	        }
//	    case *claudesdk.ResultMessage:
//	        fmt.Printf("Completed in %dms\n", m.DurationMs)
//	    }
//	}
//
// # Logging
//
// By default the SDK is silent. For detailed operation tracking, use WithLogger:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	for msg, err := range claudesdk.Query(ctx, "Hello Claude",
//	    claudesdk.WithLogger(logger),
//	) {
//	    // ...
//	}
//
// # Error Handling
//
// The SDK provides typed errors for different failure scenarios:
//
//	for msg, err := range claudesdk.Query(ctx, prompt) {
//	    if err != nil {
//	        if cliErr, ok := errors.AsType[*claudesdk.CLINotFoundError](err); ok {
//	            log.Fatalf("Claude Code not installed, searched: %v", cliErr.SearchedPaths)
//	        }
//	        if procErr, ok := errors.AsType[*claudesdk.ProcessError](err); ok {
//	            log.Fatalf("CLI process failed with exit code %d: %s", procErr.ExitCode, procErr.Stderr)
//	        }
//	        log.Fatal(err)
//	    }
//	    // ...
//	}
//
// # Requirements
//
// This SDK requires the Claude Code CLI to be installed and available in your
// system PATH. You can specify a custom CLI path using the WithCliPath option.
package claudesdk
