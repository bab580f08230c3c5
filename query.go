package claudesdk

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/parruda/claude-code-sdk-go/internal/config"
	sdkerrors "github.com/parruda/claude-code-sdk-go/internal/errors"
	"github.com/parruda/claude-code-sdk-go/internal/message"
	"github.com/parruda/claude-code-sdk-go/internal/subprocess"
)

// Query executes a one-shot query to Claude and returns an iterator of messages.
//
// By default, logging is disabled. Use WithLogger to enable logging:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
//	for msg, err := range Query(ctx, "What is 2+2?",
//	    WithLogger(logger),
//	    WithPermissionMode(PermissionModeAcceptEdits),
//	) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    // handle msg
//	}
//
// The iterator yields messages as they arrive from Claude, including assistant
// responses, tool use, and a final result message. Any errors during setup or
// execution are yielded inline with messages, allowing callers to handle all
// error conditions.
//
// Error Handling:
//
// Errors are yielded inline as the second return value. The iterator
// distinguishes between recoverable and fatal errors:
//
//   - Parse errors: If a message from Claude cannot be parsed, the error
//     is yielded and iteration continues with the next message. This allows
//     callers to log malformed messages without losing subsequent data.
//
//   - Fatal errors: CLI discovery failures, spawn failures, decode overflow,
//     non-zero process exit, and context cancellation cause iteration to stop
//     after yielding the error.
//
// Callers can always stop iteration early by breaking from the loop,
// regardless of error type. The CLI subprocess is disconnected when the
// iterator ends for any reason.
func Query(
	ctx context.Context,
	prompt string,
	opts ...Option,
) iter.Seq2[Message, error] {
	return func(yield func(Message, error) bool) {
		options := applyOptions(opts)

		log := options.Logger
		if log == nil {
			log = NopLogger()
		}

		log = log.With("component", "query")
		log.Debug("Starting query execution")

		// Create or use injected transport
		var transport config.Transport

		if options.Transport != nil {
			transport = options.Transport

			log.Debug("Using injected custom transport")
		} else {
			log.Debug("Creating CLI transport")

			cliTransport, err := subprocess.NewCLITransport(log, prompt, options)
			if err != nil {
				log.Error("Failed to create CLI transport", "error", err)
				yield(nil, err)

				return
			}

			transport = cliTransport
		}

		log.Info("Connecting transport")

		if err := transport.Connect(ctx); err != nil {
			log.Error("Failed to connect to CLI", "error", err)
			yield(nil, err)

			return
		}

		defer func() {
			if err := transport.Disconnect(); err != nil {
				log.Warn("Transport disconnect failed", "error", err)
			}
		}()

		log.Info("Successfully connected to Claude CLI")

		rawMessages, errs := transport.ReadMessages(ctx)

		for {
			select {
			case msg, ok := <-rawMessages:
				if !ok {
					// Stream ended; surface any terminal error
					log.Debug("Raw message channel closed")

					for err := range errs {
						log.Error("Error from transport", "error", err)

						if !yield(nil, err) {
							return
						}
					}

					return
				}

				parsed, err := message.Parse(log, msg)
				if errors.Is(err, sdkerrors.ErrUnknownMessageType) {
					continue
				}

				if err != nil {
					log.Warn("Failed to parse message", "error", err)

					if !yield(nil, fmt.Errorf("parse message: %w", err)) {
						return
					}

					continue
				}

				if !yield(parsed, nil) {
					log.Debug("Yield returned false, stopping iteration")

					return
				}

			case <-ctx.Done():
				log.Debug("Context cancelled")
				yield(nil, ctx.Err())

				return
			}
		}
	}
}
