// Package trace records what a parse run spent its time on.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	fsd check --trace=- --trace-level=phase api/
//
// # Architecture
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr)
//   - RingTracer: circular buffer, dumped when a run fails
//   - MultiTracer: combines multiple tracers
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: command spans only
//   - LevelPhase: driver and pass boundaries
//   - LevelDetail: per-file events
//   - LevelDebug: per-file events and points such as cache hits
//
// # Scopes
//
//   - ScopeDriver: one CLI command
//   - ScopePass: extract, grammar, validate
//   - ScopeModule: one definition file
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	ctx, span := trace.Enter(ctx, trace.ScopeModule, path)
//	defer span.End("")
//
// A command that fails with --trace-mode=ring writes the recorded events to
// the --trace output; with --trace-mode=both the tail is repeated on stderr.
package trace
