// Package trace is the structured event log of the glassful toolchain.
//
// A Tracer receives begin/end pairs for spans and instant point events.
// The driver opens one span per call, one per phase and one per translated
// item; recovered internal faults are emitted as point events.
//
// Enable tracing from the CLI:
//
//	glassful translate --trace=- --trace-level=detail shader.glsl.rs
//
// Levels gate scopes:
//
//   - LevelOff: nothing
//   - LevelError: only fault points
//   - LevelPhase: driver and pass spans
//   - LevelDetail: adds per-item spans
//   - LevelDebug: everything
//
// Tracers travel through the pipeline in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	sp := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer sp.End("")
package trace
