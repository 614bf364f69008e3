// Package trace records what the compiler is doing: driver phases, files and,
// at the most verbose level, individual declarations while they are parsed.
//
// Enable it from the command line:
//
//	rlc check --trace=- --trace-level=file main.rl
//
// Implementations:
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: writes text or NDJSON lines immediately
//   - RingTracer: keeps the last N events, dumped when compilation fails
//
// Tracers travel through the pipeline in a context:
//
//	ctx = trace.WithTracer(ctx, t)
//	sp := trace.Begin(trace.FromContext(ctx), trace.ScopePhase, "parse", 0)
//	defer sp.End("")
package trace
