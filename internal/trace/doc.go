// Package trace provides low-overhead span tracing for the analysis
// pipeline. Spans nest via parent IDs; events flow into a stream writer, an
// in-memory ring, or both. A disabled tracer costs one branch per call.
package trace
