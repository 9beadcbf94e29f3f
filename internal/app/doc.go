// Package app wires the analyzer together and runs it once.
//
// # Initialization Flow
//
//	1. Initialize logging from the loaded configuration
//	2. Set up tracing (no-op unless a trace file is configured)
//	3. Create run metrics and the pipeline manager
//	4. Register the load, analysis and optional export steps
//
// Run executes the pipeline, writes the metrics file and flushes spans.
package app
