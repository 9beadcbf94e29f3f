// Package operations runs the catalog analysis as an ordered pipeline of
// steps.
//
// Core Components:
//
// Manager: runs the registered steps one after another, each exactly once
// and inside its own trace span. The first failing step ends the run and
// the steps after it are marked skipped.
//
// Step: a single unit of work. The load step reads and cleans the catalog;
// the analysis steps read OperationState.Catalog, print a summary and write
// one chart each. An optional export step writes the summaries as tables.
//
// Registry: keeps the steps in registration order.
//
// State: OperationState tracks each step's status plus the catalog, the
// load report, the step summaries and the files written.
//
// Metrics: Prometheus collectors on a private registry, dumped to a text
// file at the end of a run.
//
// Example usage:
//
//	manager := operations.NewManager(nil, operations.NewMetrics(), tracer, logger)
//	if err := operations.RegisterPipeline(manager, &operations.StageOptions{
//		Config:   cfg,
//		Paths:    cfg.Paths(),
//		Printer:  report.NewPrinter(os.Stdout),
//		Renderer: charts.NewRenderer(logger),
//		Metrics:  manager.Metrics(),
//	}); err != nil {
//		return err
//	}
//	err := manager.Run(ctx, operations.NewOperationState(runID))
package operations
