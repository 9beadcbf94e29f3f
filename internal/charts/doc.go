// Package charts renders the analyzer's charts with gonum/plot.
//
// Every chart is drawn on a white background with a grid, a title and axis
// captions, and saved at a fixed size in inches. Bar charts colour each bar
// from a sampled palette; histograms take pre-binned counts from
// analytics.Distribution so the bins on screen match the bins computed.
// Empty inputs produce a chart with titled, empty axes rather than an error.
package charts
