// package tasks implements the report extraction pipeline.
//
// The core abstraction is ReportEngine, which orchestrates rendering a source
// document into text lines, extracting works and right holders from them, and
// optionally persisting the result. Operations emit progress updates via
// channels for non-blocking status reporting to CLI/UI layers.
package tasks
