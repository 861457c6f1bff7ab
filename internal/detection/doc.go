// Package detection implements the plate detection and digit extraction
// pipeline on top of the primitives in internal/imaging.
//
// The pipeline is a fixed chain of pure transformations over one image:
//
//	binarize -> label connected components -> geometric filter ->
//	transition filter -> validate -> score -> rank
//
// Every stage is deterministic: component labels are assigned in row-major
// scan order, candidate rejection follows a fixed criteria order, and
// confidence is a pure function of a candidate's metrics. Repeated calls over
// the same image and configuration produce identical results.
//
// # Candidate Rejection vs Errors
//
// A candidate failing a filter is an expected branch of the algorithm, not an
// error; rejected candidates are dropped (and logged in verbose mode). The
// only failure surfaced through DetectionResult (Success=false) is a
// degenerate input image. All other misuse, such as handing the component
// analyzer a zero-sized image, returns an error synchronously.
//
// # Concurrency
//
// Detector and DigitExtractor hold only their configuration and are safe for
// concurrent use across goroutines as long as the configuration is not
// mutated while in use. A detection call runs to completion with no internal
// suspension points; callers wanting timeouts must enforce them externally.
package detection
