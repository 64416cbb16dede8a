// Package harness runs YAML-defined conformance scenarios against the
// full analysis pipeline.
//
// A scenario file declares a fault tree inline plus the expected
// outputs: the flat equation, the minimal cut sets, failing-row
// counts, binary scenario outcomes and failure probabilities. The
// harness executes the pipeline with both minimizer backends and
// asserts every expectation, so each scenario file is one end-to-end
// conformance check.
//
// Rendered analysis reports are additionally compared against golden
// files in testdata/golden (regenerate with `go test -update`).
package harness
