// Package harness runs the regression matrix.
//
// A [Plan] lists the QM and MM wrappers to exercise. [Harness.Run] walks
// every (QM, MM) pair, QM outer and MM inner, and runs the catalog
// scenarios that apply to the pair in declaration order. Each scenario is
// staged, executed, extracted, compared, reported and cleaned up before the
// next one starts:
//
//	for each pair:
//	    dir := <base>/<QM prefix><MM name>
//	    for each applicable scenario:
//	        Stage -> Execute -> extract -> compare -> Record -> Clean
//
// Execution is strictly sequential. Scenarios in the same directory share
// it, and the catalog relies on that order.
//
// Failures of a single scenario (a staging copy that fails, a binary that
// cannot be started, output without the expected label) are never fatal:
// they become a Fail verdict with a "Crashed..." diagnostic and the matrix
// continues. Only cancellation of the context stops a run early.
package harness
