// Package report renders the harness's console output and keeps the
// pass/fail tally.
//
// A [Reporter] is created once per invocation and passed through the whole
// scenario matrix. Each [Reporter.Record] call assigns one verdict, prints
// one aligned line and updates the counters; [Reporter.Summary] prints the
// totals and the elapsed wall time.
package report
