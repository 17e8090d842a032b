// Package dcasim simulates dollar-cost averaging against historical monthly
// price series.
//
// A simulation invests a fixed amount every month, starting in January of a
// given year, and accumulates the units bought at each month price. The
// price series is read once, forward only, from a Source:
//   - a Cursor first positions the source on the start month,
//   - then each following observation must be dated with the next month,
//     any gap or reordering aborts the run with an *AlignmentError.
//
// The outcome is a Report with the money spent, the units held, their ending
// value and the profit. Runs share nothing, so independent simulations can be
// run concurrently on independent sources.
package dcasim
