// Package instance reads, writes and generates knapsack instances in the
// line-oriented text format used by the knapsack command.
//
// Problem line (one instance per line, whitespace separated):
//
//	id size capacity [threshold] weight₁ cost₁ … weightₙ costₙ
//
// A negative id announces the threshold of a decision instance; the sign is
// stripped. Zero ids are rejected with ErrZeroID.
//
// Solution line:
//
//	id size cost bit₁ … bitₙ
//
// where each bit is 0 or 1. A solution without selection is written without
// bits and is not accepted back by ParseSolution.
//
// Errors:
//
//   - ErrZeroID, ErrMalformedLine - syntax of a single line.
//   - ErrDuplicateID - two reference solutions for the same id.
//   - ErrInvalidOptions - GenerateOptions out of range.
//   - model.Validate errors - a well-formed line describing an invalid instance.
//
// Loader errors carry the source name and line number.
package instance
