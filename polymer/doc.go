// Package polymer counts symbols produced by repeated pair insertion.
//
// A rule maps an ordered pair of adjacent symbols to the symbol inserted
// between them. One step applies every rule at once to the whole sequence, so
// the sequence roughly doubles per step and cannot be materialized for large
// step counts. Instead, each adjacent pair is expanded on its own:
//
//	expand(ab, n) = {m: 1} + expand(am, n-1) + expand(mb, n-1)    where m = rules[ab]
//	expand(ab, 0) = {}
//
// Results are memoized on (pair, remaining steps). The number of distinct keys
// is bounded by pairs × steps, so a 40-step expansion over a 10-symbol alphabet
// needs at most 4000 entries.
//
// Each Counter owns the Cache for one rule set. Spread builds a fresh Counter
// per call, so answers for different rule sets never share entries.
//
// Errors:
//
//   - ErrBadRule:     a rule line is not of the form "AB -> C".
//   - ErrMissingRule: an expansion reached a pair with no rule.
//   - ErrEmpty:       the template is empty.
package polymer
