// Package flood simulates energy spreading across a bounded grid.
//
// Every step raises each cell by one. Cells that reach the threshold fire:
// they reset to zero and raise each neighbor by one, which may push those
// neighbors over the threshold within the same step. A cell fires at most
// once per step, and a fired cell ignores further increments until the next
// step begins.
//
// Complexity:
//
//   - Step: O(W×H×d) time, O(W×H) memory (d = 4 or 8 neighbors).
//
// Errors:
//
//   - ErrNilGrid: New was given a nil grid.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrNoSync: FirstSynchronized gave up before every cell fired together.
package flood
