// Package caves counts routes through an undirected cave system.
//
// Caves are named. A name written entirely in lowercase is a small cave; any
// other name is a big cave. A route starts at the start cave, ends the first
// time it reaches the end cave, never re-enters start, and may pass through
// big caves any number of times. How often small caves may be revisited is
// chosen by a Policy:
//
//	SmallOnce      every small cave at most once
//	OneSmallTwice  a single small cave twice, every other one at most once
//
// Graph is a compact version of a string-keyed adjacency graph: caves and
// tunnels only, no weights, loops or parallel tunnels. It is safe for
// concurrent use; CountPaths takes a snapshot and searches it without locks.
//
// Routes are enumerated breadth-first, one frontier entry per partial route,
// so the work grows with the number of routes rather than the number of
// caves. Two big caves joined by a tunnel would admit infinitely many routes
// and are rejected with ErrUnbounded.
package caves
