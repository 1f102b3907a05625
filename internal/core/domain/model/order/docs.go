// Package order contains the Order aggregate and its lifecycle state
// machine. The Status value object owns the transition table; the Actor
// value object carries the caller's capabilities so that role checks happen
// exactly once per operation instead of being re-derived at call sites.
package order
