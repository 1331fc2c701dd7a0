// Package order contains the Order aggregate: immutable item snapshots, the
// lifecycle status enum, and the coordinates consumed by the assignment engine.
package order
