// Package jobs contains the scheduled background work of the application.
//
// The assignment sweep periodically re-runs courier dispatch over pending
// orders that have no courier yet, picking up orders whose checkout found no
// courier in range and couriers registered after the order was placed.
package jobs
