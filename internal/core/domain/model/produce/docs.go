// Package produce contains the Produce aggregate: a farmer's listing with the
// authoritative stock ledger. Stock reservations happen through Reserve inside
// the order-creation transaction so the counter can never go negative.
package produce
