// Package courier contains the Courier aggregate and the Assignment record
// produced by the dispatcher when a courier is matched to an order.
package courier
