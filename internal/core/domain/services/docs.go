// Package services contains stateless domain services that coordinate
// multiple aggregates, most notably the courier dispatcher.
package services
