// Package kernel provides core domain primitives shared across the marketplace
// domain model. It implements fundamental building blocks following
// Domain-Driven Design principles.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Coordinate: A value object for geographic positions with great-circle distance computation
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
