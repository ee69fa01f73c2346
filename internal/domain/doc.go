// Package domain contains the core domain entities and value objects for barcodegen.
//
// This package represents the innermost layer of the Clean Architecture. It has
// no dependencies on infrastructure concerns (file system, CSV, logging) and
// contains only pure business logic.
//
// # Entities
//
//   - [Barcode]: A nucleotide sequence over {A, C, G, T}
//   - [Pair]: An accepted (forward, reverse) barcode pair
//   - [Failure]: A rejected candidate together with the reason it was rejected
//   - [Result]: The accepted pairs and failures of one generation run
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Focused on business rules and invariants
//   - Testable without mocks or external systems
package domain
