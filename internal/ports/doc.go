// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// application needs from external systems without specifying how those needs
// are fulfilled.
//
// # Port Interfaces
//
//   - [BarcodeSource]: Supplies the next candidate barcode for an attempt
//   - [Checker]: Accepts or rejects a candidate against the pairs accepted so far
//   - [ResultWriter]: Renders a generation result into an output format
//   - [ManifestStore]: Persists the summary of a run
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement these interfaces
// with concrete implementations (CSV, FASTA, JSON files, etc.).
package ports
