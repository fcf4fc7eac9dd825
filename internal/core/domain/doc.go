// Package domain defines the core entities for orgopen.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ParsedPath: A classified metadata source path
//   - MetadataType: The closed set of supported metadata kinds
//   - CatalogRecord: The subset of an org catalog row a resolver needs
//   - Org: A configured org connection entry
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
