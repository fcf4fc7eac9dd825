// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - OrgConnection: Queries the org metadata catalog and knows its base URL
//   - ConnectionFactory: Builds an OrgConnection from a configured Org
//   - Browser: Opens a URL with the operating system handler
//   - ConfigStore: Application configuration (org entries, defaults)
//   - OrgStore: Named org entries kept in the ConfigStore
//   - Authorizer: Interactive browser authorization for a new org
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
