// Package services implements the driving port interfaces.
// Services contain the core resolution logic and orchestrate
// calls to driven ports (adapters).
//
// Beyond golang.org/x/sync they only depend on domain, the port
// interfaces and the logger.
package services
