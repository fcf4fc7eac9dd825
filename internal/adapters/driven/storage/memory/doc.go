// Package memory provides in-memory implementations of the driven ports.
// They back unit tests and never touch the network or the filesystem.
package memory
