// Package types defines the Store interface, the Component variant type,
// configuration, and standard error types for the contacts program.
package types
