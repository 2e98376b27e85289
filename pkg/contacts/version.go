// Package contacts holds build metadata for the contacts program.
package contacts

// Version is the released version of the contacts program.
const Version = "0.1.0"
