// Package main provides the contacts CLI.
package main

import "github.com/mesh-intelligence/contacts/internal/cli"

func main() {
	cli.Execute()
}
