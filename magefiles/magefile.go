//go:build mage

// Package main provides build targets for the contacts project using Mage.
//
// Usage:
//
//	mage build          Compile contacts binary to bin/
//	mage test           Run all tests
//	mage testBackends   Run the store conformance suites only
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install contacts to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "contacts"
	binaryDir  = "bin"
	cmdDir     = "./cmd/contacts"
	binGo      = "go"
	binLint    = "golangci-lint"
)

// Default target when mage runs without arguments.
var Default = Build

// Build compiles the contacts binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// TestBackends runs the conformance suite against every store backend.
func TestBackends() error {
	return sh.RunV(binGo, "test", "-run", "Conformance", "./internal/memory/...", "./internal/sqlite/...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
