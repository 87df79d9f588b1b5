//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var Default = Test

// Generate rewrites reactive/on_gen.go.
func Generate() error {
	fmt.Println("Generating...")
	return sh.RunV("go", "run", "./cmd/codegen")
}

// Build compiles and vets every package.
func Build() error {
	mg.Deps(Generate)
	fmt.Println("Building...")
	if err := sh.RunV("go", "build", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "vet", "./...")
}

// Test runs all unit tests with the race detector.
func Test() error {
	fmt.Println("Running tests...")
	return sh.RunV("go", "test", "-race", "./...")
}

// Bench runs the propagation benchmark and prints a markdown table.
func Bench() error {
	return sh.RunV("go", "run", "./cmd/signalscope", "bench", "--format", "markdown")
}

func Fmt() error {
	return sh.RunV("go", "fmt", "./...")
}

func Tidy() error {
	return sh.RunV("go", "mod", "tidy")
}

// All formats, tidies, builds and tests.
func All() {
	mg.SerialDeps(Fmt, Tidy, Build, Test)
}
