// SPDX-License-Identifier: MIT

// Package main provides fockctl, a command-line front end to the fock
// package: parse, enumerate, compose, slice and separate Fock states.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
