// Package main is the entry point for the mutcount CLI.
package main

import "tp53.dev/pkg/mutcount/cmd"

func main() {
	cmd.Execute()
}
