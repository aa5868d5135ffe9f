// Command kig is the command-line entry point for the kigcore
// dependency-graph kernel.
package main

import "github.com/gokig/kigcore/cmd/kig/cmd"

func main() {
	cmd.Execute()
}
