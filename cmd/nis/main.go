// This file is part of NIS.

// Command nis is the NIS toolchain: assemble source to bytecode, run a
// bytecode binary, or interpret source directly without writing one.
package main

import "github.com/nldk/NIS/cmd/nis/cmd"

func main() {
	cmd.Execute()
}
