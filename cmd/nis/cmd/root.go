// This file is part of NIS.

package cmd

import (
	"fmt"
	"os"

	"github.com/nldk/NIS/vm"
	"github.com/spf13/cobra"
)

var traceFlag bool

var rootCmd = &cobra.Command{
	Use:   "nis",
	Short: "NIS assembler and virtual machine",
	Long:  `nis assembles NIS assembly to bytecode, runs bytecode binaries, and interprets source directly.`,
	// Errors, including a program's clean exit, are reported by exitErr.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command, translating a *vm.ExitError into the
// matching process exit code and any other error into exit code 1.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "print each executed instruction to stderr")
	if err := rootCmd.Execute(); err != nil {
		exitErr(err)
	}
}

func exitErr(err error) {
	if exit, ok := err.(*vm.ExitError); ok {
		os.Exit(exit.Code & 0xFF)
	}
	if traceFlag {
		fmt.Fprintf(os.Stderr, "nis: %+v\n", err)
	} else {
		fmt.Fprintln(os.Stderr, "nis:", err)
	}
	os.Exit(1)
}
