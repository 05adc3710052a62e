// This file is part of NIS.

package cmd

import (
	"os"

	"github.com/nldk/NIS/bytecode"
	"github.com/nldk/NIS/vm"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <binary.bin>",
	Short: "Decode a bytecode binary and run it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		instrs, err := bytecode.Decode(f)
		f.Close()
		if err != nil {
			return err
		}
		return runInstance(instrs)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runInstance(instrs []bytecode.Instruction) error {
	var opts []vm.Option
	if traceFlag {
		opts = append(opts, vm.WithTrace(os.Stderr))
	}
	i, err := vm.New(opts...)
	if err != nil {
		return err
	}
	if err := i.Run(instrs); err != nil {
		return err
	}
	return i.OutputError()
}
