// This file is part of NIS.

package cmd

import (
	"github.com/nldk/NIS/asm"
	"github.com/spf13/cobra"
)

var interpretCmd = &cobra.Command{
	Use:   "interpret <source.nis>",
	Short: "Assemble and run source in memory, without writing a binary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		instrs, err := asm.New().AssembleFile(args[0])
		if err != nil {
			return err
		}
		return runInstance(instrs)
	},
}

func init() {
	rootCmd.AddCommand(interpretCmd)
}
