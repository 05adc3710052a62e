// This file is part of NIS.

package cmd

import (
	"os"

	"github.com/nldk/NIS/asm"
	"github.com/nldk/NIS/bytecode"
	"github.com/spf13/cobra"
)

var assembleOutput string

var assembleCmd = &cobra.Command{
	Use:   "assemble <source.nis>",
	Short: "Assemble source into a bytecode binary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		instrs, err := asm.New().AssembleFile(args[0])
		if err != nil {
			return err
		}
		f, err := os.Create(assembleOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		return bytecode.Encode(f, instrs)
	},
}

func init() {
	assembleCmd.Flags().StringVarP(&assembleOutput, "output", "o", "file.bin", "output binary path")
	rootCmd.AddCommand(assembleCmd)
}
