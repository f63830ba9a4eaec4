package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAssembleCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "assemble",
		Short: "Assemble the built-in demo program and write it as a raw binary",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("assemble failed: %v", r)
				}
			}()

			a, err := resolvedAssembler()
			if err != nil {
				return err
			}
			buildDemoProgram(a)

			if outPath == "" {
				return fmt.Errorf("--out is required")
			}
			if err := a.Dump(outPath); err != nil {
				return fmt.Errorf("writing %q: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", a.Used(), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "output path for the raw binary")
	return cmd
}
