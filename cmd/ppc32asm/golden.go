package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// compareGolden reports whether the bytes at path equal the golden
// fixture at goldenPath, returning a descriptive error on any mismatch
// (missing file, length mismatch, first differing byte).
func compareGolden(path, goldenPath string) error {
	got, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}
	want, err := os.ReadFile(goldenPath)
	if err != nil {
		return fmt.Errorf("reading golden %q: %w", goldenPath, err)
	}
	if bytes.Equal(got, want) {
		return nil
	}
	if len(got) != len(want) {
		return fmt.Errorf("%q is %d bytes, golden %q is %d bytes", path, len(got), goldenPath, len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			return fmt.Errorf("%q differs from golden %q at byte %d: got %#02x want %#02x", path, goldenPath, i, got[i], want[i])
		}
	}
	return nil
}

func newGoldenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "golden <file> <golden-file>",
		Short: "Byte-for-byte compare a raw binary against a golden fixture",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := compareGolden(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s matches %s\n", args[0], args[1])
			return nil
		},
	}
	return cmd
}
