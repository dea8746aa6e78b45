// Command nereval-gen generates .task1 response files from standard
// markup. The output scores a full match against its own standard, which
// makes it useful for smoke-testing the evaluator and as a formatting
// reference for response producers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/entext/go-nereval/internal/evalrun"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type genCommand struct {
	stdDir   string
	outDir   string
	noLocorg bool
}

func newRootCommand() *cobra.Command {
	c := &genCommand{}

	cmd := &cobra.Command{
		Use:           "nereval-gen",
		Short:         "Generate response files from standard markup",
		RunE:          c.run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&c.stdDir, "std", "s", "", "Standard markup directory")
	cmd.Flags().StringVarP(&c.outDir, "out", "o", "", "Output directory for .task1 files")
	cmd.Flags().BoolVarP(&c.noLocorg, "no-locorg", "l", false, "Emit locorg mentions as locations")
	_ = cmd.MarkFlagRequired("std")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func (c *genCommand) run(_ *cobra.Command, _ []string) error {
	return evalrun.GenerateResponses(c.stdDir, c.outDir, !c.noLocorg)
}
