package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/voice-variants/internal/rewriting"
)

func newPromptCmd(c *cli) *cobra.Command {
	var (
		flags      contextFlags
		showSystem bool
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the composed prompt without calling the generation service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			prompt, err := c.generator().Prompt(flags.promptContext())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if showSystem {
				_, _ = fmt.Fprintf(out, "=== SYSTEM ===\n%s\n\n=== USER ===\n", rewriting.SystemPrompt())
			}
			_, _ = fmt.Fprintln(out, prompt)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&showSystem, "system", false, "Also print the system role statement")
	return cmd
}
