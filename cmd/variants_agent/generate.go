package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/voice-variants/internal/observability"
	"github.com/jonathan/voice-variants/internal/rewriting"
)

func newGenerateCmd(c *cli) *cobra.Command {
	var (
		flags      contextFlags
		jsonOutput bool
		apiKey     string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate text variants once and print them",
		Long:  "Sends one generation request using the configured provider and prints the variants.",
		Example: `  variants_agent generate --text "Click here to upgrade" --intent cta --audience end-user
  variants_agent generate -t "Hello {name}" -i helper --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pc := flags.promptContext()
			if apiKey == "" {
				apiKey = c.cfg.APIKey
			}

			printer := observability.NewPrinter(cmd.OutOrStdout())
			if !jsonOutput {
				printer.PrintRequest(pc)
				if c.cfg.Verbose {
					printer.PrintGuidelines(c.store, pc)
				}
			}

			result, err := c.generator().GenerateVariants(cmd.Context(), pc, apiKey)
			if err != nil {
				return fmt.Errorf("failed to generate variants: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			printer.PrintVariants(result)
			printer.PrintPlaceholderCheck(rewriting.MissingPlaceholders(pc.OriginalText, result.Variants))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the raw result as JSON")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Generation service API key (overrides OPENAI_API_KEY / GEMINI_API_KEY)")
	return cmd
}
