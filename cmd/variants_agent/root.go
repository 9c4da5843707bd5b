package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jonathan/voice-variants/internal/config"
	"github.com/jonathan/voice-variants/internal/guidelines"
	"github.com/jonathan/voice-variants/internal/llm"
	"github.com/jonathan/voice-variants/internal/rewriting"
)

// cli carries the state shared by every subcommand
type cli struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
	store  *guidelines.Store

	newClient   llm.Factory
	buildLogger func(verbose bool) (*zap.Logger, error)
}

func newCLI() *cli {
	return &cli{
		newClient:   llm.NewClient,
		buildLogger: productionLogger,
	}
}

// productionLogger builds a JSON logger at info level, or debug when verbose
func productionLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "variants_agent",
		Short: "Voice and tone text variant generator",
		Long: "Rewrites a piece of UI text into style-guide compliant variants. " +
			"Relevant voice principles, the audience tone pattern and intent rules are selected from the " +
			"guideline catalog and sent to a generation service.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return c.setup()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "Path to YAML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newServeCmd(c), newGenerateCmd(c), newPromptCmd(c))
	return root
}

// setup loads configuration, the logger and the guideline catalog
func (c *cli) setup() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	c.logger, err = c.buildLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	c.store, err = guidelines.Load()
	if err != nil {
		return fmt.Errorf("failed to load guideline catalog: %w", err)
	}
	return nil
}

// generator wires the configured provider into a Generator
func (c *cli) generator() *rewriting.Generator {
	return rewriting.NewGenerator(c.store, rewriting.Options{
		Count:     c.cfg.VariantCount,
		Timeout:   c.cfg.RequestTimeout,
		LLM:       c.cfg.LLMConfig(),
		NewClient: c.newClient,
		Logger:    c.logger,
	})
}

// contextFlags holds the request fields shared by generate and prompt
type contextFlags struct {
	text         string
	intent       string
	audience     string
	instructions string
}

func (f *contextFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.text, "text", "t", "", "Original UI text to rewrite (required)")
	cmd.Flags().StringVarP(&f.intent, "intent", "i", "", "Intent: cta, tooltip, label, helper, dialog-title, error, success, placeholder")
	cmd.Flags().StringVarP(&f.audience, "audience", "a", "", "Audience: general, end-user, it-admins (default general)")
	cmd.Flags().StringVar(&f.instructions, "instructions", "", "Extra instructions for the writer")

	if err := cmd.MarkFlagRequired("text"); err != nil {
		panic(fmt.Sprintf("failed to mark text flag as required: %v", err))
	}
}

func (f *contextFlags) promptContext() rewriting.PromptContext {
	return rewriting.PromptContext{
		OriginalText: f.text,
		Intent:       f.intent,
		Audience:     f.audience,
		Instructions: f.instructions,
	}
}
