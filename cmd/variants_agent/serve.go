package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/voice-variants/internal/server"
)

func newServeCmd(c *cli) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  `Start an HTTP server exposing POST /api/generate-variants, GET /api/guidelines and GET /health.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				c.cfg.Port = port
			}

			srv, err := c.newServer()
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}
			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on (overrides config file and PORT)")
	return cmd
}

// newServer builds the HTTP server from the loaded configuration
func (c *cli) newServer() (*server.Server, error) {
	if c.cfg.APIKey == "" {
		c.logger.Warn("generation service credential is not set; generate requests will fail",
			zap.String("env", c.cfg.APIKeyEnv()))
	}

	return server.New(server.Config{
		Port:      c.cfg.Port,
		APIKey:    c.cfg.APIKey,
		Generator: c.generator(),
		Store:     c.store,
		Logger:    c.logger,
	})
}
