// Package main - Entry point for the which-portal HTTP server
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"which-portal/api"
	"which-portal/core/catalog"
	"which-portal/core/engine"
	"which-portal/internal/config"
	"which-portal/internal/errors"
	"which-portal/internal/logging"
)

const version = "0.1.0"

func main() {
	var cfgFile, envFile, addr string

	root := &cobra.Command{
		Use:           "which-portal-server",
		Short:         "Serve the which-portal route planner over HTTP",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(cfgFile, envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if err := logging.Initialize(cfg.Logging); err != nil {
				return err
			}
			defer logging.Sync()
			gin.SetMode(cfg.Server.Mode)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := api.NewServer(version, engine.New(catalog.Default(), logging.Logger), logging.Logger)
			logging.Info("which-portal server listening",
				zap.String("addr", cfg.Server.Addr),
				zap.String("version", version),
			)
			return server.Run(ctx, cfg.Server.Addr)
		},
	}

	root.Flags().StringVar(&cfgFile, "config", "", "config file (.hcl or .json)")
	root.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file with WHICH_PORTAL_* settings")
	root.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.ExitCode(err))
	}
}
