package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/cache"
	"github.com/cosmic-community/intellect-mental-health-platform/internal/config"
	"github.com/cosmic-community/intellect-mental-health-platform/internal/content"
	"github.com/cosmic-community/intellect-mental-health-platform/internal/cosmic"
	"github.com/cosmic-community/intellect-mental-health-platform/internal/handlers"
	"github.com/cosmic-community/intellect-mental-health-platform/internal/pages"
	"github.com/cosmic-community/intellect-mental-health-platform/internal/server"
	"github.com/cosmic-community/intellect-mental-health-platform/pkg/logger"
	"github.com/cosmic-community/intellect-mental-health-platform/pkg/tracing"
)

// contentModules assemble everything needed to render pages.
var contentModules = fx.Options(
	logger.Module,
	config.Module,
	tracing.Module,
	cosmic.Module,
	content.Module,
	pages.Module,
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			app := fx.New(
				fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
					return &fxevent.SlogLogger{Logger: log}
				}),
				contentModules,
				cache.Module,
				server.Module,
				handlers.Module,
			)
			if err := app.Err(); err != nil {
				return err
			}

			app.Run()
			return nil
		},
	}
}
