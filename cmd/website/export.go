package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/pages"
	"github.com/cosmic-community/intellect-mental-health-platform/internal/server"
	"github.com/cosmic-community/intellect-mental-health-platform/pkg/apperror"
	"github.com/cosmic-community/intellect-mental-health-platform/pkg/logger"
)

func newExportCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render every page to static files",
		Long: `Fetches content once and writes the site for static hosting:

  index.html         the homepage
  about/index.html   the about page, when the about-us page exists
  404.html           the not-found page
  static/            stylesheet and other assets`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				renderer *pages.Renderer
				log      *slog.Logger
			)
			app := fx.New(
				fx.WithLogger(func() fxevent.Logger { return fxevent.NopLogger }),
				contentModules,
				fx.Populate(&renderer, &log),
			)
			if err := app.Start(cmd.Context()); err != nil {
				return err
			}
			defer func() {
				if err := app.Stop(context.Background()); err != nil {
					log.Warn("shutdown failed", logger.Error(err))
				}
			}()

			static, err := server.Static()
			if err != nil {
				return err
			}
			return exportSite(cmd.Context(), renderer, static, outDir, log)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "output directory")
	return cmd
}

// siteRenderer is the part of pages.Renderer the export needs.
type siteRenderer interface {
	Home(ctx context.Context) ([]byte, error)
	About(ctx context.Context) ([]byte, error)
	NotFound() []byte
}

// exportSite writes the rendered pages and static assets under outDir. Any
// content failure aborts the export; an absent about page does not.
func exportSite(ctx context.Context, r siteRenderer, static fs.FS, outDir string, log *slog.Logger) error {
	log = log.With(logger.Scope("export"))

	home, err := r.Home(ctx)
	if err != nil {
		return fmt.Errorf("render home: %w", err)
	}
	if err := writeFile(outDir, "index.html", home); err != nil {
		return err
	}

	about, err := r.About(ctx)
	switch {
	case apperror.IsNotFound(err):
		log.Warn("about page absent, skipping", slog.String("slug", pages.AboutSlug))
	case err != nil:
		return fmt.Errorf("render about: %w", err)
	default:
		if err := writeFile(outDir, filepath.Join("about", "index.html"), about); err != nil {
			return err
		}
	}

	if err := writeFile(outDir, "404.html", r.NotFound()); err != nil {
		return err
	}

	if err := copyStatic(static, filepath.Join(outDir, "static")); err != nil {
		return fmt.Errorf("copy static assets: %w", err)
	}

	log.Info("site exported", slog.String("out", outDir))
	return nil
}

func writeFile(outDir, name string, body []byte) error {
	path := filepath.Join(outDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, body, 0o644)
}

func copyStatic(static fs.FS, dest string) error {
	return fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		body, err := fs.ReadFile(static, path)
		if err != nil {
			return err
		}
		return writeFile(dest, path, body)
	})
}
