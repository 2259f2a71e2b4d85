package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/version"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "website",
		Short: "Intellect marketing site",
		Long: `Renders the Intellect mental health marketing site from the Cosmic
content bucket named by COSMIC_BUCKET_SLUG.

Run "website serve" for the HTTP server or "website export" to write the
pages as static files.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCommand(),
		newExportCommand(),
		newVersionCommand(),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			info := version.Get()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Intellect website\n")
			fmt.Fprintf(out, "  Version:    %s\n", info.Version)
			fmt.Fprintf(out, "  Commit:     %s\n", info.GitCommit)
			fmt.Fprintf(out, "  Built:      %s\n", info.BuildTime)
			fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
		},
	}
}
