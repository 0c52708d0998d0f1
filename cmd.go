package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/shandysiswandi/corpuseditor/internal/app"
	"github.com/shandysiswandi/corpuseditor/internal/editor/routing"
)

const shutdownTimeout = 10 * time.Second

func defaultConfigPath() string {
	if os.Getenv("LOCAL") == "true" {
		return "./config/config.yaml"
	}
	return "/config/config.yaml"
}

func rootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "corpuseditor",
		Short:         "Serve the corpus editor",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "path to the config file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server (default)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return serve(configPath)
			},
		},
		&cobra.Command{
			Use:   "routes",
			Short: "Print the routing table",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return printRoutes(cmd.OutOrStdout(), routing.DefaultTable())
			},
		},
	)

	return root
}

func serve(configPath string) error {
	application := app.New(configPath) // Initialize the application
	wait := application.Start()        // Start the application and wait for the termination signal
	<-wait                             // Wait for the application to receive a termination signal

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return application.Stop(ctx) // Stop the application gracefully
}

func printRoutes(w io.Writer, table *routing.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "PATH\tMAIN\tSIDEBAR\tCONTROLLER")
	for _, r := range table.Routes() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Path, r.Main, r.Sidebar, r.Controller)
	}
	fmt.Fprintf(tw, "*\t-\t-\tredirect to %s\n", table.DefaultPath())

	return tw.Flush()
}
