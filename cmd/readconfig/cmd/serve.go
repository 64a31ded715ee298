package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/listenupapp/readconfig/internal/di/providers"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the preferences HTTP API",
	Long: `Run the HTTP API used by the reader UI shell. The file theme source is
watched for changes while the server runs.

Examples:
  readconfig serve
  readconfig serve --port 9000 --theme-source file --theme-file ~/.config/reader/theme`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&flags.Port, "port", "", "Server port (default: 8787)")
	f.StringVar(&flags.ReadTimeout, "read-timeout", "", "HTTP read timeout (default: 15s)")
	f.StringVar(&flags.WriteTimeout, "write-timeout", "", "HTTP write timeout (default: 15s)")
	f.StringVar(&flags.IdleTimeout, "idle-timeout", "", "HTTP idle timeout (default: 60s)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	server, err := do.Invoke[*providers.HTTPServerHandle](injector)
	if err != nil {
		return err
	}
	themeHandle := do.MustInvoke[*providers.ThemeHandle](injector)

	// Wait for shutdown signal
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return server.Run(ctx) })
	g.Go(func() error { return themeHandle.Run(ctx) })

	err = g.Wait()
	log.Info("Shutting down gracefully...")
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
