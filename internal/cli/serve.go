package cli

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vk/gridcalc/internal/app"
	"github.com/vk/gridcalc/internal/notify"
)

func newServeCommand(g *globalFlags, stderr io.Writer) *cobra.Command {
	var (
		port      int
		rateLimit float64
		rateBurst int
		notifyURL string
		notifyNS  string
		notifyEv  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP evaluation API",
		Long: `Run the HTTP API until interrupted.

  POST /api/evaluate   evaluate a {rows, columns, data} table
  GET  /health         liveness probe

With --notify-url, every evaluated table is also emitted to a socket.io
endpoint.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.NewConfig(app.Config{
				LogLevel:        g.logLevel,
				LogFormat:       g.logFormat,
				Port:            port,
				RateLimit:       rateLimit,
				RateBurst:       rateBurst,
				NotifyURL:       notifyURL,
				NotifyNamespace: notifyNS,
				NotifyEvent:     notifyEv,
			})
			if err != nil {
				return usageError(err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a := app.NewApp(io.Discard, stderr, cfg)
			if err := a.Serve(ctx); err != nil {
				return runtimeError(err)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Port for the HTTP server.")
	cmd.Flags().Float64Var(&rateLimit, "rate-limit", 0, "Maximum evaluation requests per second. 0 is unlimited.")
	cmd.Flags().IntVar(&rateBurst, "rate-burst", 0, "Burst size for --rate-limit. Defaults to 1.")
	cmd.Flags().StringVar(&notifyURL, "notify-url", "", "socket.io endpoint evaluated tables are pushed to, e.g. http://localhost:3000/socket.io/.")
	cmd.Flags().StringVar(&notifyNS, "notify-namespace", "/", "socket.io namespace for --notify-url.")
	cmd.Flags().StringVar(&notifyEv, "notify-event", notify.DefaultEvent, "Event name evaluated tables are emitted on.")
	return cmd
}
