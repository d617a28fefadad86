package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerbook/internal/httpapi"
	"github.com/cleared-dev/ledgerbook/internal/httpapi/handler"
)

func newServeCommand(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the ledger and its reports as a JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openBook(cmd, opts)
			if err != nil {
				return err
			}
			sc := env.cfg.Server
			if addr != "" {
				sc.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			router := httpapi.NewRouter(httpapi.Config{
				Context:        ctx,
				Logger:         env.log,
				AllowedOrigins: sc.AllowedOrigins,
				RateLimit:      sc.RateLimit,
				RateBurst:      sc.RateBurst,
				TrustProxy:     sc.TrustProxy,
				LedgerHandler:  handler.NewLedgerHandler(env.book),
			})
			srv := httpapi.NewServer(httpapi.ServerConfig{
				Addr:            sc.Addr,
				ReadTimeout:     sc.ReadTimeout,
				WriteTimeout:    sc.WriteTimeout,
				ShutdownTimeout: sc.ShutdownTimeout,
			}, router, env.log)

			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}
