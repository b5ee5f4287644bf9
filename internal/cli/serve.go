package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	server "hotel_console/internal/adapters/http_server"
	"hotel_console/internal/adapters/notify"
	"hotel_console/internal/adapters/observability"
)

func newServeCmd(rt *runtime) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the console over local HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = rt.cfg.HTTPAddr
			}

			c, done, err := rt.openConsole(ctx, notify.Log{})
			if err != nil {
				return err
			}
			defer done()

			srv := server.New(rt.cfg.BackendTimeout + 5*time.Second)
			reg := observability.InitRegistry()
			srv.Mount("/metrics", observability.MetricsHandler(reg))
			srv.MountHandlers(&server.Handlers{C: c})

			httpSrv := &http.Server{Addr: addr, Handler: srv.Mux(), ReadHeaderTimeout: 10 * time.Second}
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := httpSrv.Shutdown(shutdownCtx); err != nil {
					log.Error().Err(err).Msg("http shutdown failed")
				}
			}()

			log.Info().Str("addr", addr).Str("session", string(c.Session.State())).Msg("console listening")
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			log.Info().Msg("console stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default HTTP_ADDR)")
	return cmd
}
