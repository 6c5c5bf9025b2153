package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conduit-lang/apihelp/internal/web/helpserver"
	"github.com/conduit-lang/apihelp/internal/web/server"
)

func newServeCommand(a *app) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the help console over HTTP",
		Long: `Serve the help console over HTTP.

Routes, relative to server.prefix (default /_help):
  GET /classes                 class index
  GET /classes/{class}?q=term  report and rendered lines as JSON
  GET /classes/{class}/text    rendered lines as plain text`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srvCfg := a.cfg.Server
			if cmd.Flags().Changed("host") {
				srvCfg.Host = host
			}
			if cmd.Flags().Changed("port") {
				srvCfg.Port = port
			}

			handler := helpserver.New(a.help, srvCfg.Prefix, a.logger)
			config := server.DefaultConfig(srvCfg.Address(), handler)
			config.Logger = a.logger

			srv, err := server.New(config)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.logger.Info("serving api help",
				zap.String("address", srvCfg.Address()),
				zap.String("prefix", srvCfg.Prefix),
				zap.Int("classes", len(a.help.Classes())),
			)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Override server.host")
	cmd.Flags().IntVar(&port, "port", 0, "Override server.port")
	return cmd
}
