/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: serve.go
Description: API server command. Serves the guessing API until interrupted.
*/

package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/kleascm/guesstimate/pkg/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunServe starts the HTTP API and blocks until SIGINT or SIGTERM
func RunServe(cmd *cobra.Command, args []string) error {
	eng, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	srv := server.NewServer(server.Config{
		Addr:         viper.GetString("server.addr"),
		ReadTimeout:  viper.GetDuration("server.read_timeout"),
		WriteTimeout: viper.GetDuration("server.write_timeout"),
	}, eng, logger.GetLogger())

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
