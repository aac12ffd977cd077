// cmd_serve.go - Server-Start
// Hauptfunktionen: RunServer
package cmd

import (
	"errors"
	"net"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/etagger/etagger/envconfig"
	"github.com/etagger/etagger/server"
)

// RunServer - Laedt das Modell und startet den etagger-Server
func RunServer(cmd *cobra.Command, _ []string) error {
	session, err := openSession(cmd)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", envconfig.Host().Host)
	if err != nil {
		return err
	}

	err = server.Serve(ln, session)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
