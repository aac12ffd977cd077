// cmd_utils.go - Hilfsfunktionen fuer Commands
// Hauptfunktionen: modelDir, openSession, checkServerHeartbeat
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/etagger/etagger/api"
	"github.com/etagger/etagger/envconfig"
	"github.com/etagger/etagger/tagger"
)

// modelDir - Liest --model oder faellt auf ETAGGER_MODELS zurueck
func modelDir(cmd *cobra.Command) string {
	if dir, _ := cmd.Flags().GetString("model"); dir != "" {
		return dir
	}
	return envconfig.Models()
}

// openSession - Laedt das Modell mit Optionen aus der Umgebung
func openSession(cmd *cobra.Command) (*tagger.Session, error) {
	return tagger.Open(modelDir(cmd), tagger.Options{
		MaxLength:   int(envconfig.MaxSentenceLength()),
		NumParallel: int(envconfig.NumParallel()),
	})
}

// checkServerHeartbeat - Prueft ob der Server erreichbar ist
func checkServerHeartbeat(cmd *cobra.Command, _ []string) (*api.Client, error) {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return nil, err
	}
	if err := client.Heartbeat(cmd.Context()); err != nil {
		var statusErr api.StatusError
		if errors.As(err, &statusErr) {
			return nil, err
		}
		return nil, fmt.Errorf("could not connect to etagger server at %s, run 'etagger serve' first: %w", envconfig.Host(), err)
	}
	return client, nil
}
