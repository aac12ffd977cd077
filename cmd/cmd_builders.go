// cmd_builders.go - Command-Builder Funktionen
// Hauptfunktionen: newServeCmd, newTagCmd, newShowCmd
package cmd

import (
	"github.com/spf13/cobra"
)

// addModelFlag - Registriert --model mit ETAGGER_MODELS als Default
func addModelFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("model", "m", "", "Model directory (default $ETAGGER_MODELS)")
}

// newServeCmd - Erstellt den serve Command
func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"start"},
		Short:   "Start the tagging server",
		Args:    cobra.ExactArgs(0),
		RunE:    RunServer,
	}
	addModelFlag(serveCmd)
	return serveCmd
}

// newTagCmd - Erstellt den tag Command
func newTagCmd() *cobra.Command {
	tagCmd := &cobra.Command{
		Use:   "tag [FILE]",
		Short: "Tag sentences in CoNLL format (word pos chunk tag) from FILE or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE:  TagHandler,
	}
	addModelFlag(tagCmd)
	tagCmd.Flags().Bool("remote", false, "Send sentences to a running server instead of loading the model")
	tagCmd.Flags().Bool("verbose", false, "Show timings and accuracy against the input tags")
	return tagCmd
}

// newShowCmd - Erstellt den show Command
func newShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show model hyperparameters",
		Args:  cobra.ExactArgs(0),
		RunE:  ShowHandler,
	}
	addModelFlag(showCmd)
	showCmd.Flags().Bool("remote", false, "Ask a running server instead of loading the model")
	showCmd.Flags().Bool("tags", false, "List the output tags")
	return showCmd
}
