// cmd.go - Haupt-CLI Setup und Root Command
// Hauptfunktionen: NewCLI, appendEnvDocs, versionHandler
package cmd

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/etagger/etagger/envconfig"
	"github.com/etagger/etagger/logutil"
	"github.com/etagger/etagger/version"
)

// appendEnvDocs - Fuegt Umgebungsvariablen-Dokumentation zum Command hinzu
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-28s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// versionHandler - Gibt die Version aus
func versionHandler(cmd *cobra.Command, _ []string) {
	cmd.Printf("etagger version is %s\n", version.Version)
}

// NewCLI - Erstellt das Haupt-CLI mit allen Commands
func NewCLI() *cobra.Command {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "etagger",
		Short:         "Sequence labeling inference",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			slog.SetDefault(logutil.NewLogger(os.Stderr, envconfig.LogLevel()))
		},
		Run: func(cmd *cobra.Command, args []string) {
			if version, _ := cmd.Flags().GetBool("version"); version {
				versionHandler(cmd, args)
				return
			}

			cmd.Print(cmd.UsageString())
		},
	}

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	serveCmd := newServeCmd()
	tagCmd := newTagCmd()
	showCmd := newShowCmd()

	// Environment-Dokumentation hinzufuegen
	envVars := envconfig.AsMap()
	for _, cmd := range []*cobra.Command{serveCmd, tagCmd, showCmd} {
		switch cmd {
		case serveCmd:
			appendEnvDocs(cmd, []envconfig.EnvVar{
				envVars["ETAGGER_DEBUG"],
				envVars["ETAGGER_HOST"],
				envVars["ETAGGER_MODELS"],
				envVars["ETAGGER_ORIGINS"],
				envVars["ETAGGER_REQUEST_TIMEOUT"],
				envVars["ETAGGER_WORD_LENGTH"],
				envVars["ETAGGER_USE_CRF"],
				envVars["ETAGGER_MAX_SENTENCE_LENGTH"],
				envVars["ETAGGER_NUM_PARALLEL"],
				envVars["ETAGGER_MAX_BATCH_SIZE"],
			})
		case tagCmd:
			appendEnvDocs(cmd, []envconfig.EnvVar{
				envVars["ETAGGER_HOST"],
				envVars["ETAGGER_MODELS"],
				envVars["ETAGGER_MAX_SENTENCE_LENGTH"],
				envVars["ETAGGER_NUM_PARALLEL"],
			})
		default:
			appendEnvDocs(cmd, []envconfig.EnvVar{envVars["ETAGGER_HOST"], envVars["ETAGGER_MODELS"]})
		}
	}

	rootCmd.AddCommand(serveCmd, tagCmd, showCmd)
	return rootCmd
}
