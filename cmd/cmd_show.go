// cmd_show.go - Show Command und Config-Anzeige
// Hauptfunktionen: ShowHandler, showConfig
package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/etagger/etagger/config"
)

// ShowHandler - Zeigt die Hyperparameter eines Modells an
func ShowHandler(cmd *cobra.Command, args []string) error {
	remote, _ := cmd.Flags().GetBool("remote")
	showTags, _ := cmd.Flags().GetBool("tags")

	var snap config.Snapshot
	var tags []string
	if remote {
		client, err := checkServerHeartbeat(cmd, args)
		if err != nil {
			return err
		}
		resp, err := client.Show(cmd.Context())
		if err != nil {
			return err
		}
		snap, tags = resp.Config, resp.Tags
	} else {
		session, err := openSession(cmd)
		if err != nil {
			return err
		}
		snap = session.Config()
		tags = session.Tags()
	}

	if showTags {
		for _, t := range tags {
			fmt.Fprintln(cmd.OutOrStdout(), t)
		}
		return nil
	}

	showConfig(cmd.OutOrStdout(), snap)
	return nil
}

// showConfig - Gibt die Config als Tabelle aus
func showConfig(w io.Writer, snap config.Snapshot) {
	fmt.Fprintln(w, " ", "Config")
	renderTable(w, nil, [][]string{
		{"", "chr_dim", strconv.Itoa(snap.ChrDim)},
		{"", "pos_dim", strconv.Itoa(snap.PosDim)},
		{"", "etc_dim", strconv.Itoa(snap.EtcDim)},
		{"", "word_length", strconv.Itoa(snap.WordLength)},
		{"", "use_crf", strconv.FormatBool(snap.UseCRF)},
		{"", "class_size", strconv.Itoa(snap.ClassSize)},
	})
	fmt.Fprintln(w)
}
