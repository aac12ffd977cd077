// cmd_tag.go - Tag Command
// Hauptfunktionen: TagHandler, readSentences
package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/etagger/etagger/api"
	"github.com/etagger/etagger/input"
)

// readSentences - Liest CoNLL-Saetze aus Datei oder stdin
func readSentences(cmd *cobra.Command, args []string) ([]input.Sentence, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return input.ReadSentences(r)
}

// toRequest - Baut einen API-Request aus gelesenen Saetzen
func toRequest(sentences []input.Sentence) *api.TagRequest {
	req := &api.TagRequest{Sentences: make([][]api.Token, len(sentences))}
	for i, s := range sentences {
		req.Sentences[i] = make([]api.Token, len(s))
		for j, tok := range s {
			req.Sentences[i][j] = api.Token{Word: tok.Word, Pos: tok.Pos}
		}
	}
	return req
}

// TagHandler - Taggt CoNLL-Saetze lokal oder ueber einen laufenden Server
func TagHandler(cmd *cobra.Command, args []string) error {
	remote, _ := cmd.Flags().GetBool("remote")
	verbose, _ := cmd.Flags().GetBool("verbose")

	sentences, err := readSentences(cmd, args)
	if err != nil {
		return err
	}

	start := time.Now()
	var tags [][]string
	if remote {
		client, err := checkServerHeartbeat(cmd, args)
		if err != nil {
			return err
		}
		resp, err := client.Tag(cmd.Context(), toRequest(sentences))
		if err != nil {
			return err
		}
		tags = resp.Tags
	} else {
		session, err := openSession(cmd)
		if err != nil {
			return err
		}
		tags, err = session.Tag(cmd.Context(), sentences)
		if err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	if len(tags) != len(sentences) {
		return fmt.Errorf("got tags for %d of %d sentences", len(tags), len(sentences))
	}

	out := cmd.OutOrStdout()
	align := false
	if f, ok := out.(*os.File); ok {
		align = term.IsTerminal(int(f.Fd()))
	}
	if err := writeTagged(out, sentences, tags, align); err != nil {
		return err
	}

	if verbose {
		correct, total := accuracy(sentences, tags)
		rows := [][]string{
			{"sentences", fmt.Sprint(len(sentences))},
			{"duration", elapsed.Round(time.Millisecond).String()},
		}
		if total > 0 {
			rows = append(rows, []string{"accuracy", fmt.Sprintf("%.4f (%d/%d)", float64(correct)/float64(total), correct, total)})
		}
		renderTable(cmd.ErrOrStderr(), nil, rows)
	}
	return nil
}
