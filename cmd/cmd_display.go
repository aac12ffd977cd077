// cmd_display.go - Display und Output-Funktionen
// Hauptfunktionen: writeTagged, renderTable, accuracy
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	"github.com/etagger/etagger/input"
	"github.com/etagger/etagger/vocab"
)

// predicted - Tag fuer Token j, gekuerzte Tokens bekommen O
func predicted(tags []string, j int) string {
	if j < len(tags) {
		return tags[j]
	}
	return vocab.OutsideTag
}

// writeTagged - Schreibt Saetze im CoNLL-Format mit angehaengtem Tag.
// Mit align werden die Spalten nach Anzeigebreite ausgerichtet.
func writeTagged(w io.Writer, sentences []input.Sentence, tags [][]string, align bool) error {
	for i, s := range sentences {
		rows := make([][]string, len(s))
		for j, tok := range s {
			rows[j] = []string{tok.Word, tok.Pos, tok.Chunk, tok.Tag, predicted(tags[i], j)}
		}

		var widths []int
		if align {
			widths = columnWidths(rows)
		}

		for _, row := range rows {
			cells := make([]string, 0, len(row))
			for k, cell := range row {
				if cell == "" {
					continue
				}
				if widths != nil && k < len(row)-1 {
					cell = runewidth.FillRight(cell, widths[k])
				}
				cells = append(cells, cell)
			}
			if _, err := fmt.Fprintln(w, strings.Join(cells, " ")); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// columnWidths - Maximale Anzeigebreite pro Spalte
func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for k, cell := range row {
			if k >= len(widths) {
				widths = append(widths, 0)
			}
			widths[k] = max(widths[k], runewidth.StringWidth(cell))
		}
	}
	return widths
}

// accuracy - Anteil korrekt vorhergesagter Tags unter Tokens mit Gold-Tag
func accuracy(sentences []input.Sentence, tags [][]string) (correct, total int) {
	for i, s := range sentences {
		for j, tok := range s {
			if tok.Tag == "" {
				continue
			}
			total++
			if predicted(tags[i], j) == tok.Tag {
				correct++
			}
		}
	}
	return correct, total
}

// renderTable - Zeichnet eine Tabelle im Stil von 'etagger show'
func renderTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	if header != nil {
		table.SetHeader(header)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetHeaderLine(false)
	}
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(rows)
	table.Render()
}
