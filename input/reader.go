// reader.go - Lesen von Saetzen im CoNLL-Format
//
// Enthaelt:
// - Token/Sentence: ein Satz aus Zeilen "wort pos chunk tag"
// - ReadSentences: liest Saetze, getrennt durch Leerzeilen
// - FindMaxLength: laengster Satz einer Datei
// - ParseError: Zeile mit falscher Spaltenzahl
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Columns ist die erwartete Spaltenanzahl pro Token-Zeile
const Columns = 4

// ErrColumns wird in ParseError fuer Zeilen mit falscher Spaltenzahl verwendet
var ErrColumns = errors.New("wrong number of columns")

// ParseError beschreibt eine fehlerhafte Eingabezeile
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Token ist eine Zeile eines Satzes
type Token struct {
	Word  string `json:"word"`
	Pos   string `json:"pos"`
	Chunk string `json:"chunk,omitempty"`
	Tag   string `json:"tag,omitempty"`
}

// Sentence ist eine Folge von Tokens
type Sentence []Token

// Words gibt die Woerter des Satzes zurueck
func (s Sentence) Words() []string {
	words := make([]string, len(s))
	for i, tok := range s {
		words[i] = tok.Word
	}
	return words
}

// isBlank erkennt Satzgrenzen ("\n" bzw. "\r\n" nach dem Scanner)
func isBlank(line string) bool {
	return line == "" || line == "\r"
}

// ReadSentences liest alle Saetze. Ein letzter Satz ohne abschliessende
// Leerzeile wird ebenfalls zurueckgegeben.
func ReadSentences(r io.Reader) ([]Sentence, error) {
	var sentences []Sentence
	var bucket Sentence

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if isBlank(line) {
			if len(bucket) > 0 {
				sentences = append(sentences, bucket)
			}
			bucket = nil
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != Columns {
			return nil, &ParseError{Line: n, Err: fmt.Errorf("%w: got %d, want %d", ErrColumns, len(fields), Columns)}
		}
		bucket = append(bucket, Token{Word: fields[0], Pos: fields[1], Chunk: fields[2], Tag: fields[3]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(bucket) > 0 {
		sentences = append(sentences, bucket)
	}

	return sentences, nil
}

// FindMaxLength gibt die Token-Anzahl des laengsten Satzes zurueck.
// Nur Saetze mit abschliessender Leerzeile werden gezaehlt.
func FindMaxLength(r io.Reader) (int, error) {
	current, longest := 0, 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if isBlank(scanner.Text()) {
			longest = max(longest, current)
			current = 0
			continue
		}
		current++
	}

	return longest, scanner.Err()
}
