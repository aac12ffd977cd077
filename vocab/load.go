// load.go - Laden der Vokabular-Dateien
//
// Jede Datei enthaelt einen Eintrag pro Zeile; weitere Spalten (z.B. Zaehler)
// werden ignoriert, Leerzeilen uebersprungen.
package vocab

import (
	"bufio"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/etagger/etagger/config"
)

// LoadError beschreibt einen Fehler beim Laden einer Vokabular-Datei
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("vocab %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadDir laedt die Vokabulare aus einem Verzeichnis
func LoadDir(dir string, files config.VocabFiles) (*Vocab, error) {
	return Load(os.DirFS(dir), files)
}

// Load laedt die Vokabulare aus einem Dateisystem
func Load(fsys fs.FS, files config.VocabFiles) (*Vocab, error) {
	words, err := readEntries(fsys, files.Word, firstField)
	if err != nil {
		return nil, err
	}
	chars, err := readEntries(fsys, files.Char, func(line string) string { return firstRune(firstField(line)) })
	if err != nil {
		return nil, err
	}
	pos, err := readEntries(fsys, files.Pos, firstField)
	if err != nil {
		return nil, err
	}
	tags, err := readEntries(fsys, files.Tag, firstField)
	if err != nil {
		return nil, err
	}

	v, err := New(words, chars, pos, tags)
	if err != nil {
		return nil, &LoadError{Path: files.Tag, Err: err}
	}

	slog.Debug("vocab loaded", "words", v.WordSize(), "chars", v.CharSize(), "pos", v.PosSize(), "tags", v.ClassSize())
	return v, nil
}

func readEntries(fsys fs.FS, name string, entry func(string) string) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if e := entry(scanner.Text()); e != "" {
			entries = append(entries, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}

	return entries, nil
}

func firstField(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
