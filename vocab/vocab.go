// vocab.go - Vokabulare fuer Woerter, Zeichen, POS und Tags
//
// Enthaelt:
// - Vocab: Lookup-Tabellen mit reservierten Pad/Unk-IDs
// - New: baut ein Vocab aus Listen
// - WordID/CharID/PosID/TagID/Tag: Lookups
// - Apply/Complete: setzen die Klassenanzahl einer Config
package vocab

import (
	"errors"
	"strings"
	"unicode/utf8"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/etagger/etagger/config"
)

// Reservierte IDs fuer Wort-, Zeichen- und POS-Vokabular
const (
	PadID = 0
	UnkID = 1
)

// OutsideTag wird fuer unbekannte Tag-IDs zurueckgegeben
const OutsideTag = "O"

var (
	// ErrNoTags bedeutet, dass das Tag-Vokabular leer ist
	ErrNoTags = errors.New("vocab: no tags")
)

// index ist ein Vokabular mit reservierten Pad/Unk-Eintraegen
type index struct {
	ids     map[string]int
	entries []string
}

func newIndex(entries []string) *index {
	idx := &index{
		ids:     make(map[string]int, len(entries)+2),
		entries: []string{"<pad>", "<unk>"},
	}
	for _, e := range entries {
		if _, ok := idx.ids[e]; ok || e == "" {
			continue
		}
		idx.ids[e] = len(idx.entries)
		idx.entries = append(idx.entries, e)
	}
	return idx
}

func (i *index) lookup(s string) (int, bool) {
	id, ok := i.ids[s]
	return id, ok
}

// Vocab enthaelt die vier Vokabulare eines Modells
type Vocab struct {
	words *index
	chars *index
	pos   *index

	tags    *orderedmap.OrderedMap[string, int]
	tagList []string
}

// New baut ein Vocab. Doppelte Eintraege werden ignoriert, der erste gewinnt.
func New(words, chars, pos, tags []string) (*Vocab, error) {
	v := &Vocab{
		words: newIndex(normalizeAll(words)),
		chars: newIndex(chars),
		pos:   newIndex(pos),
		tags:  orderedmap.New[string, int](),
	}

	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, ok := v.tags.Get(t); ok {
			continue
		}
		v.tags.Set(t, len(v.tagList))
		v.tagList = append(v.tagList, t)
	}

	if len(v.tagList) == 0 {
		return nil, ErrNoTags
	}

	return v, nil
}

func normalizeAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = norm.NFC.String(w)
	}
	return out
}

// =============================================================================
// Lookups
// =============================================================================

// WordID gibt die ID eines Wortes zurueck. Unbekannte Woerter werden
// kleingeschrieben erneut gesucht, danach UnkID.
func (v *Vocab) WordID(word string) int {
	word = norm.NFC.String(word)
	if id, ok := v.words.lookup(word); ok {
		return id
	}
	if id, ok := v.words.lookup(strings.ToLower(word)); ok {
		return id
	}
	return UnkID
}

// CharID gibt die ID eines Zeichens zurueck, UnkID wenn unbekannt
func (v *Vocab) CharID(r rune) int {
	if id, ok := v.chars.lookup(string(r)); ok {
		return id
	}
	return UnkID
}

// PosID gibt die ID eines POS-Tags zurueck, UnkID wenn unbekannt
func (v *Vocab) PosID(pos string) int {
	if id, ok := v.pos.lookup(pos); ok {
		return id
	}
	return UnkID
}

// TagID gibt die ID eines Ausgabe-Tags zurueck
func (v *Vocab) TagID(tag string) (int, bool) {
	return v.tags.Get(tag)
}

// Tag gibt das Tag zu einer ID zurueck, OutsideTag wenn die ID unbekannt ist
func (v *Vocab) Tag(id int) string {
	if id < 0 || id >= len(v.tagList) {
		return OutsideTag
	}
	return v.tagList[id]
}

// Tags gibt alle Tags in Datei-Reihenfolge zurueck
func (v *Vocab) Tags() []string {
	out := make([]string, 0, v.tags.Len())
	for pair := v.tags.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// PadWordID, PadCharID und PadPosID geben die Pad-IDs zurueck
func (v *Vocab) PadWordID() int { return PadID }
func (v *Vocab) PadCharID() int { return PadID }
func (v *Vocab) PadPosID() int  { return PadID }

// WordSize, CharSize und PosSize zaehlen inklusive reservierter IDs
func (v *Vocab) WordSize() int { return len(v.words.entries) }
func (v *Vocab) CharSize() int { return len(v.chars.entries) }
func (v *Vocab) PosSize() int  { return len(v.pos.entries) }

// ClassSize ist die Anzahl der Ausgabe-Tags
func (v *Vocab) ClassSize() int { return len(v.tagList) }

// =============================================================================
// Config-Anbindung
// =============================================================================

// Apply setzt die Klassenanzahl einer bereits gebauten Config
func (v *Vocab) Apply(cfg *config.Config) {
	cfg.SetClassSize(v.ClassSize())
}

// Complete baut aus dem Config-Kern die vollstaendige Config
func (v *Vocab) Complete(p config.Partial) (*config.Config, error) {
	return p.WithClassSize(v.ClassSize())
}

func firstRune(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return ""
	}
	return string(r)
}
