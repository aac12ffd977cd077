// encoder.go - Kodierung von Saetzen in ID-Tensoren
//
// Enthaelt:
// - Batch: Wort-, Zeichen-, POS-, Feature- und Tag-Tensoren eines Batches
// - Encoder: kodiert Saetze anhand von Config und Vocab
// - LogitToTags/LogitIndicesToTags/LogitsIndicesToTagsSeq: Rueckweg zu Tags
package input

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"golang.org/x/text/unicode/norm"

	"github.com/etagger/etagger/config"
	"github.com/etagger/etagger/logutil"
	"github.com/etagger/etagger/vocab"
)

// ErrUnknownTag wird fuer Tags ausserhalb des Tag-Vokabulars zurueckgegeben
var ErrUnknownTag = errors.New("unknown tag")

// Batch enthaelt die kodierten Eingaben eines Batches.
// Alle Saetze sind auf MaxLength aufgefuellt bzw. gekuerzt.
type Batch struct {
	MaxLength int
	Lengths   []int

	WordIDs [][]int       // [batch][MaxLength]
	CharIDs [][][]int     // [batch][MaxLength][word_length]
	PosIDs  [][]int       // [batch][MaxLength]
	Etc     [][][]float64 // [batch][MaxLength][etc_dim]

	// Tags ist nur gesetzt, wenn mit Tags kodiert wurde: [batch][MaxLength][class_size]
	Tags [][][]float64
}

// Len gibt die Anzahl der Saetze zurueck
func (b *Batch) Len() int {
	return len(b.Lengths)
}

// Encoder kodiert Saetze fuer eine vollstaendige Config
type Encoder struct {
	cfg   *config.Config
	vocab *vocab.Vocab
}

// NewEncoder erstellt einen Encoder. Die Config muss eine Klassenanzahl haben.
func NewEncoder(cfg *config.Config, v *vocab.Vocab) (*Encoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Encoder{cfg: cfg, vocab: v}, nil
}

// Encode kodiert die Saetze. maxLen <= 0 verwendet den laengsten Satz.
// Mit withTags werden One-Hot-Tags erzeugt; unbekannte Tags sind ein Fehler.
func (e *Encoder) Encode(sentences []Sentence, maxLen int, withTags bool) (*Batch, error) {
	if maxLen <= 0 {
		for _, s := range sentences {
			maxLen = max(maxLen, len(s))
		}
	}

	b := &Batch{
		MaxLength: maxLen,
		Lengths:   make([]int, len(sentences)),
		WordIDs:   make([][]int, len(sentences)),
		CharIDs:   make([][][]int, len(sentences)),
		PosIDs:    make([][]int, len(sentences)),
		Etc:       make([][][]float64, len(sentences)),
	}
	if withTags {
		b.Tags = make([][][]float64, len(sentences))
	}

	for i, s := range sentences {
		if len(s) > maxLen {
			s = s[:maxLen]
		}
		b.Lengths[i] = len(s)
		b.WordIDs[i] = e.wordIDs(s, maxLen)
		b.CharIDs[i] = e.wordCharIDs(s, maxLen)
		b.PosIDs[i] = e.posIDs(s, maxLen)
		b.Etc[i] = e.etc(s, maxLen)

		if withTags {
			tags, err := e.tags(s, maxLen)
			if err != nil {
				return nil, fmt.Errorf("sentence %d: %w", i, err)
			}
			b.Tags[i] = tags
		}
	}

	logutil.Trace("encoded batch", "sentences", len(sentences), "max_length", maxLen)
	return b, nil
}

func (e *Encoder) wordIDs(s Sentence, maxLen int) []int {
	ids := make([]int, maxLen)
	for i := range ids {
		ids[i] = e.vocab.PadWordID()
	}
	for i, tok := range s {
		ids[i] = e.vocab.WordID(tok.Word)
	}
	return ids
}

// charIDs arbeitet auf der NFC-Form wie Vocab.WordID
func (e *Encoder) charIDs(word string) []int {
	wordLength := max(0, e.cfg.WordLength())
	ids := make([]int, 0, wordLength)
	for _, r := range norm.NFC.String(word) {
		if len(ids) == wordLength {
			break
		}
		ids = append(ids, e.vocab.CharID(r))
	}
	for len(ids) < wordLength {
		ids = append(ids, e.vocab.PadCharID())
	}
	return ids
}

func (e *Encoder) wordCharIDs(s Sentence, maxLen int) [][]int {
	ids := make([][]int, maxLen)
	for i := range ids {
		if i < len(s) {
			ids[i] = e.charIDs(s[i].Word)
		} else {
			ids[i] = e.charIDs("")
		}
	}
	return ids
}

func (e *Encoder) posIDs(s Sentence, maxLen int) []int {
	ids := make([]int, maxLen)
	for i := range ids {
		ids[i] = e.vocab.PadPosID()
	}
	for i, tok := range s {
		ids[i] = e.vocab.PosID(tok.Pos)
	}
	return ids
}

func (e *Encoder) etc(s Sentence, maxLen int) [][]float64 {
	rows := make([][]float64, maxLen)
	for i := range rows {
		if i < len(s) {
			rows[i] = EtcFeatures(s[i].Word)
		} else {
			rows[i] = make([]float64, e.cfg.EtcDim())
		}
	}
	return rows
}

func (e *Encoder) tags(s Sentence, maxLen int) ([][]float64, error) {
	classSize := e.cfg.ClassSize()
	rows := make([][]float64, maxLen)
	for i := range rows {
		rows[i] = make([]float64, classSize)
		if i >= len(s) {
			continue
		}

		id, ok := e.vocab.TagID(s[i].Tag)
		if !ok || id >= classSize {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTag, s[i].Tag)
		}
		rows[i][id] = 1
	}
	return rows, nil
}

// =============================================================================
// Rueckweg: Logits und Indizes zu Tags
// =============================================================================

// LogitToTags waehlt pro Zeile die Klasse mit dem hoechsten Wert.
// logit hat die Form [sentence_length][class_size].
func (e *Encoder) LogitToTags(logit [][]float64, length int) []string {
	length = max(0, min(length, len(logit)))
	tags := make([]string, 0, length)
	for _, row := range logit[:length] {
		if len(row) == 0 {
			tags = append(tags, vocab.OutsideTag)
			continue
		}
		tags = append(tags, e.vocab.Tag(floats.MaxIdx(row)))
	}
	return tags
}

// LogitIndicesToTags wandelt dekodierte Klassen-Indizes in Tags um
func (e *Encoder) LogitIndicesToTags(indices []int, length int) []string {
	length = max(0, min(length, len(indices)))
	tags := make([]string, length)
	for i, id := range indices[:length] {
		tags[i] = e.vocab.Tag(id)
	}
	return tags
}

// LogitsIndicesToTagsSeq wendet LogitIndicesToTags auf einen Batch an
func (e *Encoder) LogitsIndicesToTagsSeq(indices [][]int, lengths []int) [][]string {
	n := min(len(indices), len(lengths))
	seq := make([][]string, n)
	for i := range n {
		seq[i] = e.LogitIndicesToTags(indices[i], lengths[i])
	}
	return seq
}

// Config gibt die Config des Encoders zurueck
func (e *Encoder) Config() *config.Config {
	return e.cfg
}

// Vocab gibt das Vokabular des Encoders zurueck
func (e *Encoder) Vocab() *vocab.Vocab {
	return e.vocab
}
