// decode.go - Ausgabe-Schicht: Argmax oder CRF-Viterbi
//
// Enthaelt:
// - Argmax: unabhaengige Klassifikation pro Position
// - Viterbi: strukturierte Dekodierung mit Uebergangsmatrix
// - Decoder: waehlt den Pfad anhand von Config.UseCRF
package decode

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/etagger/etagger/config"
)

var (
	// ErrShape wird bei unpassenden Matrix-Dimensionen zurueckgegeben
	ErrShape = errors.New("decode: shape mismatch")

	// ErrNoTransitions bedeutet CRF ohne Uebergangsmatrix
	ErrNoTransitions = errors.New("decode: crf requires transitions")
)

// Path ist das Ergebnis der Viterbi-Dekodierung
type Path struct {
	Indices []int
	Score   float64
}

// Argmax gibt pro Zeile den Index des groessten Wertes zurueck.
// Nur die ersten length Zeilen werden betrachtet.
func Argmax(logits mat.Matrix, length int) []int {
	rows, cols := logits.Dims()
	length = max(0, min(length, rows))

	out := make([]int, length)
	row := make([]float64, cols)
	for i := range length {
		mat.Row(row, i, logits)
		out[i] = floats.MaxIdx(row)
	}
	return out
}

// Viterbi findet die Klassenfolge mit der hoechsten Summe aus
// Emissions- und Uebergangswerten. transitions[i][j] bewertet i -> j.
func Viterbi(emissions, transitions mat.Matrix, length int) (Path, error) {
	rows, classes := emissions.Dims()
	if tr, tc := transitions.Dims(); tr != classes || tc != classes {
		return Path{}, fmt.Errorf("%w: emissions %dx%d, transitions %dx%d", ErrShape, rows, classes, tr, tc)
	}

	length = max(0, min(length, rows))
	if length == 0 {
		return Path{Indices: []int{}}, nil
	}

	score := make([]float64, classes)
	next := make([]float64, classes)
	backpointers := make([][]int, length)

	mat.Row(score, 0, emissions)
	for t := 1; t < length; t++ {
		backpointers[t] = make([]int, classes)
		for j := range classes {
			best, arg := math.Inf(-1), 0
			for i := range classes {
				if s := score[i] + transitions.At(i, j); s > best {
					best, arg = s, i
				}
			}
			next[j] = best + emissions.At(t, j)
			backpointers[t][j] = arg
		}
		score, next = next, score
	}

	last := floats.MaxIdx(score)
	path := Path{Indices: make([]int, length), Score: score[last]}
	path.Indices[length-1] = last
	for t := length - 1; t > 0; t-- {
		path.Indices[t-1] = backpointers[t][path.Indices[t]]
	}

	return path, nil
}

// Decoder dekodiert Emissionen entweder per Argmax oder per Viterbi
type Decoder struct {
	transitions mat.Matrix
}

// NewDecoder waehlt die Dekodierung anhand von cfg.UseCRF.
// Fuer CRF muss transitions class_size x class_size sein.
func NewDecoder(cfg *config.Config, transitions mat.Matrix) (*Decoder, error) {
	if !cfg.UseCRF() {
		return &Decoder{}, nil
	}
	if transitions == nil {
		return nil, ErrNoTransitions
	}
	if r, c := transitions.Dims(); r != cfg.ClassSize() || c != cfg.ClassSize() {
		return nil, fmt.Errorf("%w: transitions %dx%d, class size %d", ErrShape, r, c, cfg.ClassSize())
	}
	return &Decoder{transitions: transitions}, nil
}

// CRF meldet, ob der Decoder Viterbi verwendet
func (d *Decoder) CRF() bool {
	return d.transitions != nil
}

// Decode gibt die Klassen-Indizes fuer die ersten length Positionen zurueck
func (d *Decoder) Decode(emissions mat.Matrix, length int) ([]int, error) {
	if d.transitions == nil {
		return Argmax(emissions, length), nil
	}

	path, err := Viterbi(emissions, d.transitions, length)
	if err != nil {
		return nil, err
	}
	return path.Indices, nil
}
