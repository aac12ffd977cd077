// Package model - Model-Interface und Initialisierung
//
// Dieses Paket definiert das Model-Interface und stellt Funktionen
// zur Initialisierung von Sequence-Labeling-Modellen bereit.
//
// Hauptkomponenten:
// - Model: Interface für alle Modell-Architekturen
// - Register: Registriert Modell-Konstruktoren
// - New: Erstellt neue Model-Instanzen aus Gewichten
// - Forward: Führt Vorwärts-Pass mit Prüfungen durch

package model

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/etagger/etagger/config"
	"github.com/etagger/etagger/input"
)

// Fehler-Definitionen
var (
	ErrUnsupportedModel = errors.New("model not supported")
	ErrSentenceIndex    = errors.New("sentence index out of range")
)

// Sizes enthält die Vokabular-Größen inklusive reservierter IDs
type Sizes struct {
	Words int
	Chars int
	Pos   int
}

// Model definiert das Interface für spezifische Modell-Architekturen
type Model interface {
	// Forward berechnet Emissionen [MaxLength x class_size] für Satz i
	Forward(b *input.Batch, i int) (*mat.Dense, error)

	// Transitions gibt die CRF-Übergangsmatrix zurück, nil ohne CRF
	Transitions() mat.Matrix
}

// Validator ist ein optionales Interface für Post-Load-Validierung
type Validator interface {
	Validate() error
}

// Constructor baut ein Modell aus Config, Vokabular-Größen und Gewichten
type Constructor func(cfg *config.Config, sizes Sizes, weights io.Reader) (Model, error)

// models speichert registrierte Modell-Konstruktoren
var models = make(map[string]Constructor)

// Register registriert einen Modell-Konstruktor für eine Architektur
func Register(name string, f Constructor) {
	if _, ok := models[name]; ok {
		panic("model: model already registered")
	}

	models[name] = f
}

// New initialisiert eine neue Model-Instanz für die Architektur arch.
// Die Config muss vollständig sein (Klassenanzahl gesetzt).
func New(arch string, cfg *config.Config, sizes Sizes, weights io.Reader) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f, ok := models[arch]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedModel, arch)
	}

	m, err := f(cfg, sizes, weights)
	if err != nil {
		return nil, err
	}

	if validator, ok := m.(Validator); ok {
		if err := validator.Validate(); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Forward führt einen Vorwärts-Pass durch das Modell aus
func Forward(m Model, b *input.Batch, i int) (*mat.Dense, error) {
	if i < 0 || i >= b.Len() {
		return nil, fmt.Errorf("%w: %d of %d", ErrSentenceIndex, i, b.Len())
	}

	return m.Forward(b, i)
}

// ShapeError beschreibt eine Gewichtsmatrix mit falschen Dimensionen
type ShapeError struct {
	Name       string
	Rows, Cols int
	WantRows   int
	WantCols   int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("model: %s has shape %dx%d, want %dx%d", e.Name, e.Rows, e.Cols, e.WantRows, e.WantCols)
}

// CheckShape prüft die Dimensionen einer Matrix
func CheckShape(name string, m *mat.Dense, rows, cols int) error {
	if m == nil {
		return &ShapeError{Name: name, WantRows: rows, WantCols: cols}
	}
	if r, c := m.Dims(); r != rows || c != cols {
		return &ShapeError{Name: name, Rows: r, Cols: c, WantRows: rows, WantCols: cols}
	}
	return nil
}
