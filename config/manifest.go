// manifest.go - Modell-Manifest (config.yaml im Modell-Verzeichnis)
//
// Enthaelt:
// - Manifest: Hyperparameter und Dateinamen eines exportierten Modells
// - LoadManifest/ParseManifest: YAML-Parsing mit Default-Werten und Pruefung
//   (negative word_length, emb_class ausser glove)
// - Partial: fehlende word_length/use_crf kommen aus der Umgebung (FromEnv)
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ManifestName ist der Dateiname des Manifests im Modell-Verzeichnis
const ManifestName = "config.yaml"

// Standard-Werte fuer fehlende Manifest-Felder
const (
	DefaultArch        = "linear"
	DefaultEmbClass    = "glove"
	DefaultWordFile    = "word.txt"
	DefaultCharFile    = "char.txt"
	DefaultPosFile     = "pos.txt"
	DefaultTagFile     = "tag.txt"
	DefaultWeightsFile = "weights.bin"
)

// VocabFiles benennt die vier Vokabular-Dateien
type VocabFiles struct {
	Word string `yaml:"word"`
	Char string `yaml:"char"`
	Pos  string `yaml:"pos"`
	Tag  string `yaml:"tag"`
}

// Manifest beschreibt ein exportiertes Modell
type Manifest struct {
	Arch       string     `yaml:"arch"`
	WordLength *int       `yaml:"word_length"`
	UseCRF     *bool      `yaml:"use_crf"`
	EmbClass   string     `yaml:"emb_class"`
	Vocab      VocabFiles `yaml:"vocab"`
	Weights    string     `yaml:"weights"`
}

// LoadManifest liest ein Manifest von der Platte
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	return ParseManifest(bytes.NewReader(data))
}

// ParseManifest dekodiert YAML und setzt Defaults. Ein leeres Dokument ist gueltig.
func ParseManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	m.applyDefaults()
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// validate prueft die Werte, die das Manifest selbst setzt
func (m *Manifest) validate() error {
	if m.WordLength != nil && *m.WordLength < 0 {
		return fmt.Errorf("%w: word_length %d", ErrInvalidWordLength, *m.WordLength)
	}
	if m.EmbClass != DefaultEmbClass {
		return fmt.Errorf("%w: %q", ErrUnsupportedEmbedding, m.EmbClass)
	}
	return nil
}

func (m *Manifest) applyDefaults() {
	if m.Arch == "" {
		m.Arch = DefaultArch
	}
	if m.EmbClass == "" {
		m.EmbClass = DefaultEmbClass
	}
	if m.Vocab.Word == "" {
		m.Vocab.Word = DefaultWordFile
	}
	if m.Vocab.Char == "" {
		m.Vocab.Char = DefaultCharFile
	}
	if m.Vocab.Pos == "" {
		m.Vocab.Pos = DefaultPosFile
	}
	if m.Vocab.Tag == "" {
		m.Vocab.Tag = DefaultTagFile
	}
	if m.Weights == "" {
		m.Weights = DefaultWeightsFile
	}
}

// Partial gibt den Config-Kern des Manifests zurueck
func (m *Manifest) Partial() Partial {
	p := FromEnv().Partial()
	if m.WordLength != nil {
		p.WordLength = *m.WordLength
	}
	if m.UseCRF != nil {
		p.UseCRF = *m.UseCRF
	}
	return p
}
