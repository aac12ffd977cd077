// partial.go - Zweistufiger Builder fuer Config
//
// Enthaelt:
// - Partial: unveraenderlicher Kern (Wortlaenge, CRF) vor dem Laden des Vokabulars
// - WithClassSize: vervollstaendigt zu einer Config
// - Snapshot/Freeze: Wertkopie zum Teilen zwischen Goroutinen
package config

import "fmt"

// Partial ist eine Config ohne Klassenanzahl
type Partial struct {
	WordLength int  `yaml:"word_length" json:"word_length"`
	UseCRF     bool `yaml:"use_crf" json:"use_crf"`
}

// WithClassSize baut die vollstaendige Config. Die Klassenanzahl muss positiv
// sein, die Wortlaenge darf nicht negativ sein.
func (p Partial) WithClassSize(n int) (*Config, error) {
	if p.WordLength < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWordLength, p.WordLength)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidClassSize, n)
	}

	c := New(p.WordLength, p.UseCRF)
	c.SetClassSize(n)
	return c, nil
}

// Partial gibt den unveraenderlichen Kern einer Config zurueck
func (c *Config) Partial() Partial {
	return Partial{WordLength: c.wordLength, UseCRF: c.useCRF}
}

// Snapshot ist eine teilbare Kopie aller sechs Werte
type Snapshot struct {
	ChrDim     int  `json:"chr_dim" yaml:"chr_dim"`
	PosDim     int  `json:"pos_dim" yaml:"pos_dim"`
	EtcDim     int  `json:"etc_dim" yaml:"etc_dim"`
	WordLength int  `json:"word_length" yaml:"word_length"`
	UseCRF     bool `json:"use_crf" yaml:"use_crf"`
	ClassSize  int  `json:"class_size" yaml:"class_size"`
}

// Freeze kopiert den aktuellen Stand in einen Snapshot
func (c *Config) Freeze() Snapshot {
	return Snapshot{
		ChrDim:     c.ChrDim(),
		PosDim:     c.PosDim(),
		EtcDim:     c.EtcDim(),
		WordLength: c.wordLength,
		UseCRF:     c.useCRF,
		ClassSize:  c.classSize,
	}
}

// String formatiert den Snapshot fuer Logs und CLI-Ausgabe
func (s Snapshot) String() string {
	return fmt.Sprintf("chr_dim=%d pos_dim=%d etc_dim=%d word_length=%d use_crf=%t class_size=%d",
		s.ChrDim, s.PosDim, s.EtcDim, s.WordLength, s.UseCRF, s.ClassSize)
}
