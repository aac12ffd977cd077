// config.go - Hyperparameter fuer die Sequence-Labeling Inferenz
//
// Dieses Modul enthaelt:
// - Config: Eingebettete Dimensionen, Wortlaenge, CRF-Flag und Klassenanzahl
// - New/FromEnv: Konstruktoren (kein stiller Default-Pfad)
// - SetClassSize: der einzige Mutator, wird nach dem Laden des Vokabulars aufgerufen
// - Validate: erkennt nicht konfigurierte Werte
//
// Der unveraenderliche Kern wird ueber partial.go (Partial -> Config) gebaut,
// dort liegt auch Snapshot als teilbare Kopie.
package config

import (
	"errors"
	"log/slog"
	"math"

	"github.com/etagger/etagger/envconfig"
)

// =============================================================================
// Feste Dimensionen
// =============================================================================

const (
	// DefaultChrDim ist die Dimension der Zeichen-Embeddings
	DefaultChrDim = 50

	// DefaultPosDim ist die Dimension der POS-Embeddings
	DefaultPosDim = 6

	// DefaultEtcDim ist die Anzahl der sonstigen Wort-Features
	DefaultEtcDim = 9
)

var (
	// ErrNotConfigured wird fuer einen Config-Nullwert zurueckgegeben
	ErrNotConfigured = errors.New("config: not configured")

	// ErrClassSizeUnset bedeutet, dass SetClassSize nie aufgerufen wurde
	ErrClassSizeUnset = errors.New("config: class size not set")

	// ErrInvalidClassSize wird vom Builder fuer n <= 0 zurueckgegeben
	ErrInvalidClassSize = errors.New("config: class size must be positive")

	// ErrInvalidWordLength wird vom Builder und vom Manifest fuer negative Wortlaengen zurueckgegeben
	ErrInvalidWordLength = errors.New("config: word length must not be negative")

	// ErrUnsupportedEmbedding wird fuer eine unbekannte emb_class im Manifest zurueckgegeben
	ErrUnsupportedEmbedding = errors.New("config: unsupported embedding class")
)

// maxEnvWordLength begrenzt ETAGGER_WORD_LENGTH vor der Umwandlung nach int
const maxEnvWordLength = math.MaxInt32

// Config haelt die Hyperparameter einer Inferenz-Session.
//
// Wortlaenge und CRF-Flag sind nach der Konstruktion fest. Die Klassenanzahl
// ist erst nach dem Laden des Vokabulars bekannt und wird genau einmal ueber
// SetClassSize gesetzt. Config ist nicht fuer gleichzeitige Mutation
// ausgelegt: SetClassSize muss vor dem Teilen mit anderen Goroutinen
// aufgerufen werden, oder der Aufrufer teilt nur Freeze().
type Config struct {
	configured bool
	wordLength int
	useCRF     bool

	classSize    int
	classSizeSet bool
}

// New erstellt eine Config mit fester Wortlaenge und CRF-Auswahl.
// Die Werte werden unveraendert uebernommen.
func New(wordLength int, useCRF bool) *Config {
	return &Config{
		configured: true,
		wordLength: wordLength,
		useCRF:     useCRF,
	}
}

// FromEnv erstellt eine Config aus ETAGGER_WORD_LENGTH und ETAGGER_USE_CRF.
// Werte ueber maxEnvWordLength fallen auf den Default zurueck.
func FromEnv() *Config {
	n := envconfig.WordLength()
	if n > maxEnvWordLength {
		slog.Warn("ETAGGER_WORD_LENGTH out of range, using default", "value", n, "default", envconfig.DefaultWordLength)
		n = envconfig.DefaultWordLength
	}
	return New(int(n), envconfig.UseCRF(false))
}

// ChrDim gibt die Zeichen-Embedding-Dimension zurueck (immer 50)
func (c *Config) ChrDim() int { return DefaultChrDim }

// PosDim gibt die POS-Embedding-Dimension zurueck (immer 6)
func (c *Config) PosDim() int { return DefaultPosDim }

// EtcDim gibt die Anzahl sonstiger Features zurueck (immer 9)
func (c *Config) EtcDim() int { return DefaultEtcDim }

// WordLength gibt die maximale Zeichenanzahl pro Wort zurueck
func (c *Config) WordLength() int { return c.wordLength }

// UseCRF meldet, ob die Ausgabe per CRF dekodiert wird
func (c *Config) UseCRF() bool { return c.useCRF }

// SetClassSize speichert die Klassenanzahl ohne Pruefung. Der letzte Aufruf gewinnt.
func (c *Config) SetClassSize(classSize int) {
	c.classSize = classSize
	c.classSizeSet = true
}

// ClassSize gibt die zuletzt gesetzte Klassenanzahl zurueck, 0 wenn nie gesetzt
func (c *Config) ClassSize() int { return c.classSize }

// ClassSizeSet meldet, ob SetClassSize bereits aufgerufen wurde
func (c *Config) ClassSizeSet() bool { return c.classSizeSet }

// Validate prueft, ob die Config vollstaendig ist.
// Ein Nullwert (nicht ueber New gebaut) liefert ErrNotConfigured.
func (c *Config) Validate() error {
	if c == nil || !c.configured {
		return ErrNotConfigured
	}
	if !c.classSizeSet {
		return ErrClassSizeUnset
	}
	return nil
}
