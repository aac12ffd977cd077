// config_features.go - Modell- und Parallelitaets-Konfiguration
//
// Dieses Modul enthaelt:
// - Modell-Defaults (Wortlaenge, CRF)
// - Parallelitaets-Einstellungen
package envconfig

// =============================================================================
// Modell-Defaults
// =============================================================================

// DefaultWordLength ist der Default fuer ETAGGER_WORD_LENGTH
const DefaultWordLength = 15

var (
	// WordLength ist die maximale Zeichenanzahl pro Wort, wenn kein Manifest sie setzt
	WordLength = Uint("ETAGGER_WORD_LENGTH", DefaultWordLength)

	// UseCRF waehlt die CRF-Dekodierung, wenn kein Manifest sie setzt
	UseCRF = BoolWithDefault("ETAGGER_USE_CRF")

	// MaxSentenceLength begrenzt Saetze beim Kodieren (0 = laengster Satz im Batch)
	MaxSentenceLength = Uint("ETAGGER_MAX_SENTENCE_LENGTH", 0)
)

// =============================================================================
// Parallelitaets-Einstellungen
// =============================================================================

var (
	// NumParallel setzt die Anzahl parallel dekodierter Saetze
	// Konfigurierbar via ETAGGER_NUM_PARALLEL
	NumParallel = Uint("ETAGGER_NUM_PARALLEL", 4)

	// MaxBatchSize begrenzt die Saetze pro Request
	// Konfigurierbar via ETAGGER_MAX_BATCH_SIZE
	MaxBatchSize = Uint("ETAGGER_MAX_BATCH_SIZE", 256)
)
