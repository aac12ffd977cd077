// config_utils.go - Utility-Funktionen und Export fuer Konfiguration
//
// Dieses Modul enthaelt:
// - BoolWithDefault: Boolean-Getter mit Default-Wert
// - Uint: Integer-Getter mit Default-Wert
// - EnvVar: Struktur fuer Environment-Variablen-Info
// - AsMap: Gibt alle Konfigurationen als Map zurueck
// - Values: Gibt alle Konfigurationswerte als String-Map zurueck
package envconfig

import (
	"fmt"
	"log/slog"
	"strconv"
)

// =============================================================================
// Boolean-Getter
// =============================================================================

// BoolWithDefault gibt eine Funktion zurueck, die einen Bool mit Default-Wert liest
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// =============================================================================
// Integer-Getter
// =============================================================================

// Uint gibt eine Funktion zurueck, die einen uint mit Default-Wert liest
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// =============================================================================
// Export-Strukturen und -Funktionen
// =============================================================================

// EnvVar repraesentiert eine Environment-Variable mit Metadaten
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap gibt alle Konfigurationen als Map zurueck
// Enthaelt Namen, aktuelle Werte und Beschreibungen
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"ETAGGER_DEBUG":               {"ETAGGER_DEBUG", LogLevel(), "Show additional debug information (e.g. ETAGGER_DEBUG=1)"},
		"ETAGGER_HOST":                {"ETAGGER_HOST", Host(), "IP Address for the etagger server (default 127.0.0.1:8987)"},
		"ETAGGER_MODELS":              {"ETAGGER_MODELS", Models(), "The path to the models directory"},
		"ETAGGER_ORIGINS":             {"ETAGGER_ORIGINS", AllowedOrigins(), "A comma separated list of allowed origins"},
		"ETAGGER_REQUEST_TIMEOUT":     {"ETAGGER_REQUEST_TIMEOUT", RequestTimeout(), "How long a tag request may run (default \"30s\")"},
		"ETAGGER_WORD_LENGTH":         {"ETAGGER_WORD_LENGTH", WordLength(), "Characters per word when the model manifest has none (default: 15)"},
		"ETAGGER_USE_CRF":             {"ETAGGER_USE_CRF", UseCRF(false), "Decode with CRF when the model manifest has no setting"},
		"ETAGGER_MAX_SENTENCE_LENGTH": {"ETAGGER_MAX_SENTENCE_LENGTH", MaxSentenceLength(), "Truncate sentences to this many tokens (default: longest in batch)"},
		"ETAGGER_NUM_PARALLEL":        {"ETAGGER_NUM_PARALLEL", NumParallel(), "Maximum number of sentences decoded in parallel"},
		"ETAGGER_MAX_BATCH_SIZE":      {"ETAGGER_MAX_BATCH_SIZE", MaxBatchSize(), "Maximum number of sentences per request"},
	}
}

// Values gibt alle Konfigurationswerte als String-Map zurueck
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
