// session.go - Inferenz-Session fuer ein geladenes Modell
//
// Enthaelt:
// - Session: Config, Vokabular, Encoder, Modell und Decoder einer Session
// - Open: laedt Manifest, Vokabular und Gewichte aus einem Modell-Verzeichnis
// - NewSession: baut eine Session aus bereits geladenen Teilen
package tagger

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/etagger/etagger/config"
	"github.com/etagger/etagger/decode"
	"github.com/etagger/etagger/input"
	"github.com/etagger/etagger/model"
	"github.com/etagger/etagger/vocab"

	_ "github.com/etagger/etagger/model/models/linear"
)

// Session haelt alle Teile, die zum Taggen eines Satzes noetig sind.
// Nach Open wird nichts mehr veraendert; Tag darf parallel aufgerufen werden.
type Session struct {
	cfg     *config.Config
	encoder *input.Encoder
	model   model.Model
	decoder *decode.Decoder

	maxLength int
	parallel  int
}

// Options steuern Kodierung und Parallelitaet einer Session
type Options struct {
	// MaxLength kuerzt Saetze (0 = laengster Satz im Batch)
	MaxLength int

	// NumParallel begrenzt parallel dekodierte Saetze (<= 0 = 1)
	NumParallel int
}

// Open laedt ein Modell-Verzeichnis mit config.yaml, Vokabularen und Gewichten
func Open(dir string, opts Options) (*Session, error) {
	manifest, err := config.LoadManifest(filepath.Join(dir, config.ManifestName))
	if err != nil {
		return nil, err
	}

	v, err := vocab.LoadDir(dir, manifest.Vocab)
	if err != nil {
		return nil, err
	}

	cfg, err := v.Complete(manifest.Partial())
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(dir, manifest.Weights))
	if err != nil {
		return nil, fmt.Errorf("open weights: %w", err)
	}
	defer f.Close()

	sizes := model.Sizes{Words: v.WordSize(), Chars: v.CharSize(), Pos: v.PosSize()}
	m, err := model.New(manifest.Arch, cfg, sizes, f)
	if err != nil {
		return nil, err
	}

	s, err := NewSession(cfg, v, m, opts)
	if err != nil {
		return nil, err
	}

	slog.Info("model loaded", "dir", dir, "arch", manifest.Arch, "emb_class", manifest.EmbClass, "config", cfg.Freeze().String())
	return s, nil
}

// NewSession baut eine Session. Die Config muss vollstaendig sein.
func NewSession(cfg *config.Config, v *vocab.Vocab, m model.Model, opts Options) (*Session, error) {
	encoder, err := input.NewEncoder(cfg, v)
	if err != nil {
		return nil, err
	}

	decoder, err := decode.NewDecoder(cfg, m.Transitions())
	if err != nil {
		return nil, err
	}

	return &Session{
		cfg:       cfg,
		encoder:   encoder,
		model:     m,
		decoder:   decoder,
		maxLength: max(0, opts.MaxLength),
		parallel:  max(1, opts.NumParallel),
	}, nil
}

// Config gibt eine Kopie der Session-Config zurueck
func (s *Session) Config() config.Snapshot {
	return s.cfg.Freeze()
}

// Tags gibt alle Ausgabe-Tags in Vokabular-Reihenfolge zurueck
func (s *Session) Tags() []string {
	return s.encoder.Vocab().Tags()
}
