// model.go - Lineares Sequence-Labeling-Modell
//
// Enthaelt:
// - Params: Embeddings, Projektion, Bias und optionale CRF-Uebergaenge
// - Build: prueft alle Gewichte gegen die Config (chr/pos/etc-Dimension, Klassenanzahl)
// - Model.Forward: Emissionen aus mittlerem Zeichen-Embedding, POS-Embedding und Features
//
// Registriert sich als Architektur "linear".
package linear

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/etagger/etagger/config"
	"github.com/etagger/etagger/input"
	"github.com/etagger/etagger/model"
	"github.com/etagger/etagger/vocab"
)

var errEmptyBatch = errors.New("linear: empty batch")

// Params enthaelt alle Gewichte des Modells
type Params struct {
	CharEmbedding *mat.Dense // [chars x chr_dim]
	PosEmbedding  *mat.Dense // [pos x pos_dim]
	Projection    *mat.Dense // [(chr_dim+pos_dim+etc_dim) x class_size]
	Bias          *mat.Dense // [1 x class_size]
	WordBias      *mat.Dense // [words x class_size]
	Transitions   *mat.Dense // [class_size x class_size], nil ohne CRF
}

// NewParams erstellt mit Nullen gefuellte Gewichte in den passenden Dimensionen
func NewParams(cfg *config.Config, sizes model.Sizes) Params {
	p := Params{
		CharEmbedding: mat.NewDense(sizes.Chars, cfg.ChrDim(), nil),
		PosEmbedding:  mat.NewDense(sizes.Pos, cfg.PosDim(), nil),
		Projection:    mat.NewDense(featureDim(cfg), cfg.ClassSize(), nil),
		Bias:          mat.NewDense(1, cfg.ClassSize(), nil),
		WordBias:      mat.NewDense(sizes.Words, cfg.ClassSize(), nil),
	}
	if cfg.UseCRF() {
		p.Transitions = mat.NewDense(cfg.ClassSize(), cfg.ClassSize(), nil)
	}
	return p
}

func featureDim(cfg *config.Config) int {
	return cfg.ChrDim() + cfg.PosDim() + cfg.EtcDim()
}

// Model ist ein lineares Modell ueber Wort-Features
type Model struct {
	cfg    *config.Config
	params Params
}

type shapeCheck struct {
	name       string
	m          *mat.Dense
	rows, cols int
}

// Build prueft die Gewichte gegen Config und Vokabular-Groessen
func Build(cfg *config.Config, sizes model.Sizes, p Params) (*Model, error) {
	classes := cfg.ClassSize()
	checks := []shapeCheck{
		{"char_embedding", p.CharEmbedding, sizes.Chars, cfg.ChrDim()},
		{"pos_embedding", p.PosEmbedding, sizes.Pos, cfg.PosDim()},
		{"projection", p.Projection, featureDim(cfg), classes},
		{"bias", p.Bias, 1, classes},
		{"word_bias", p.WordBias, sizes.Words, classes},
	}
	if cfg.UseCRF() {
		checks = append(checks, shapeCheck{"transitions", p.Transitions, classes, classes})
	}

	for _, c := range checks {
		if err := model.CheckShape(c.name, c.m, c.rows, c.cols); err != nil {
			return nil, err
		}
	}

	if !cfg.UseCRF() {
		p.Transitions = nil
	}

	return &Model{cfg: cfg, params: p}, nil
}

// New liest die Gewichte und baut das Modell
func New(cfg *config.Config, sizes model.Sizes, weights io.Reader) (model.Model, error) {
	p, err := ReadParams(weights, cfg.UseCRF())
	if err != nil {
		return nil, err
	}
	return Build(cfg, sizes, p)
}

// Transitions gibt die CRF-Uebergaenge zurueck, nil ohne CRF
func (m *Model) Transitions() mat.Matrix {
	if m.params.Transitions == nil {
		return nil
	}
	return m.params.Transitions
}

// Forward berechnet die Emissionen fuer Satz i des Batches
func (m *Model) Forward(b *input.Batch, i int) (*mat.Dense, error) {
	if b.MaxLength == 0 {
		return nil, errEmptyBatch
	}

	features := mat.NewDense(b.MaxLength, featureDim(m.cfg), nil)
	for t := range b.MaxLength {
		if err := m.fillFeatures(features.RawRowView(t), b, i, t); err != nil {
			return nil, err
		}
	}

	var emissions mat.Dense
	emissions.Mul(features, m.params.Projection)

	bias := m.params.Bias.RawRowView(0)
	words, _ := m.params.WordBias.Dims()
	for t := range b.MaxLength {
		wid := b.WordIDs[i][t]
		if wid < 0 || wid >= words {
			return nil, fmt.Errorf("word id %d out of range", wid)
		}

		row := emissions.RawRowView(t)
		wordBias := m.params.WordBias.RawRowView(wid)
		for c := range row {
			row[c] += bias[c] + wordBias[c]
		}
	}

	return &emissions, nil
}

// fillFeatures schreibt [mittleres Zeichen-Embedding | POS-Embedding | etc] nach dst
func (m *Model) fillFeatures(dst []float64, b *input.Batch, i, t int) error {
	chrDim, posDim := m.cfg.ChrDim(), m.cfg.PosDim()
	chars, _ := m.params.CharEmbedding.Dims()

	n := 0
	for _, cid := range b.CharIDs[i][t] {
		if cid == vocab.PadID {
			continue
		}
		if cid < 0 || cid >= chars {
			return fmt.Errorf("char id %d out of range", cid)
		}
		for d, v := range m.params.CharEmbedding.RawRowView(cid) {
			dst[d] += v
		}
		n++
	}
	if n > 0 {
		for d := range chrDim {
			dst[d] /= float64(n)
		}
	}

	pid := b.PosIDs[i][t]
	if pos, _ := m.params.PosEmbedding.Dims(); pid < 0 || pid >= pos {
		return fmt.Errorf("pos id %d out of range", pid)
	}
	copy(dst[chrDim:chrDim+posDim], m.params.PosEmbedding.RawRowView(pid))
	copy(dst[chrDim+posDim:], b.Etc[i][t])
	return nil
}

func init() {
	model.Register("linear", New)
}
