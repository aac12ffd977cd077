// params.go - Binaerformat der Gewichte
//
// Die Gewichtsdatei ist eine Folge von gonum-Dense-Blobs in der Reihenfolge
// char_embedding, pos_embedding, projection, bias, word_bias[, transitions].
package linear

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
)

type field struct {
	name string
	m    **mat.Dense
}

func (p *Params) fields(crf bool) []field {
	fields := []field{
		{"char_embedding", &p.CharEmbedding},
		{"pos_embedding", &p.PosEmbedding},
		{"projection", &p.Projection},
		{"bias", &p.Bias},
		{"word_bias", &p.WordBias},
	}
	if crf {
		fields = append(fields, field{"transitions", &p.Transitions})
	}
	return fields
}

// ReadParams liest die Gewichte; transitions nur wenn crf gesetzt ist
func ReadParams(r io.Reader, crf bool) (Params, error) {
	var p Params
	for _, f := range p.fields(crf) {
		var d mat.Dense
		if _, err := d.UnmarshalBinaryFrom(r); err != nil {
			return Params{}, fmt.Errorf("read %s: %w", f.name, err)
		}
		*f.m = &d
	}
	return p, nil
}

// WriteParams schreibt die Gewichte; transitions nur wenn gesetzt
func WriteParams(w io.Writer, p Params) error {
	for _, f := range p.fields(p.Transitions != nil) {
		if *f.m == nil {
			return fmt.Errorf("write %s: missing", f.name)
		}
		if _, err := (*f.m).MarshalBinaryTo(w); err != nil {
			return fmt.Errorf("write %s: %w", f.name, err)
		}
	}
	return nil
}
