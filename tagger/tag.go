// tag.go - Taggen von Saetzen
package tagger

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/etagger/etagger/input"
	"github.com/etagger/etagger/model"
)

// Tag kodiert die Saetze als Batch und dekodiert jeden Satz parallel.
// Das Ergebnis hat pro Satz genau so viele Tags wie Tokens nach dem Kuerzen.
func (s *Session) Tag(ctx context.Context, sentences []input.Sentence) ([][]string, error) {
	start := time.Now()
	out := make([][]string, len(sentences))

	b, err := s.encoder.Encode(sentences, s.maxLength, false)
	if err != nil {
		return nil, err
	}
	if b.MaxLength == 0 {
		for i := range out {
			out[i] = []string{}
		}
		return out, nil
	}

	indices := make([][]int, len(sentences))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallel)
	for i := range sentences {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			emissions, err := model.Forward(s.model, b, i)
			if err != nil {
				return err
			}

			indices[i], err = s.decoder.Decode(emissions, b.Lengths[i])
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out = s.encoder.LogitsIndicesToTagsSeq(indices, b.Lengths)
	slog.Debug("tagged batch", "sentences", len(sentences), "max_length", b.MaxLength, "crf", s.decoder.CRF(), "duration", time.Since(start))
	return out, nil
}
