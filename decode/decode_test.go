// decode_test.go - Unit Tests fuer Argmax und Viterbi
package decode

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/mat"

	"github.com/etagger/etagger/config"
)

// TestArgmax testet die Klassifikation pro Zeile
func TestArgmax(t *testing.T) {
	logits := mat.NewDense(3, 3, []float64{
		0.1, 0.8, 0.1,
		0.6, 0.2, 0.2,
		0.0, 0.1, 0.9,
	})

	tests := []struct {
		name   string
		length int
		want   []int
	}{
		{"Alle", 3, []int{1, 0, 2}},
		{"Gekuerzt", 2, []int{1, 0}},
		{"Zu lang", 5, []int{1, 0, 2}},
		{"Null", 0, []int{}},
		{"Negativ", -1, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Argmax(logits, tt.length)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

// TestViterbi testet, dass Uebergaenge die Argmax-Entscheidung ueberstimmen
func TestViterbi(t *testing.T) {
	// Klassen: 0=O, 1=B, 2=I
	emissions := mat.NewDense(3, 3, []float64{
		0, 2, 0,
		1, 0, 0.9,
		0, 0, 1,
	})
	// O -> I ist verboten
	inf := math.Inf(-1)
	transitions := mat.NewDense(3, 3, []float64{
		0, 0, inf,
		0, 0, 0,
		0, 0, 0,
	})

	path, err := Viterbi(emissions, transitions, 3)
	if err != nil {
		t.Fatalf("Unerwarteter Fehler: %v", err)
	}
	// Argmax waere B O I (verboten), Viterbi waehlt B I I
	if diff := cmp.Diff([]int{1, 2, 2}, path.Indices); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if math.Abs(path.Score-3.9) > 1e-9 {
		t.Errorf("Score: got %f, want 3.9", path.Score)
	}

	if diff := cmp.Diff([]int{1, 2, 2}, Argmax(emissions, 3)); diff == "" {
		t.Error("Argmax und Viterbi sollten sich unterscheiden")
	}
}

// TestViterbi_Shape testet falsche Dimensionen
func TestViterbi_Shape(t *testing.T) {
	_, err := Viterbi(mat.NewDense(2, 3, nil), mat.NewDense(2, 2, nil), 2)
	if !errors.Is(err, ErrShape) {
		t.Errorf("Erwartete ErrShape, bekam %v", err)
	}

	path, err := Viterbi(mat.NewDense(2, 2, nil), mat.NewDense(2, 2, nil), 0)
	if err != nil || len(path.Indices) != 0 {
		t.Errorf("Laenge 0: got %v, %v", path, err)
	}
}

// TestNewDecoder testet die Auswahl ueber Config.UseCRF
func TestNewDecoder(t *testing.T) {
	plain := config.New(10, false)
	plain.SetClassSize(2)
	crf := config.New(10, true)
	crf.SetClassSize(2)

	d, err := NewDecoder(plain, nil)
	if err != nil || d.CRF() {
		t.Fatalf("plain: got crf=%t err=%v", d.CRF(), err)
	}

	if _, err := NewDecoder(crf, nil); !errors.Is(err, ErrNoTransitions) {
		t.Errorf("Erwartete ErrNoTransitions, bekam %v", err)
	}
	if _, err := NewDecoder(crf, mat.NewDense(3, 3, nil)); !errors.Is(err, ErrShape) {
		t.Errorf("Erwartete ErrShape, bekam %v", err)
	}

	d, err = NewDecoder(crf, mat.NewDense(2, 2, []float64{0, -10, -10, 0}))
	if err != nil || !d.CRF() {
		t.Fatalf("crf: got %v", err)
	}

	// Emission bevorzugt 0 dann 1, Uebergang 0->1 kostet mehr als der Gewinn
	emissions := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	got, err := d.Decode(emissions, 2)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff([]int{0, 0}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
