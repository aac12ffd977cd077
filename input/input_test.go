// input_test.go - Unit Tests fuer Reader, Encoder und Features
package input

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/etagger/etagger/config"
	"github.com/etagger/etagger/vocab"
)

const conll = "EU NNP B-NP B-ORG\nrejects VBZ B-VP O\n\r\nPeter NNP B-NP B-PER\nBlackburn NNP I-NP I-PER\nspoke VBD B-VP O\n\nLondon NNP B-NP B-LOC\n"

func newTestEncoder(t *testing.T, wordLength int) *Encoder {
	t.Helper()

	v, err := vocab.New(
		[]string{"eu", "rejects", "peter", "london"},
		[]string{"E", "U", "r", "e"},
		[]string{"NNP", "VBZ"},
		[]string{"O", "B-ORG", "B-PER", "I-PER", "B-LOC"},
	)
	if err != nil {
		t.Fatalf("vocab.New: %v", err)
	}

	cfg := config.New(wordLength, false)
	v.Apply(cfg)

	e, err := NewEncoder(cfg, v)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	return e
}

// TestReadSentences testet das Lesen von Saetzen
func TestReadSentences(t *testing.T) {
	sentences, err := ReadSentences(strings.NewReader(conll))
	if err != nil {
		t.Fatalf("Unerwarteter Fehler: %v", err)
	}

	if len(sentences) != 3 {
		t.Fatalf("got %d Saetze, want 3", len(sentences))
	}
	want := Sentence{
		{Word: "EU", Pos: "NNP", Chunk: "B-NP", Tag: "B-ORG"},
		{Word: "rejects", Pos: "VBZ", Chunk: "B-VP", Tag: "O"},
	}
	if diff := cmp.Diff(want, sentences[0]); diff != "" {
		t.Errorf("Satz 0 (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"London"}, sentences[2].Words()); diff != "" {
		t.Errorf("Satz 2 (-want +got):\n%s", diff)
	}
}

// TestReadSentences_ParseError testet Zeilen mit falscher Spaltenzahl
func TestReadSentences_ParseError(t *testing.T) {
	_, err := ReadSentences(strings.NewReader("EU NNP B-NP B-ORG\nrejects VBZ O\n"))

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Erwartete ParseError, bekam %v", err)
	}
	if parseErr.Line != 2 || !errors.Is(err, ErrColumns) {
		t.Errorf("got line %d, err %v", parseErr.Line, err)
	}
}

// TestFindMaxLength testet, dass nur abgeschlossene Saetze zaehlen
func TestFindMaxLength(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"Beispiel", conll, 3},
		{"Leer", "", 0},
		{"Ohne Leerzeile", "a b c d\na b c d\n", 0},
		{"CRLF", "a b c d\r\na b c d\r\n\r\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindMaxLength(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Unerwarteter Fehler: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

// TestEncode testet Auffuellen und Kuerzen aller Tensoren
func TestEncode(t *testing.T) {
	e := newTestEncoder(t, 3)
	sentences, err := ReadSentences(strings.NewReader(conll))
	if err != nil {
		t.Fatalf("ReadSentences: %v", err)
	}

	b, err := e.Encode(sentences, 0, true)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if b.MaxLength != 3 || b.Len() != 3 {
		t.Fatalf("MaxLength %d, Len %d", b.MaxLength, b.Len())
	}
	if diff := cmp.Diff([]int{2, 3, 1}, b.Lengths); diff != "" {
		t.Errorf("Lengths (-want +got):\n%s", diff)
	}

	// "EU" wird kleingeschrieben gefunden, Padding mit PadID
	if diff := cmp.Diff([]int{2, 3, vocab.PadID}, b.WordIDs[0]); diff != "" {
		t.Errorf("WordIDs (-want +got):\n%s", diff)
	}
	// "rejects" auf 3 Zeichen gekuerzt: r, e, j(unbekannt)
	if diff := cmp.Diff([]int{4, 5, vocab.UnkID}, b.CharIDs[0][1]); diff != "" {
		t.Errorf("CharIDs (-want +got):\n%s", diff)
	}
	// "EU" auf 3 Zeichen aufgefuellt, Padding-Token komplett Pad
	if diff := cmp.Diff([][]int{{2, 3, 0}, {4, 5, 1}, {0, 0, 0}}, b.CharIDs[0]); diff != "" {
		t.Errorf("CharIDs (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 3, vocab.PadID}, b.PosIDs[0]); diff != "" {
		t.Errorf("PosIDs (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(make([]float64, 9), b.Etc[0][2]); diff != "" {
		t.Errorf("Etc-Padding (-want +got):\n%s", diff)
	}

	wantTags := [][]float64{
		{0, 1, 0, 0, 0},
		{1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	}
	if diff := cmp.Diff(wantTags, b.Tags[0]); diff != "" {
		t.Errorf("Tags (-want +got):\n%s", diff)
	}
}

// TestEncode_Truncate testet eine feste maximale Satzlaenge
func TestEncode_Truncate(t *testing.T) {
	e := newTestEncoder(t, 0)
	sentences, _ := ReadSentences(strings.NewReader(conll))

	b, err := e.Encode(sentences, 2, false)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if diff := cmp.Diff([]int{2, 2, 1}, b.Lengths); diff != "" {
		t.Errorf("Lengths (-want +got):\n%s", diff)
	}
	if b.Tags != nil {
		t.Error("Tags ohne withTags gesetzt")
	}
	// Wortlaenge 0: leere Zeichen-Vektoren
	if len(b.CharIDs[1][0]) != 0 {
		t.Errorf("CharIDs: got %v", b.CharIDs[1][0])
	}
}

// TestEncode_UnknownTag testet unbekannte Tags
func TestEncode_UnknownTag(t *testing.T) {
	e := newTestEncoder(t, 4)
	_, err := e.Encode([]Sentence{{{Word: "x", Pos: "NN", Tag: "B-MISC"}}}, 0, true)
	if !errors.Is(err, ErrUnknownTag) {
		t.Errorf("Erwartete ErrUnknownTag, bekam %v", err)
	}
}

// TestNewEncoder_Unconfigured testet eine Config ohne Klassenanzahl
func TestNewEncoder_Unconfigured(t *testing.T) {
	v, _ := vocab.New(nil, nil, nil, []string{"O"})
	if _, err := NewEncoder(config.New(5, false), v); !errors.Is(err, config.ErrClassSizeUnset) {
		t.Errorf("Erwartete ErrClassSizeUnset, bekam %v", err)
	}
}

// TestLogitConversion testet den Rueckweg zu Tags
func TestLogitConversion(t *testing.T) {
	e := newTestEncoder(t, 3)

	logit := [][]float64{
		{0.1, 0.7, 0.1, 0.05, 0.05},
		{0.9, 0.0, 0.0, 0.1, 0.0},
		{0.0, 0.0, 0.0, 0.0, 1.0},
	}
	if diff := cmp.Diff([]string{"B-ORG", "O"}, e.LogitToTags(logit, 2)); diff != "" {
		t.Errorf("LogitToTags (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"B-ORG", "O", "B-LOC"}, e.LogitToTags(logit, 10)); diff != "" {
		t.Errorf("LogitToTags geklemmt (-want +got):\n%s", diff)
	}

	seq := e.LogitsIndicesToTagsSeq([][]int{{2, 3, 0}, {4, 9}}, []int{2, 2})
	want := [][]string{{"B-PER", "I-PER"}, {"B-LOC", vocab.OutsideTag}}
	if diff := cmp.Diff(want, seq); diff != "" {
		t.Errorf("LogitsIndicesToTagsSeq (-want +got):\n%s", diff)
	}
}

// TestEtcFeatures testet die Form-Features
func TestEtcFeatures(t *testing.T) {
	tests := []struct {
		word string
		on   []int
	}{
		{"EU", []int{FeatAllUpper, FeatInitUpper}},
		{"Peter", []int{FeatInitUpper, FeatMixedCase}},
		{"spoke", []int{FeatAllLower}},
		{"1999", []int{FeatHasDigit, FeatAllDigit}},
		{"F-16", []int{FeatAllUpper, FeatInitUpper, FeatHasDigit, FeatHasPunct}},
		{".", []int{FeatHasPunct, FeatAllPunct, FeatSingleRune}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			want := make([]float64, config.DefaultEtcDim)
			for _, i := range tt.on {
				want[i] = 1
			}
			if diff := cmp.Diff(want, EtcFeatures(tt.word)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

// TestEncode_NFDChars testet, dass Zeichen in derselben Normalform wie Woerter gesucht werden
func TestEncode_NFDChars(t *testing.T) {
	v, err := vocab.New([]string{"caf\u00e9"}, []string{"c", "a", "f", "\u00e9"}, nil, []string{"O"})
	if err != nil {
		t.Fatalf("vocab.New: %v", err)
	}
	cfg := config.New(5, false)
	v.Apply(cfg)
	e, err := NewEncoder(cfg, v)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}

	b, err := e.Encode([]Sentence{{{Word: "cafe\u0301", Pos: "NN"}}}, 0, false)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if diff := cmp.Diff([]int{2}, b.WordIDs[0]); diff != "" {
		t.Errorf("WordIDs (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 3, 4, 5, vocab.PadID}, b.CharIDs[0][0]); diff != "" {
		t.Errorf("CharIDs (-want +got):\n%s", diff)
	}
}
