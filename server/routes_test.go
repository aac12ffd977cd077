// routes_test.go - Tests fuer Router, Handler und API-Client
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/etagger/etagger/api"
	"github.com/etagger/etagger/config"
	"github.com/etagger/etagger/input"
	"github.com/etagger/etagger/version"
)

// fakeTagger taggt jedes Wort mit seinem POS-Tag
type fakeTagger struct {
	err error
}

func (f fakeTagger) Tag(ctx context.Context, sentences []input.Sentence) ([][]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]string, len(sentences))
	for i, s := range sentences {
		out[i] = make([]string, len(s))
		for j, tok := range s {
			out[i][j] = tok.Pos
		}
	}
	return out, nil
}

func (fakeTagger) Config() config.Snapshot {
	c := config.New(10, true)
	c.SetClassSize(17)
	return c.Freeze()
}

func (fakeTagger) Tags() []string { return []string{"O", "B-PER"} }

func newTestClient(t *testing.T, tg Tagger) *api.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts := httptest.NewServer(NewServer(nil, tg).GenerateRoutes())
	t.Cleanup(ts.Close)

	base, err := url.Parse(ts.URL)
	if err != nil {
		t.Fatalf("url.Parse: %v", err)
	}
	return api.NewClient(base, ts.Client())
}

// TestClient_Tag testet /api/tag ueber den Client
func TestClient_Tag(t *testing.T) {
	client := newTestClient(t, fakeTagger{})

	resp, err := client.Tag(t.Context(), &api.TagRequest{Sentences: [][]api.Token{
		{{Word: "Peter", Pos: "NNP"}, {Word: "spoke", Pos: "VBD"}},
		{},
	}})
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}

	want := [][]string{{"NNP", "VBD"}, {}}
	if diff := cmp.Diff(want, resp.Tags); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

// TestClient_ConfigAndVersion testet /api/config, /api/version und Heartbeat
func TestClient_ConfigAndVersion(t *testing.T) {
	client := newTestClient(t, fakeTagger{})

	if err := client.Heartbeat(t.Context()); err != nil {
		t.Fatalf("Heartbeat: %v", err)
	}

	cfg, err := client.Config(t.Context())
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	want := config.Snapshot{ChrDim: 50, PosDim: 6, EtcDim: 9, WordLength: 10, UseCRF: true, ClassSize: 17}
	if diff := cmp.Diff(want, *cfg); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	v, err := client.Version(t.Context())
	if err != nil || v != version.Version {
		t.Errorf("Version: got %q, %v", v, err)
	}
}

// TestTagHandler_Errors testet Fehlerantworten
func TestTagHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		tagger Tagger
		body   string
		status int
	}{
		{"Kein Body", fakeTagger{}, "", http.StatusBadRequest},
		{"Kaputtes JSON", fakeTagger{}, "{", http.StatusBadRequest},
		{"Modell-Fehler", fakeTagger{err: errors.New("boom")}, `{"sentences":[[{"word":"a","pos":"X"}]]}`, http.StatusInternalServerError},
		{"Timeout", fakeTagger{err: context.DeadlineExceeded}, `{"sentences":[]}`, http.StatusGatewayTimeout},
	}

	gin.SetMode(gin.TestMode)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewServer(nil, tt.tagger).GenerateRoutes()
			req := httptest.NewRequest(http.MethodPost, "/api/tag", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Errorf("got %d, want %d: %s", w.Code, tt.status, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), `"error"`) {
				t.Errorf("Fehlermeldung fehlt: %s", w.Body.String())
			}
		})
	}

	// Client liefert StatusError
	client := newTestClient(t, fakeTagger{err: errors.New("boom")})
	_, err := client.Tag(t.Context(), &api.TagRequest{})
	var statusErr api.StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusInternalServerError || statusErr.ErrorMessage != "boom" {
		t.Errorf("Erwartete StatusError 500, bekam %v", err)
	}
}

// blockingTagger wartet bis der Kontext endet
type blockingTagger struct{ fakeTagger }

func (blockingTagger) Tag(ctx context.Context, _ []input.Sentence) ([][]string, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

// TestTagHandler_RequestTimeout testet das Timeout pro Anfrage
func TestTagHandler_RequestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewServer(nil, blockingTagger{}).GenerateRoutes()
	req := httptest.NewRequest(http.MethodPost, "/api/tag", strings.NewReader(`{"sentences":[],"timeout":"10ms"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusGatewayTimeout {
		t.Errorf("got %d, want 504: %s", w.Code, w.Body.String())
	}
}

// TestTagHandler_MaxBatchSize testet die Begrenzung der Satzanzahl
func TestTagHandler_MaxBatchSize(t *testing.T) {
	t.Setenv("ETAGGER_MAX_BATCH_SIZE", "1")
	gin.SetMode(gin.TestMode)

	h := NewServer(nil, fakeTagger{}).GenerateRoutes()
	req := httptest.NewRequest(http.MethodPost, "/api/tag", strings.NewReader(`{"sentences":[[],[]]}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("got %d, want 400", w.Code)
	}
}

// TestRequestID testet Uebernahme und Erzeugung der Request-ID
func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewServer(nil, fakeTagger{}).GenerateRoutes()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if _, err := uuid.Parse(w.Header().Get(RequestIDHeader)); err != nil {
		t.Errorf("Keine gueltige Request-ID: %q", w.Header().Get(RequestIDHeader))
	}

	id := uuid.NewString()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, id)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != id {
		t.Errorf("got %q, want %q", got, id)
	}
}

// TestAllowedHosts testet die Host-Pruefung bei Loopback-Listener
func TestAllowedHosts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	addr := &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8987}
	h := NewServer(addr, fakeTagger{}).GenerateRoutes()

	tests := []struct {
		host   string
		status int
	}{
		{"localhost:8987", http.StatusOK},
		{"127.0.0.1:8987", http.StatusOK},
		{"tagger.internal", http.StatusOK},
		{"example.com", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
			req.Host = tt.host
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			if w.Code != tt.status {
				t.Errorf("got %d, want %d", w.Code, tt.status)
			}
		})
	}
}
