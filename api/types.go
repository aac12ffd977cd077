// types.go - Request- und Response-Typen der API
// Enthaelt: StatusError, Token, TagRequest, TagResponse, ConfigResponse
// Siehe types_utils.go fuer Duration
package api

import (
	"fmt"
	"time"

	"github.com/etagger/etagger/config"
	"github.com/etagger/etagger/input"
)

// StatusError is an error with an HTTP status code and message.
type StatusError struct {
	StatusCode   int
	Status       string
	ErrorMessage string `json:"error"`
}

func (e StatusError) Error() string {
	switch {
	case e.Status != "" && e.ErrorMessage != "":
		return fmt.Sprintf("%s: %s", e.Status, e.ErrorMessage)
	case e.Status != "":
		return e.Status
	case e.ErrorMessage != "":
		return e.ErrorMessage
	default:
		// this should not happen
		return "something went wrong, please see the etagger server logs for details"
	}
}

// Token is a single word of a sentence with its part-of-speech tag.
type Token struct {
	Word string `json:"word"`
	Pos  string `json:"pos"`
}

// TagRequest is the request passed to [Client.Tag].
type TagRequest struct {
	Sentences [][]Token `json:"sentences"`

	// Timeout bounds the request; the server caps it at its own limit.
	Timeout *Duration `json:"timeout,omitempty"`
}

// Input converts the request into encoder sentences.
func (r *TagRequest) Input() []input.Sentence {
	sentences := make([]input.Sentence, len(r.Sentences))
	for i, s := range r.Sentences {
		sentences[i] = make(input.Sentence, len(s))
		for j, tok := range s {
			sentences[i][j] = input.Token{Word: tok.Word, Pos: tok.Pos}
		}
	}
	return sentences
}

// TagResponse is the response from [Client.Tag].
type TagResponse struct {
	Tags          [][]string    `json:"tags"`
	TotalDuration time.Duration `json:"total_duration,omitempty"`
}

// ConfigResponse is the response from [Client.Config].
type ConfigResponse struct {
	Config config.Snapshot `json:"config"`
	Tags   []string        `json:"tags"`
}
