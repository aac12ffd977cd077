// client_api.go - API-Methoden des Clients
// Enthaelt: Heartbeat, Tag, Show, Config, Version
package api

import (
	"context"
	"net/http"

	"github.com/etagger/etagger/config"
)

// Heartbeat checks if the server has started and is responsive; if yes, it
// returns nil, otherwise an error.
func (c *Client) Heartbeat(ctx context.Context) error {
	if err := c.do(ctx, http.MethodHead, "/", nil, nil); err != nil {
		return err
	}
	return nil
}

// Tag labels every token of the given sentences.
func (c *Client) Tag(ctx context.Context, req *TagRequest) (*TagResponse, error) {
	var resp TagResponse
	if err := c.do(ctx, http.MethodPost, "/api/tag", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Show returns the hyperparameters and output tags of the loaded model.
func (c *Client) Show(ctx context.Context) (*ConfigResponse, error) {
	var resp ConfigResponse
	if err := c.do(ctx, http.MethodGet, "/api/config", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Config returns the hyperparameters of the loaded model.
func (c *Client) Config(ctx context.Context) (*config.Snapshot, error) {
	resp, err := c.Show(ctx)
	if err != nil {
		return nil, err
	}
	return &resp.Config, nil
}

// Version returns the etagger server version as a string.
func (c *Client) Version(ctx context.Context) (string, error) {
	var version struct {
		Version string `json:"version"`
	}

	if err := c.do(ctx, http.MethodGet, "/api/version", nil, &version); err != nil {
		return "", err
	}

	return version.Version, nil
}
