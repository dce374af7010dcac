// Package vidyutsvc implements the derivation engine port as a client
// for a vidyut derivation service speaking JSON over HTTP.
//
// The service contract is small: POST /tinantas and POST /krdantas take
// one derivation request and answer with a JSON array of derivations.
// GET /health answers 200 once the service has loaded its data files.
// Axis values travel as SLP1 names ("law", "kartari"), not ordinals.
package vidyutsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

// Client is a ports.Engine backed by a remote vidyut service.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the transport, e.g. to set timeouts.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type tinantaRequest struct {
	Dhatu    string `json:"dhatu"`
	Lakara   string `json:"lakara"`
	Prayoga  string `json:"prayoga"`
	Purusha  string `json:"purusha"`
	Vacana   string `json:"vacana"`
	Pada     string `json:"pada,omitempty"`
	Sanadi   string `json:"sanadi,omitempty"`
	Upasarga string `json:"upasarga,omitempty"`
}

type krdantaRequest struct {
	Dhatu    string `json:"dhatu"`
	Krt      string `json:"krt"`
	Sanadi   string `json:"sanadi,omitempty"`
	Upasarga string `json:"upasarga,omitempty"`
}

// Init probes the service health endpoint. The startup gate calls this
// once so a misconfigured base URL fails loudly instead of answering
// every derivation with a transport error.
func (c *Client) Init(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("vidyut service unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("vidyut service not ready: http %d", resp.StatusCode)
	}
	return nil
}

// DeriveTinantas asks the service for the forms of one paradigm cell.
func (c *Client) DeriveTinantas(ctx context.Context, args vyakarana.TinantaArgs) ([]vyakarana.Derivation, error) {
	req := tinantaRequest{
		Dhatu:    args.Dhatu,
		Lakara:   args.Lakara.String(),
		Prayoga:  args.Prayoga.String(),
		Purusha:  args.Purusha.String(),
		Vacana:   args.Vacana.String(),
		Upasarga: args.Upasarga,
	}
	if args.Pada != nil {
		req.Pada = args.Pada.String()
	}
	if args.Sanadi != nil {
		req.Sanadi = args.Sanadi.String()
	}

	var out []vyakarana.Derivation
	if err := c.post(ctx, "/tinantas", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeriveKrdantas asks the service for the forms of one krt affix.
func (c *Client) DeriveKrdantas(ctx context.Context, args vyakarana.KrdantaArgs) ([]vyakarana.Derivation, error) {
	req := krdantaRequest{
		Dhatu:    args.Dhatu,
		Krt:      args.Krt.String(),
		Upasarga: args.Upasarga,
	}
	if args.Sanadi != nil {
		req.Sanadi = args.Sanadi.String()
	}

	var out []vyakarana.Derivation
	if err := c.post(ctx, "/krdantas", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("vidyut service %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("vidyut service %s: http %d: %s", path, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
