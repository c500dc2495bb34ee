// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package remote is the adapter to the external document-conversion
// service. It issues exactly one network attempt per call and maps the
// service's responses and failures onto the shared result contract;
// retry and backoff are a caller concern.
package remote

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/textmill/internal/httputil"
	"github.com/pdiddy/textmill/pkg/types"
)

// fallbackErrorMessage is used when a non-200 body does not decode to a
// structured error.
const fallbackErrorMessage = "conversion service reported an error"

// convertRequest is the wire shape of one conversion request. Unset
// optional fields are omitted, not sent as null.
type convertRequest struct {
	Text           string            `json:"text"`
	From           string            `json:"from"`
	To             string            `json:"to"`
	Standalone     bool              `json:"standalone,omitempty"`
	TOC            bool              `json:"toc,omitempty"`
	NumberSections bool              `json:"number-sections,omitempty"`
	Wrap           string            `json:"wrap,omitempty"`
	HighlightStyle string            `json:"highlight-style,omitempty"`
	Template       string            `json:"template,omitempty"`
	Variables      map[string]string `json:"variables,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	ReferenceDoc   string            `json:"reference-doc,omitempty"`
	Files          map[string]string `json:"files,omitempty"`
}

// convertResponse is the success body: {"output": "..."}.
type convertResponse struct {
	Output *string `json:"output"`
}

// errorResponse is the failure body: {"message": "..."}.
type errorResponse struct {
	Message string `json:"message"`
}

// Client talks to the conversion service. Construct with NewClient.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	apiKey     string
	log        *logrus.Logger
}

// NewClient builds a Client from cfg. The log argument may be nil, in
// which case a discarding logger is used.
func NewClient(cfg types.RemoteConfig, log *logrus.Logger) *Client {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Client{
		httpClient: httputil.NewClient(cfg.HTTPConfig),
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		apiKey:     cfg.APIKey,
		log:        log,
	}
}

// BaseURL returns the configured service endpoint.
func (c *Client) BaseURL() string { return c.baseURL }

// Convert sends one conversion request and returns the converted output
// text. Failures map onto the shared taxonomy:
//
//   - transport failures (DNS, timeout, refusal): *types.RemoteNetworkError
//   - non-200 with a decodable {"message": ...} body, or not:
//     *types.RemoteServerError
//   - 200 with a malformed body: *types.RemoteInvalidResponseError
//
// When template is non-nil its backing file content is base64-encoded
// into the request's files map and referenced by a generated filename.
func (c *Client) Convert(ctx context.Context, text string, source, target types.Format, opts types.ConversionOptions, template []byte, templateKind types.TemplateKind) (string, error) {
	req := convertRequest{
		Text:           text,
		From:           string(source),
		To:             string(target),
		Standalone:     opts.Standalone,
		TOC:            opts.TableOfContents,
		NumberSections: opts.NumberSections,
		Wrap:           string(opts.Wrap),
		HighlightStyle: opts.HighlightStyle,
		Template:       opts.TemplatePath,
		Variables:      opts.Variables,
		Metadata:       opts.Metadata,
	}

	if template != nil {
		name := fmt.Sprintf("reference-%s.%s", uuid.NewString(), templateKind)
		req.ReferenceDoc = name
		req.Files = map[string]string{
			name: base64.StdEncoding.EncodeToString(template),
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encoding conversion request: %w", err)
	}

	c.log.WithFields(logrus.Fields{
		"from": source,
		"to":   target,
		"size": len(text),
	}).Debug("sending conversion request")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if httputil.IsTransportError(err) {
			return "", &types.RemoteNetworkError{Cause: err}
		}
		return "", fmt.Errorf("sending conversion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.decodeError(resp)
	}

	var out convertResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &types.RemoteInvalidResponseError{Cause: err}
	}
	if out.Output == nil {
		return "", &types.RemoteInvalidResponseError{Cause: fmt.Errorf("response body has no output field")}
	}

	return *out.Output, nil
}

// decodeError turns a non-200 response into a RemoteServerError,
// attempting the structured {"message": ...} body first and falling back
// to a fixed placeholder.
func (c *Client) decodeError(resp *http.Response) error {
	msg := fallbackErrorMessage
	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		msg = body.Message
	}
	return &types.RemoteServerError{StatusCode: resp.StatusCode, Message: msg}
}

// Healthy probes the service's version endpoint. It is a coarse liveness
// check: every failure kind, malformed responses included, collapses to
// false.
func (c *Client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/version", nil)
	if err != nil {
		return false
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK
}
