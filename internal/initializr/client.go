// Package initializr is the HTTP client for the Spring Initializr
// service: one call fetches the capability metadata, a second submits
// the chosen configuration and streams back the generated archive.
package initializr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// DefaultServiceURL is the public Spring Initializr endpoint.
const DefaultServiceURL = "https://start.spring.io"

// generatePath is the archive-generation endpoint relative to the base URL.
const generatePath = "/starter.zip"

// GenerateRequest carries the finished project configuration into the
// generation call. Dependencies holds unique starter ids in selection order.
type GenerateRequest struct {
	Type         string
	Name         string
	GroupID      string
	ArtifactID   string
	JavaVersion  string
	BootVersion  string
	Description  string
	Dependencies []string
}

// Client talks to one Initializr service instance.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client for the given base URL. A nil http.Client
// falls back to a default with a 30 second timeout. A zero timeout on
// the provided client means the calls block until the service responds.
func NewClient(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

// Metadata fetches the capability snapshot from the service root.
// Single attempt, no retry; any failure wraps ErrMetadataFetch.
func (c *Client) Metadata(ctx context.Context) (*Metadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrMetadataFetch, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "springen")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrMetadataFetch, resp.StatusCode)
	}

	m, err := parseMetadata(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataFetch, err)
	}
	return m, nil
}

// Generate submits the configuration as a multipart form and returns the
// archive body stream. The caller owns the returned ReadCloser. A non-2xx
// response wraps ErrDownload and nothing is written anywhere.
func (c *Client) Generate(ctx context.Context, gr GenerateRequest) (io.ReadCloser, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"type":        gr.Type,
		"name":        gr.Name,
		"groupId":     gr.GroupID,
		"artifactId":  gr.ArtifactID,
		"javaVersion": gr.JavaVersion,
		"bootVersion": gr.BootVersion,
		"description": gr.Description,
	}
	if len(gr.Dependencies) > 0 {
		fields["dependencies"] = strings.Join(gr.Dependencies, ",")
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("%w: write form field %q: %v", ErrDownload, name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("%w: finalize form: %v", ErrDownload, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, &buf)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrDownload, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("User-Agent", "springen")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: unexpected status %d", ErrDownload, resp.StatusCode)
	}

	return resp.Body, nil
}
