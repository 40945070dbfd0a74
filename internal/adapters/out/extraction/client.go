// Package extraction implements the client for the PDF-extraction service.
//
// The service exposes one GET endpoint per extracted collection. Responses are
// plain JSON arrays; a missing collection comes back as an empty array, not an
// error, so an empty slice is a meaningful answer here.
package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"workshop/internal/core/domain/model/artifact"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/metrics"
)

const defaultTimeout = 15 * time.Second

// Client talks to the extraction service over HTTP with a bearer token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates an extraction client for the given base URL.
// The token is sent as a bearer credential on every request.
func NewClient(baseURL, token string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", err)
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// NestingResults fetches the ranked result blocks of a nesting artifact.
func (c *Client) NestingResults(ctx context.Context, ref string) ([]artifact.ResultBlock, error) {
	var blocks []artifact.ResultBlock
	if err := c.get(ctx, "/nesting/results", ref, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

// NestingPlateInfo fetches the plate-info rows of a nesting artifact.
func (c *Client) NestingPlateInfo(ctx context.Context, ref string) ([]artifact.Row, error) {
	return c.getRows(ctx, "/nesting/plate-info", ref)
}

// NestingPartInfo fetches the part-info rows of a nesting artifact.
func (c *Client) NestingPartInfo(ctx context.Context, ref string) ([]artifact.Row, error) {
	return c.getRows(ctx, "/nesting/part-info", ref)
}

// StandardSubnest fetches the subnest rows of a standard artifact.
func (c *Client) StandardSubnest(ctx context.Context, ref string) ([]artifact.Row, error) {
	return c.getRows(ctx, "/standard/subnest", ref)
}

// StandardParts fetches the parts rows of a standard artifact.
func (c *Client) StandardParts(ctx context.Context, ref string) ([]artifact.Row, error) {
	return c.getRows(ctx, "/standard/parts", ref)
}

// StandardMaterial fetches the material rows of a standard artifact.
func (c *Client) StandardMaterial(ctx context.Context, ref string) ([]artifact.Row, error) {
	return c.getRows(ctx, "/standard/material", ref)
}

func (c *Client) getRows(ctx context.Context, path, ref string) ([]artifact.Row, error) {
	var rows []artifact.Row
	if err := c.get(ctx, path, ref, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) get(ctx context.Context, path, ref string, out any) error {
	if ref == "" {
		return errs.NewValueIsRequiredError("ref")
	}

	endpoint := fmt.Sprintf("%s%s?ref=%s", c.baseURL, path, url.QueryEscape(ref))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.ExtractionDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("extraction service returned %d for %s", resp.StatusCode, path)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
