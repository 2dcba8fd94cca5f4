// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package crossref fetches the most recent works of a journal from the
// Crossref REST API and reduces them to paper records.
package crossref

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/pdiddy/journal-digest/internal/httputil"
	"github.com/pdiddy/journal-digest/pkg/types"
)

// DefaultBaseURL is the public Crossref API root.
const DefaultBaseURL = "https://api.crossref.org"

// Row limits for the single request a run makes.
const (
	DefaultRows = 10
	MaxRows     = 100
)

// selectFields limits the response to what the digest displays.
const selectFields = "DOI,URL,title,abstract,published,published-online,published-print,issued,created"

var issnPattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{3}[0-9Xx]$`)

// Query selects the journal and an optional bibliographic search term.
type Query struct {
	ISSN string
	Term string
	Rows int
}

// Client talks to the Crossref works endpoint.
type Client struct {
	HTTP *http.Client
	// BaseURL defaults to DefaultBaseURL; tests point it at httptest.
	BaseURL   string
	UserAgent string
	// Mailto is sent as the mailto parameter for polite pool access.
	Mailto string
	Logger *slog.Logger
}

// NewClient returns a client configured from cfg.
func NewClient(cfg types.CrossrefConfig, logger *slog.Logger) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: cfg.Timeout},
		BaseURL:   DefaultBaseURL,
		UserAgent: cfg.UserAgent,
		Mailto:    cfg.Mailto,
		Logger:    logger,
	}
}

// Recent returns the newest works of q.ISSN, newest first, filtered by
// q.Term when it is set. Exactly one request is made.
func (c *Client) Recent(ctx context.Context, q Query) ([]types.PaperRecord, error) {
	reqURL, err := c.worksURL(q)
	if err != nil {
		return nil, err
	}
	c.logger().Debug("querying crossref", "url", reqURL)

	resp, err := httputil.Get(ctx, c.HTTP, reqURL, c.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("Crossref API request: %w", err)
	}
	defer resp.Body.Close()

	papers, err := decodeWorks(resp.Body)
	if err != nil {
		return nil, err
	}
	c.logger().Debug("crossref returned works", "count", len(papers))
	return papers, nil
}

func (c *Client) worksURL(q Query) (string, error) {
	issn := strings.TrimSpace(q.ISSN)
	if issn == "" {
		return "", fmt.Errorf("journal ISSN is required")
	}
	if !issnPattern.MatchString(issn) {
		return "", fmt.Errorf("invalid ISSN %q: want NNNN-NNNC", issn)
	}

	params := url.Values{
		"sort":   {"published"},
		"order":  {"desc"},
		"rows":   {fmt.Sprintf("%d", clampRows(q.Rows))},
		"select": {selectFields},
	}
	if term := strings.TrimSpace(q.Term); term != "" {
		params.Set("query.bibliographic", term)
	}
	if c.Mailto != "" {
		params.Set("mailto", c.Mailto)
	}

	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/") + "/journals/" + url.PathEscape(strings.ToUpper(issn)) + "/works?" + params.Encode(), nil
}

func (c *Client) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}

func clampRows(n int) int {
	switch {
	case n <= 0:
		return DefaultRows
	case n > MaxRows:
		return MaxRows
	default:
		return n
	}
}

func decodeWorks(r io.Reader) ([]types.PaperRecord, error) {
	var wr worksResponse
	if err := json.NewDecoder(r).Decode(&wr); err != nil {
		return nil, fmt.Errorf("parsing Crossref response: %w", err)
	}
	if wr.Status != "" && wr.Status != "ok" {
		return nil, fmt.Errorf("Crossref returned status %q", wr.Status)
	}

	papers := make([]types.PaperRecord, 0, len(wr.Message.Items))
	for _, item := range wr.Message.Items {
		papers = append(papers, item.record())
	}
	return papers, nil
}
