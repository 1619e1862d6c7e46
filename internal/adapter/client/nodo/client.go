package nodo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"deadletter-watchdog/internal/core/domain"

	"github.com/rs/zerolog"
)

const dateFormat = "2006-01-02"

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.NodoClient against the clearing-house
// technical-support API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a nodo technical-support API client.
func NewClient(baseURL, apiKey string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		log:        log,
	}
}

// SearchByNoticeNumberAndFiscalCode looks up a payment by notice number and
// organization fiscal code within the given date window.
func (c *Client) SearchByNoticeNumberAndFiscalCode(ctx context.Context, noticeNumber, fiscalCode string, dateFrom, dateTo time.Time) (*domain.NodoDetail, error) {
	endpoint := fmt.Sprintf("%s/organizations/%s/noticeNumber/%s?dateFrom=%s&dateTo=%s",
		c.baseURL,
		url.PathEscape(fiscalCode),
		url.PathEscape(noticeNumber),
		dateFrom.Format(dateFormat),
		dateTo.Format(dateFormat),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("notice_number", noticeNumber).Msg("nodo request failed")
		return nil, fmt.Errorf("nodo search notice %s: %w", noticeNumber, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn().Int("status", resp.StatusCode).Str("notice_number", noticeNumber).Msg("nodo request rejected")
		return nil, fmt.Errorf("nodo search notice %s: unexpected status %d", noticeNumber, resp.StatusCode)
	}

	var detail domain.NodoDetail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return nil, fmt.Errorf("decode nodo response: %w", err)
	}
	return &detail, nil
}
