package helpdesk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"deadletter-watchdog/internal/core/domain"
	"deadletter-watchdog/internal/core/ports"

	"github.com/rs/zerolog"
)

// Statuses excluded from the dead-letter search: transactions in these
// states recovered on their own and need no operator attention.
var (
	excludedEcommerceStatuses = []string{
		"CANCELED",
		"NOTIFIED_OK",
		"NOTIFICATION_REQUESTED",
		"EXPIRED_NOT_AUTHORIZED",
	}
	excludedNpgStatuses = []string{"CANCELED"}
)

// excludedPaymentGateways is applied server-side by the date-range search
// only; the single-day variant predates the filter.
var excludedPaymentGateways = []string{"REDIRECT"}

const (
	eventSourceEcommerce = "ECOMMERCE"

	// Transaction search is keyed by a unique id; one page is plenty.
	transactionSearchPageSize = 10
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.HelpdeskClient against the ecommerce helpdesk API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a helpdesk API client.
func NewClient(baseURL, apiKey string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		log:        log,
	}
}

// --- wire types ---

type dateTimeRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type excludedStatuses struct {
	EcommerceStatuses []string `json:"ecommerceStatuses"`
	NpgStatuses       []string `json:"npgStatuses"`
}

type searchDeadLetterEventsRequest struct {
	Source                 string           `json:"source"`
	TimeRange              dateTimeRange    `json:"timeRange"`
	ExcludedStatuses       excludedStatuses `json:"excludedStatuses"`
	ExcludedPaymentGateway []string         `json:"excludedPaymentGateway,omitempty"`
}

type searchDeadLetterEventsResponse struct {
	DeadLetterEvents []domain.DeadLetterEvent `json:"deadLetterEvents"`
	Page             domain.PageInfo          `json:"page"`
}

type searchTransactionRequest struct {
	Type          string `json:"type"`
	TransactionID string `json:"transactionId"`
}

type searchTransactionResponse struct {
	Transactions []domain.TransactionDetail `json:"transactions"`
	Page         domain.PageInfo            `json:"page"`
}

type searchNpgOperationsRequest struct {
	IDTransaction string `json:"idTransaction"`
}

// SearchDeadLetterEventsByDate searches one calendar day.
//
// Deprecated: switch to SearchDeadLetterEventsByDateRange.
func (c *Client) SearchDeadLetterEventsByDate(ctx context.Context, date time.Time, pageNumber, pageSize int) (*ports.DeadLetterSearchResult, error) {
	start := startOfDayUTC(date)
	req := searchDeadLetterEventsRequest{
		Source: eventSourceEcommerce,
		TimeRange: dateTimeRange{
			StartDate: start.Format(time.RFC3339),
			EndDate:   start.AddDate(0, 0, 1).Format(time.RFC3339),
		},
		ExcludedStatuses: excludedStatuses{
			EcommerceStatuses: excludedEcommerceStatuses,
			NpgStatuses:       excludedNpgStatuses,
		},
	}
	return c.searchDeadLetterEvents(ctx, req, pageNumber, pageSize)
}

// SearchDeadLetterEventsByDateRange searches whole calendar days from
// "from" through "to" inclusive, excluding the REDIRECT gateway
// server-side.
func (c *Client) SearchDeadLetterEventsByDateRange(ctx context.Context, from, to time.Time, pageNumber, pageSize int) (*ports.DeadLetterSearchResult, error) {
	req := searchDeadLetterEventsRequest{
		Source: eventSourceEcommerce,
		TimeRange: dateTimeRange{
			StartDate: startOfDayUTC(from).Format(time.RFC3339),
			EndDate:   startOfDayUTC(to).AddDate(0, 0, 1).Format(time.RFC3339),
		},
		ExcludedStatuses: excludedStatuses{
			EcommerceStatuses: excludedEcommerceStatuses,
			NpgStatuses:       excludedNpgStatuses,
		},
		ExcludedPaymentGateway: excludedPaymentGateways,
	}
	return c.searchDeadLetterEvents(ctx, req, pageNumber, pageSize)
}

func (c *Client) searchDeadLetterEvents(ctx context.Context, req searchDeadLetterEventsRequest, pageNumber, pageSize int) (*ports.DeadLetterSearchResult, error) {
	url := fmt.Sprintf("%s/ecommerce/searchDeadLetterEvent?pageNumber=%d&pageSize=%d", c.baseURL, pageNumber, pageSize)

	var resp searchDeadLetterEventsResponse
	if err := c.post(ctx, url, req, &resp); err != nil {
		return nil, fmt.Errorf("search dead letter events: %w", err)
	}

	return &ports.DeadLetterSearchResult{
		Events: resp.DeadLetterEvents,
		Page:   resp.Page,
	}, nil
}

// SearchTransaction returns the first transaction matching the id, or nil
// when the search comes back empty.
func (c *Client) SearchTransaction(ctx context.Context, transactionID string) (*domain.TransactionDetail, error) {
	url := fmt.Sprintf("%s/ecommerce/searchTransaction?pageNumber=0&pageSize=%d", c.baseURL, transactionSearchPageSize)

	req := searchTransactionRequest{
		Type:          "TRANSACTION_ID",
		TransactionID: transactionID,
	}

	var resp searchTransactionResponse
	if err := c.post(ctx, url, req, &resp); err != nil {
		return nil, fmt.Errorf("search transaction %s: %w", transactionID, err)
	}

	if len(resp.Transactions) == 0 {
		return nil, nil
	}
	return &resp.Transactions[0], nil
}

// SearchNpgOperations returns the NPG operation detail for a transaction.
func (c *Client) SearchNpgOperations(ctx context.Context, transactionID string) (*domain.GatewayOperations, error) {
	url := c.baseURL + "/ecommerce/searchNpgOperations"

	req := searchNpgOperationsRequest{IDTransaction: transactionID}

	var resp domain.GatewayOperations
	if err := c.post(ctx, url, req, &resp); err != nil {
		return nil, fmt.Errorf("search npg operations %s: %w", transactionID, err)
	}
	return &resp, nil
}

// post issues a JSON POST and decodes the response into out.
func (c *Client) post(ctx context.Context, url string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("url", url).Msg("helpdesk request failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn().Int("status", resp.StatusCode).Str("url", url).Msg("helpdesk request rejected")
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// startOfDayUTC truncates a time to midnight UTC.
func startOfDayUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
