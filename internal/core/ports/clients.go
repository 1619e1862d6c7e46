package ports

import (
	"context"
	"time"

	"deadletter-watchdog/internal/core/domain"
)

// DeadLetterSearchResult is one page of the primary dead-letter search.
type DeadLetterSearchResult struct {
	Events []domain.DeadLetterEvent
	Page   domain.PageInfo
}

// HelpdeskClient wraps the ecommerce helpdesk API. Each call returns a
// single result or fails independently; the orchestrator decides what a
// failure degrades to.
type HelpdeskClient interface {
	// SearchDeadLetterEventsByDate searches one calendar day.
	//
	// Deprecated: switch to SearchDeadLetterEventsByDateRange.
	SearchDeadLetterEventsByDate(ctx context.Context, date time.Time, pageNumber, pageSize int) (*DeadLetterSearchResult, error)
	// SearchDeadLetterEventsByDateRange searches the calendar days from
	// "from" through "to" inclusive, additionally excluding the REDIRECT
	// gateway server-side.
	SearchDeadLetterEventsByDateRange(ctx context.Context, from, to time.Time, pageNumber, pageSize int) (*DeadLetterSearchResult, error)
	// SearchTransaction returns the first transaction matching the id, or
	// nil when the search comes back empty.
	SearchTransaction(ctx context.Context, transactionID string) (*domain.TransactionDetail, error)
	// SearchNpgOperations returns the gateway operation detail for a
	// transaction. Only meaningful for NPG transactions.
	SearchNpgOperations(ctx context.Context, transactionID string) (*domain.GatewayOperations, error)
}

// NodoClient wraps the clearing-house technical-support API.
type NodoClient interface {
	// SearchByNoticeNumberAndFiscalCode looks up a payment by the pair
	// extracted from an rptId, within the given date window.
	SearchByNoticeNumberAndFiscalCode(ctx context.Context, noticeNumber, fiscalCode string, dateFrom, dateTo time.Time) (*domain.NodoDetail, error)
}
