package ports

import (
	"context"

	"deadletter-watchdog/internal/core/domain"
)

// ActionRepository persists the append-only action log. There is no update
// or delete: remediation history is immutable once written.
type ActionRepository interface {
	Save(ctx context.Context, action *domain.Action) error
	FindByTransactionID(ctx context.Context, transactionID string) ([]domain.Action, error)
}

// OperatorRepository reads console operator accounts.
type OperatorRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.Operator, error)
}

// DetailCache is a short-TTL cache for enrichment transaction details, so
// console page refreshes do not re-fetch from the helpdesk API. All
// methods are best-effort: errors must degrade to a direct call.
type DetailCache interface {
	// GetTransactionDetail returns nil, nil on a cache miss.
	GetTransactionDetail(ctx context.Context, transactionID string) (*domain.TransactionDetail, error)
	SetTransactionDetail(ctx context.Context, transactionID string, detail *domain.TransactionDetail) error
}
