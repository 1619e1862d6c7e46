package ports

import (
	"context"
	"time"

	"deadletter-watchdog/internal/core/domain"

	"github.com/google/uuid"
)

// DeadletterService lists dead-letter transactions enriched from the
// downstream detail sources. Listing is fail-open: downstream outages
// degrade to partial or empty pages, never to an error.
type DeadletterService interface {
	// ListByDate serves the deprecated single-day v1 listing.
	ListByDate(ctx context.Context, date time.Time, pageNumber, pageSize int) (*domain.DeadletterPage, error)
	// ListByDateRange serves the v2 date-range listing.
	ListByDateRange(ctx context.Context, from, to time.Time, pageNumber, pageSize int) (*domain.DeadletterPage, error)
}

// ActionService manages the remediation action log.
type ActionService interface {
	RecordAction(ctx context.Context, transactionID, userID, actionValue string) (*domain.Action, error)
	ListActions(ctx context.Context, transactionID, userID string) ([]domain.Action, error)
	ListActionTypes() []domain.ActionType
}

// AuthService authenticates console operators.
type AuthService interface {
	// Login returns a signed session token and its expiry.
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}

// TokenService handles JWT session token operations.
type TokenService interface {
	Generate(operatorID uuid.UUID, username string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	OperatorID uuid.UUID
	Username   string
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}
