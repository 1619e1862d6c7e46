package domain

import (
	"time"

	"github.com/google/uuid"
)

// Operator is a console user allowed to inspect dead-letter transactions
// and record remediation actions.
type Operator struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
}
