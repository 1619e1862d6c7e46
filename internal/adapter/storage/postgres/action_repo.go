package postgres

import (
	"context"
	"fmt"

	"deadletter-watchdog/internal/core/domain"
)

// ActionRepo implements ports.ActionRepository. Actions are append-only;
// the table has no update path.
type ActionRepo struct {
	pool Pool
}

// NewActionRepo creates a new ActionRepo.
func NewActionRepo(pool Pool) *ActionRepo {
	return &ActionRepo{pool: pool}
}

// Save inserts a new action record.
func (r *ActionRepo) Save(ctx context.Context, a *domain.Action) error {
	query := `INSERT INTO deadletter_transaction_actions (id, transaction_id, user_id, action_value, action_terminal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.TransactionID, a.UserID, a.Action.Value, a.Action.Terminal, a.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert action: %w", err)
	}
	return nil
}

// FindByTransactionID fetches all actions recorded against a transaction,
// oldest first.
func (r *ActionRepo) FindByTransactionID(ctx context.Context, transactionID string) ([]domain.Action, error) {
	query := `SELECT id, transaction_id, user_id, action_value, action_terminal, created_at
		FROM deadletter_transaction_actions WHERE transaction_id = $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}
	defer rows.Close()

	var actions []domain.Action
	for rows.Next() {
		a := domain.Action{}
		err := rows.Scan(&a.ID, &a.TransactionID, &a.UserID, &a.Action.Value, &a.Action.Terminal, &a.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("scan action row: %w", err)
		}
		actions = append(actions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate action rows: %w", err)
	}
	return actions, nil
}
