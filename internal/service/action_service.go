package service

import (
	"context"
	"fmt"
	"time"

	"deadletter-watchdog/internal/core/domain"
	"deadletter-watchdog/internal/core/ports"
	"deadletter-watchdog/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ActionServiceImpl implements ports.ActionService. The action log is
// append-only; validation happens against the configured taxonomy before
// anything is written.
type ActionServiceImpl struct {
	actionRepo ports.ActionRepository
	helpdesk   ports.HelpdeskClient
	taxonomy   domain.ActionTaxonomy
	verifyTx   bool
	log        zerolog.Logger
}

// NewActionService creates a new ActionServiceImpl.
func NewActionService(
	actionRepo ports.ActionRepository,
	helpdesk ports.HelpdeskClient,
	taxonomy domain.ActionTaxonomy,
	verifyTx bool,
	log zerolog.Logger,
) *ActionServiceImpl {
	return &ActionServiceImpl{
		actionRepo: actionRepo,
		helpdesk:   helpdesk,
		taxonomy:   taxonomy,
		verifyTx:   verifyTx,
		log:        log,
	}
}

// RecordAction validates the action value against the taxonomy and appends
// the record. When cross-checking is enabled, the transaction id must
// resolve against the live helpdesk search first.
func (s *ActionServiceImpl) RecordAction(ctx context.Context, transactionID, userID, actionValue string) (*domain.Action, error) {
	actionType, ok := s.taxonomy.Find(actionValue)
	if !ok {
		return nil, apperror.ErrInvalidActionValue(actionValue)
	}

	if s.verifyTx {
		detail, err := s.helpdesk.SearchTransaction(ctx, transactionID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("verify transaction: %w", err))
		}
		if detail == nil {
			return nil, apperror.ErrInvalidTransactionID(transactionID)
		}
	}

	action := &domain.Action{
		ID:            uuid.New().String(),
		TransactionID: transactionID,
		UserID:        userID,
		Action:        actionType,
		Timestamp:     time.Now().UTC(),
	}

	if err := s.actionRepo.Save(ctx, action); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("save action: %w", err))
	}

	s.log.Info().
		Str("transaction_id", transactionID).
		Str("user_id", userID).
		Str("action", actionType.Value).
		Msg("action recorded")

	return action, nil
}

// ListActions returns the actions recorded against a transaction, oldest
// first. An unknown transaction simply yields an empty list.
func (s *ActionServiceImpl) ListActions(ctx context.Context, transactionID, userID string) ([]domain.Action, error) {
	actions, err := s.actionRepo.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list actions: %w", err))
	}
	if actions == nil {
		actions = []domain.Action{}
	}
	return actions, nil
}

// ListActionTypes returns the configured action taxonomy.
func (s *ActionServiceImpl) ListActionTypes() []domain.ActionType {
	return s.taxonomy.Types()
}
