package service

import (
	"context"
	"errors"
	"testing"

	"deadletter-watchdog/internal/core/domain"
	"deadletter-watchdog/internal/core/ports/mocks"
	"deadletter-watchdog/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testTaxonomy() domain.ActionTaxonomy {
	return domain.NewActionTaxonomy([]domain.ActionType{
		{Value: "no action required", Terminal: true},
		{Value: "refund requested", Terminal: false},
	})
}

func TestRecordAction_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actionRepo := mocks.NewMockActionRepository(ctrl)
	helpdesk := mocks.NewMockHelpdeskClient(ctrl)

	var saved *domain.Action
	actionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Action) error {
			saved = a
			return nil
		})

	svc := NewActionService(actionRepo, helpdesk, testTaxonomy(), false, zerolog.Nop())

	action, err := svc.RecordAction(context.Background(), "tx-1", "op-1", "refund requested")

	require.NoError(t, err)
	require.NotNil(t, action)
	assert.Equal(t, saved, action)
	assert.Equal(t, "tx-1", action.TransactionID)
	assert.Equal(t, "op-1", action.UserID)
	assert.Equal(t, "refund requested", action.Action.Value)
	assert.False(t, action.Action.Terminal)
	assert.False(t, action.Timestamp.IsZero())
	_, err = uuid.Parse(action.ID)
	assert.NoError(t, err)
}

func TestRecordAction_UnknownValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actionRepo := mocks.NewMockActionRepository(ctrl)
	helpdesk := mocks.NewMockHelpdeskClient(ctrl)

	svc := NewActionService(actionRepo, helpdesk, testTaxonomy(), false, zerolog.Nop())

	action, err := svc.RecordAction(context.Background(), "tx-1", "op-1", "delete everything")

	require.Error(t, err)
	assert.Nil(t, action)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ACT_001", appErr.Code)
}

func TestRecordAction_VerifyTransactionNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actionRepo := mocks.NewMockActionRepository(ctrl)
	helpdesk := mocks.NewMockHelpdeskClient(ctrl)

	helpdesk.EXPECT().SearchTransaction(gomock.Any(), "ghost-tx").Return(nil, nil)

	svc := NewActionService(actionRepo, helpdesk, testTaxonomy(), true, zerolog.Nop())

	action, err := svc.RecordAction(context.Background(), "ghost-tx", "op-1", "refund requested")

	require.Error(t, err)
	assert.Nil(t, action)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ACT_002", appErr.Code)
}

func TestRecordAction_VerifyTransactionFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actionRepo := mocks.NewMockActionRepository(ctrl)
	helpdesk := mocks.NewMockHelpdeskClient(ctrl)

	helpdesk.EXPECT().SearchTransaction(gomock.Any(), "tx-1").Return(&domain.TransactionDetail{}, nil)
	actionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewActionService(actionRepo, helpdesk, testTaxonomy(), true, zerolog.Nop())

	action, err := svc.RecordAction(context.Background(), "tx-1", "op-1", "no action required")

	require.NoError(t, err)
	require.NotNil(t, action)
	assert.True(t, action.Action.Terminal)
}

func TestRecordAction_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actionRepo := mocks.NewMockActionRepository(ctrl)
	helpdesk := mocks.NewMockHelpdeskClient(ctrl)

	actionRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	svc := NewActionService(actionRepo, helpdesk, testTaxonomy(), false, zerolog.Nop())

	action, err := svc.RecordAction(context.Background(), "tx-1", "op-1", "refund requested")

	require.Error(t, err)
	assert.Nil(t, action)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_001", appErr.Code)
}

func TestListActions_EmptyIsNotNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actionRepo := mocks.NewMockActionRepository(ctrl)
	helpdesk := mocks.NewMockHelpdeskClient(ctrl)

	actionRepo.EXPECT().FindByTransactionID(gomock.Any(), "tx-1").Return(nil, nil)

	svc := NewActionService(actionRepo, helpdesk, testTaxonomy(), false, zerolog.Nop())

	actions, err := svc.ListActions(context.Background(), "tx-1", "op-1")

	require.NoError(t, err)
	require.NotNil(t, actions)
	assert.Empty(t, actions)
}

func TestListActionTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actionRepo := mocks.NewMockActionRepository(ctrl)
	helpdesk := mocks.NewMockHelpdeskClient(ctrl)

	svc := NewActionService(actionRepo, helpdesk, testTaxonomy(), false, zerolog.Nop())

	types := svc.ListActionTypes()

	require.Len(t, types, 2)
	assert.Equal(t, "no action required", types[0].Value)
	assert.Equal(t, "refund requested", types[1].Value)
}
