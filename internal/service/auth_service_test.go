package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"deadletter-watchdog/internal/core/domain"
	"deadletter-watchdog/internal/core/ports/mocks"
	"deadletter-watchdog/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	operatorRepo := mocks.NewMockOperatorRepository(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	operator := &domain.Operator{
		ID:           uuid.New(),
		Username:     "mrossi",
		PasswordHash: "$argon2id$hash",
	}
	expiry := time.Now().Add(8 * time.Hour)

	operatorRepo.EXPECT().GetByUsername(gomock.Any(), "mrossi").Return(operator, nil)
	hashSvc.EXPECT().Verify("s3cret", "$argon2id$hash").Return(true, nil)
	tokenSvc.EXPECT().Generate(operator.ID, "mrossi").Return("signed.jwt", expiry, nil)

	svc := NewAuthService(operatorRepo, hashSvc, tokenSvc)

	token, expiresAt, err := svc.Login(context.Background(), "mrossi", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", token)
	assert.Equal(t, expiry, expiresAt)
}

func TestLogin_UnknownUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	operatorRepo := mocks.NewMockOperatorRepository(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	operatorRepo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

	svc := NewAuthService(operatorRepo, hashSvc, tokenSvc)

	_, _, err := svc.Login(context.Background(), "ghost", "whatever")

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	operatorRepo := mocks.NewMockOperatorRepository(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	operator := &domain.Operator{ID: uuid.New(), Username: "mrossi", PasswordHash: "$argon2id$hash"}

	operatorRepo.EXPECT().GetByUsername(gomock.Any(), "mrossi").Return(operator, nil)
	hashSvc.EXPECT().Verify("wrong", "$argon2id$hash").Return(false, nil)

	svc := NewAuthService(operatorRepo, hashSvc, tokenSvc)

	_, _, err := svc.Login(context.Background(), "mrossi", "wrong")

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestLogin_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	operatorRepo := mocks.NewMockOperatorRepository(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	operatorRepo.EXPECT().GetByUsername(gomock.Any(), "mrossi").Return(nil, errors.New("connection refused"))

	svc := NewAuthService(operatorRepo, hashSvc, tokenSvc)

	_, _, err := svc.Login(context.Background(), "mrossi", "s3cret")

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_001", appErr.Code)
}
