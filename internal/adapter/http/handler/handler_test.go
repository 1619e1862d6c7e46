package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"deadletter-watchdog/internal/adapter/http/dto"
	"deadletter-watchdog/internal/adapter/http/middleware"
	"deadletter-watchdog/internal/core/domain"
	"deadletter-watchdog/internal/core/ports/mocks"
	"deadletter-watchdog/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Auth Handler Tests ---

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	expiry := time.Date(2025, 8, 19, 20, 0, 0, 0, time.UTC)
	mockAuth.EXPECT().Login(gomock.Any(), "mrossi", "s3cret").Return("signed.jwt", expiry, nil)

	body, _ := json.Marshal(dto.LoginRequest{Username: "mrossi", Password: "s3cret"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "signed.jwt", data["token"])
	assert.Equal(t, float64(expiry.Unix()), data["expiry"])
}

func TestLogin_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("{}")))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := mocks.NewMockAuthService(ctrl)
	h := NewAuthHandler(mockAuth)

	mockAuth.EXPECT().Login(gomock.Any(), "mrossi", "wrong").
		Return("", time.Time{}, apperror.ErrInvalidCredentials())

	body, _ := json.Marshal(dto.LoginRequest{Username: "mrossi", Password: "wrong"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Deadletter Handler Tests ---

func TestListByDate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockDeadletterService(ctrl)
	h := NewDeadletterHandler(mockSvc)

	date := time.Date(2025, 8, 19, 0, 0, 0, 0, time.UTC)
	mockSvc.EXPECT().ListByDate(gomock.Any(), date, 2, 50).
		Return(&domain.DeadletterPage{
			Transactions: []domain.DeadletterTransaction{},
			Page:         domain.PageInfo{Current: 2, Total: 5, Results: 0},
		}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/deadletter/transactions?date=2025-08-19&pageNumber=2&pageSize=50", nil)

	h.ListByDate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	page := data["page"].(map[string]interface{})
	assert.Equal(t, float64(2), page["current"])
}

func TestListByDate_MissingDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewDeadletterHandler(mocks.NewMockDeadletterService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/deadletter/transactions", nil)

	h.ListByDate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListByDate_BadDateFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewDeadletterHandler(mocks.NewMockDeadletterService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/deadletter/transactions?date=19-08-2025", nil)

	h.ListByDate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListByDate_PageSizeAboveV1Bound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewDeadletterHandler(mocks.NewMockDeadletterService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/deadletter/transactions?date=2025-08-19&pageSize=501", nil)

	h.ListByDate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListByDateRange_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockDeadletterService(ctrl)
	h := NewDeadletterHandler(mockSvc)

	from := time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 8, 19, 0, 0, 0, 0, time.UTC)
	mockSvc.EXPECT().ListByDateRange(gomock.Any(), from, to, 0, 10).
		Return(&domain.DeadletterPage{
			Transactions: []domain.DeadletterTransaction{},
			Page:         domain.PageInfo{},
		}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v2/deadletter/transactions?fromDate=2025-08-18&toDate=2025-08-19", nil)

	h.ListByDateRange(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListByDateRange_InvertedRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewDeadletterHandler(mocks.NewMockDeadletterService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v2/deadletter/transactions?fromDate=2025-08-19&toDate=2025-08-18", nil)

	h.ListByDateRange(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListByDateRange_PageSizeAboveV2Bound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewDeadletterHandler(mocks.NewMockDeadletterService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v2/deadletter/transactions?fromDate=2025-08-18&toDate=2025-08-19&pageSize=21", nil)

	h.ListByDateRange(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Action Handler Tests ---

func TestRecordAction_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockActionService(ctrl)
	h := NewActionHandler(mockSvc)

	opID := uuid.New()
	saved := &domain.Action{
		ID:            uuid.New().String(),
		TransactionID: "tx-1",
		UserID:        opID.String(),
		Action:        domain.ActionType{Value: "refund requested"},
		Timestamp:     time.Now().UTC(),
	}
	mockSvc.EXPECT().RecordAction(gomock.Any(), "tx-1", opID.String(), "refund requested").Return(saved, nil)

	body, _ := json.Marshal(dto.RecordActionRequest{Action: "refund requested"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/deadletter/transactions/tx-1/actions", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "transactionId", Value: "tx-1"}}
	c.Set(middleware.CtxOperatorID, opID)

	h.RecordAction(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "tx-1", data["transactionId"])
}

func TestRecordAction_UnknownValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockActionService(ctrl)
	h := NewActionHandler(mockSvc)

	mockSvc.EXPECT().RecordAction(gomock.Any(), "tx-1", gomock.Any(), "nuke it").
		Return(nil, apperror.ErrInvalidActionValue("nuke it"))

	body, _ := json.Marshal(dto.RecordActionRequest{Action: "nuke it"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/deadletter/transactions/tx-1/actions", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "transactionId", Value: "tx-1"}}
	c.Set(middleware.CtxOperatorID, uuid.New())

	h.RecordAction(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordAction_MissingBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewActionHandler(mocks.NewMockActionService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/deadletter/transactions/tx-1/actions", bytes.NewReader([]byte("{}")))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "transactionId", Value: "tx-1"}}

	h.RecordAction(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListActions_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockActionService(ctrl)
	h := NewActionHandler(mockSvc)

	opID := uuid.New()
	mockSvc.EXPECT().ListActions(gomock.Any(), "tx-1", opID.String()).
		Return([]domain.Action{{ID: "a-1", TransactionID: "tx-1"}}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/deadletter/transactions/tx-1/actions", nil)
	c.Params = gin.Params{{Key: "transactionId", Value: "tx-1"}}
	c.Set(middleware.CtxOperatorID, opID)

	h.ListActions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	require.Len(t, data, 1)
}

func TestListActionTypes_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockActionService(ctrl)
	h := NewActionHandler(mockSvc)

	mockSvc.EXPECT().ListActionTypes().Return([]domain.ActionType{
		{Value: "no action required", Terminal: true},
		{Value: "refund requested", Terminal: false},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/actions", nil)

	h.ListActionTypes(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	require.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "no action required", first["value"])
	assert.Equal(t, true, first["terminal"])
}
