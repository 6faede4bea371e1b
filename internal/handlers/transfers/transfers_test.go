package transfers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/ezpay/ezpay/internal/domain"
	"github.com/ezpay/ezpay/internal/dto"
	transferservice "github.com/ezpay/ezpay/internal/service/transferservice"
	"github.com/ezpay/ezpay/pkg/auth"
	"github.com/ezpay/ezpay/pkg/utils"
)

func NewMock(t *testing.T) (*TransferHandler, *MockService, *MockOwnershipChecker) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	accounts := NewMockOwnershipChecker(ctrl)
	handler := New(service, accounts)
	defer ctrl.Finish()
	return handler, service, accounts
}

func authRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestSubmitHandler(t *testing.T) {
	handler, service, accounts := NewMock(t)

	amount := decimal.RequireFromString("5000.00")

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Transfer accepted",
			body: `{"from_account_id":1,"to_account_id":2,"amount":"5000.00","memo":"lunch","category":"food"}`,
			prepareMock: func() {
				accounts.EXPECT().
					GetAccount(gomock.Any(), 1, 1).
					Return(&domain.Account{ID: 1, UserID: 1}, nil)
				service.EXPECT().
					SubmitTransfer(gomock.Any(), domain.TransferCommand{
						FromAccountID: 1,
						ToAccountID:   2,
						Amount:        amount,
						Memo:          "lunch",
						Category:      "food",
					}).
					Return("generated-key", nil)
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name: "Sender account belongs to another user",
			body: `{"from_account_id":9,"to_account_id":2,"amount":"5000.00"}`,
			prepareMock: func() {
				accounts.EXPECT().
					GetAccount(gomock.Any(), 1, 9).
					Return(nil, errors.New("account does not belong to user"))
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "Sender account does not belong to user",
		},
		{
			name: "Non-positive amount",
			body: `{"from_account_id":1,"to_account_id":2,"amount":"0"}`,
			prepareMock: func() {
				accounts.EXPECT().
					GetAccount(gomock.Any(), 1, 1).
					Return(&domain.Account{ID: 1, UserID: 1}, nil)
				service.EXPECT().
					SubmitTransfer(gomock.Any(), gomock.Any()).
					Return("", transferservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: transferservice.ErrInvalidAmount.Error(),
		},
		{
			name: "Same account on both sides",
			body: `{"from_account_id":1,"to_account_id":1,"amount":"100.00"}`,
			prepareMock: func() {
				accounts.EXPECT().
					GetAccount(gomock.Any(), 1, 1).
					Return(&domain.Account{ID: 1, UserID: 1}, nil)
				service.EXPECT().
					SubmitTransfer(gomock.Any(), gomock.Any()).
					Return("", transferservice.ErrSameAccount)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: transferservice.ErrSameAccount.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Broker unavailable",
			body: `{"from_account_id":1,"to_account_id":2,"amount":"5000.00"}`,
			prepareMock: func() {
				accounts.EXPECT().
					GetAccount(gomock.Any(), 1, 1).
					Return(&domain.Account{ID: 1, UserID: 1}, nil)
				service.EXPECT().
					SubmitTransfer(gomock.Any(), gomock.Any()).
					Return("", errors.New("failed to publish message"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authRequest("POST", "/api/transfers", tt.body)
			rr := httptest.NewRecorder()

			handler.Submit(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				var resp dto.TransferAcceptedResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "generated-key", resp.IdempotencyKey)
			}
		})
	}
}

func TestSubmitHandlerKeepsClientKey(t *testing.T) {
	handler, service, accounts := NewMock(t)

	accounts.EXPECT().
		GetAccount(gomock.Any(), 1, 1).
		Return(&domain.Account{ID: 1, UserID: 1}, nil)
	service.EXPECT().
		SubmitTransfer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.TransferCommand) (string, error) {
			assert.Equal(t, "client-key", cmd.IdempotencyKey)
			return cmd.IdempotencyKey, nil
		})

	req := authRequest("POST", "/api/transfers", `{"from_account_id":1,"to_account_id":2,"amount":"100.00","idempotency_key":"client-key"}`)
	rr := httptest.NewRecorder()

	handler.Submit(rr, req)

	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestGetTransactionHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name          string
		transactionID string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:          "Transaction found",
			transactionID: "10",
			prepareMock: func() {
				service.EXPECT().
					GetTransaction(gomock.Any(), 1, 10).
					Return(&domain.Transaction{
						ID:                10,
						SenderAccountID:   1,
						ReceiverAccountID: 2,
						Amount:            decimal.RequireFromString("5000.00"),
						Status:            domain.SuccessTransactionStatus,
						CreatedAt:         now,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Transaction belongs to other users",
			transactionID: "10",
			prepareMock: func() {
				service.EXPECT().
					GetTransaction(gomock.Any(), 1, 10).
					Return(nil, transferservice.ErrNotAccountOwner)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: transferservice.ErrNotAccountOwner.Error(),
		},
		{
			name:          "Transaction not found",
			transactionID: "99",
			prepareMock: func() {
				service.EXPECT().
					GetTransaction(gomock.Any(), 1, 99).
					Return(nil, nil)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Transaction not found",
		},
		{
			name:          "Invalid transaction ID",
			transactionID: "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid transaction ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authRequest("GET", "/api/transfers/"+tt.transactionID, "")
			req = withURLParam(req, "transactionID", tt.transactionID)
			rr := httptest.NewRecorder()

			handler.GetTransaction(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetAccountTransactionsHandler(t *testing.T) {
	handler, service, _ := NewMock(t)
	now := time.Now()

	transactions := []domain.Transaction{
		{ID: 10, SenderAccountID: 1, ReceiverAccountID: 2, Amount: decimal.RequireFromString("5000.00"), Status: domain.SuccessTransactionStatus, CreatedAt: now},
		{ID: 9, SenderAccountID: 3, ReceiverAccountID: 1, Amount: decimal.RequireFromString("100.00"), Status: domain.FailedTransactionStatus, CreatedAt: now},
	}

	tests := []struct {
		name          string
		target        string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedLen   int
	}{
		{
			name:   "Default limit",
			target: "/api/accounts/1/transactions",
			prepareMock: func() {
				service.EXPECT().
					GetAccountTransactions(gomock.Any(), 1, 1, "", defaultHistoryLimit).
					Return(transactions, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:   "Explicit limit",
			target: "/api/accounts/1/transactions?limit=10",
			prepareMock: func() {
				service.EXPECT().
					GetAccountTransactions(gomock.Any(), 1, 1, "", 10).
					Return(transactions[:1], nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:   "Sent only",
			target: "/api/accounts/1/transactions?direction=sent",
			prepareMock: func() {
				service.EXPECT().
					GetAccountTransactions(gomock.Any(), 1, 1, domain.SentDirection, defaultHistoryLimit).
					Return(transactions[:1], nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:   "Unknown direction",
			target: "/api/accounts/1/transactions?direction=sideways",
			prepareMock: func() {
				service.EXPECT().
					GetAccountTransactions(gomock.Any(), 1, 1, "sideways", defaultHistoryLimit).
					Return(nil, transferservice.ErrInvalidDirection)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: transferservice.ErrInvalidDirection.Error(),
		},
		{
			name:          "Invalid limit",
			target:        "/api/accounts/1/transactions?limit=0",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid limit",
		},
		{
			name:   "Account belongs to another user",
			target: "/api/accounts/1/transactions",
			prepareMock: func() {
				service.EXPECT().
					GetAccountTransactions(gomock.Any(), 1, 1, "", defaultHistoryLimit).
					Return(nil, transferservice.ErrNotAccountOwner)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: transferservice.ErrNotAccountOwner.Error(),
		},
		{
			name:   "Account not found",
			target: "/api/accounts/1/transactions",
			prepareMock: func() {
				service.EXPECT().
					GetAccountTransactions(gomock.Any(), 1, 1, "", defaultHistoryLimit).
					Return(nil, transferservice.ErrAccountNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: transferservice.ErrAccountNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authRequest("GET", tt.target, "")
			req = withURLParam(req, "accountID", "1")
			rr := httptest.NewRecorder()

			handler.GetAccountTransactions(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp []dto.TransactionResponseDTO
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)
			assert.Len(t, resp, tt.expectedLen)
		})
	}
}
