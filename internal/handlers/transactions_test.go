package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mkowalczyk/kantor/internal/models"
)

func TestGetTransactionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTransactionsReader(ctrl)
	mockSvc.EXPECT().Transactions().Return([]models.Transaction{
		{TransactionID: "tx-2", Type: models.TransactionWithdraw, Currency: "PLN", Amount: 50.0, Timestamp: 1700000100},
		{TransactionID: "tx-1", Type: models.TransactionDeposit, Currency: "PLN", Amount: 100.0, Timestamp: 1700000000},
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	rec := httptest.NewRecorder()

	NewGetTransactionsHandler(mockSvc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp TransactionsResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Len(t, resp.Transactions, 2)
	assert.Equal(t, "tx-2", resp.Transactions[0].TransactionID)
	assert.Equal(t, models.TransactionDeposit, resp.Transactions[1].Type)
}

func TestGetTransactionsHandler_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTransactionsReader(ctrl)
	mockSvc.EXPECT().Transactions().Return([]models.Transaction{})

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	rec := httptest.NewRecorder()

	NewGetTransactionsHandler(mockSvc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp TransactionsResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Empty(t, resp.Transactions)
}
