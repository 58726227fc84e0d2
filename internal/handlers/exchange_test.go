package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mkowalczyk/kantor/internal/models"
	"github.com/mkowalczyk/kantor/internal/services"
)

func TestExchangeHandler(t *testing.T) {
	expiresAt := time.Now().Add(15 * time.Second)

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockExchanger, mockConfirmations *MockConfirmationStarter)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "successful staging",
			requestBody: ExchangeRequest{
				FromCurrency: "PLN",
				ToCurrency:   "USD",
				Amount:       100.0,
			},
			setupMocks: func(mockSvc *MockExchanger, mockConfirmations *MockConfirmationStarter) {
				mockConfirmations.EXPECT().Begin(gomock.Any()).Return("conf-1", expiresAt)
			},
			expectedStatusCode: http.StatusAccepted,
			expectedKey:        "confirmation_id",
		},
		{
			name:               "invalid request body",
			requestBody:        "invalid-json",
			setupMocks:         func(mockSvc *MockExchanger, mockConfirmations *MockConfirmationStarter) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name: "missing source currency",
			requestBody: ExchangeRequest{
				ToCurrency: "USD",
				Amount:     100.0,
			},
			setupMocks:         func(mockSvc *MockExchanger, mockConfirmations *MockConfirmationStarter) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name: "missing target currency",
			requestBody: ExchangeRequest{
				FromCurrency: "PLN",
				Amount:       100.0,
			},
			setupMocks:         func(mockSvc *MockExchanger, mockConfirmations *MockConfirmationStarter) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name: "non-positive amount",
			requestBody: ExchangeRequest{
				FromCurrency: "PLN",
				ToCurrency:   "USD",
				Amount:       -5.0,
			},
			setupMocks:         func(mockSvc *MockExchanger, mockConfirmations *MockConfirmationStarter) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockExchanger(ctrl)
			mockConfirmations := NewMockConfirmationStarter(ctrl)

			tt.setupMocks(mockSvc, mockConfirmations)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/exchange", bytes.NewReader(bodyBytes))
			rec := httptest.NewRecorder()

			NewExchangeHandler(mockSvc, mockConfirmations)(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)

			var resp map[string]any
			err := json.Unmarshal(rec.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Contains(t, resp, tt.expectedKey)
		})
	}
}

func TestExchangeHandler_StagedOpCallsService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	committed := &models.Transaction{
		TransactionID: "tx-e",
		Type:          models.TransactionExchange,
		From:          "PLN",
		To:            "USD",
		Amount:        100.0,
		Received:      25.0,
	}

	mockSvc := NewMockExchanger(ctrl)
	mockConfirmations := NewMockConfirmationStarter(ctrl)

	var staged services.PendingOp
	mockConfirmations.EXPECT().Begin(gomock.Any()).
		DoAndReturn(func(op services.PendingOp) (string, time.Time) {
			staged = op
			return "conf-3", time.Now().Add(15 * time.Second)
		})
	mockSvc.EXPECT().Exchange(gomock.Any(), "PLN", "USD", 100.0).Return(committed, nil)

	body, _ := json.Marshal(ExchangeRequest{FromCurrency: "PLN", ToCurrency: "USD", Amount: 100.0})
	req := httptest.NewRequest(http.MethodPost, "/exchange", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	NewExchangeHandler(mockSvc, mockConfirmations)(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.NotNil(t, staged)

	tx, err := staged(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 25.0, tx.Received)
}
