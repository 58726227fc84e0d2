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

func TestGetRatesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRatesReader(ctrl)
	mockSvc.EXPECT().Snapshot().Return(models.RatesSnapshot{
		Rates:      map[string]float64{"PLN": 1.0, "USD": 3.6625, "EUR": 4.2588},
		Changes:    map[string]float64{"PLN": 0.0, "USD": 0.0012, "EUR": -0.0008},
		LastUpdate: 1700000000,
	})

	req := httptest.NewRequest(http.MethodGet, "/exchange/rates", nil)
	rec := httptest.NewRecorder()

	NewGetRatesHandler(mockSvc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp RatesResponse
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, 3.6625, resp.Rates["USD"])
	assert.Equal(t, 0.0012, resp.Changes["USD"])
	assert.Equal(t, -0.0008, resp.Changes["EUR"])
	assert.Equal(t, int64(1700000000), resp.LastUpdate)
}
