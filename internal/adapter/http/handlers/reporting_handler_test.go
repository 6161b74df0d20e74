package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"partsdesk/internal/adapter/http/handlers/mocks"
	"partsdesk/internal/domain/entities"
	"partsdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReportingHandler_GetStats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc usecase.IReportingUseCase) *gin.Engine {
		h := NewReportingHandler(uc)
		r := gin.New()
		r.GET("/v1/transactions/stats", h.GetStats)
		return r
	}

	t.Run("forwards query filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportingUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().Stats(gomock.Any(), usecase.StatsFilters{
			Kind:             entities.KindVenta,
			ClientID:         "c-1",
			IncludeCancelled: true,
		}).Return(usecase.StatsReport{TransactionCount: 3, Revenue: 450}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/transactions/stats?kind=venta&client_id=c-1&include_cancelled=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["transaction_count"] != float64(3) || body["revenue"] != float64(450) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("defaults exclude cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportingUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().Stats(gomock.Any(), usecase.StatsFilters{}).Return(usecase.StatsReport{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/transactions/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("store failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReportingUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().Stats(gomock.Any(), gomock.Any()).
			Return(usecase.StatsReport{}, &usecase.CollaboratorError{Op: usecase.OpPersistence, Cause: errors.New("dynamo down")})

		req := httptest.NewRequest(http.MethodGet, "/v1/transactions/stats", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}
