package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"partsdesk/internal/domain/entities"
	"partsdesk/internal/usecase/interfaces"
	mock_interfaces "partsdesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func statsFixture() []entities.Transaction {
	clientA := "c-a"
	day1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	return []entities.Transaction{
		{
			ID: "t-1", Kind: entities.KindVenta, Status: entities.StatusCompletada,
			ClientID: &clientA, Total: 200, DocumentDate: day1,
			Lines: []entities.TransactionLine{
				{ID: "l-1", ProductID: "P1", Quantity: 2, Delivered: 2, Subtotal: 200},
			},
			Payments: []entities.Payment{
				{ID: "pay-1", Type: entities.PaymentEfectivo, Amount: 200},
			},
		},
		{
			ID: "t-2", Kind: entities.KindVenta, Status: entities.StatusCompletada,
			Total: 50, DocumentDate: day2,
			Lines: []entities.TransactionLine{
				{ID: "l-2", ProductID: "P2", Quantity: 1, Delivered: 1, Subtotal: 50},
			},
			Payments: []entities.Payment{
				{ID: "pay-2", Type: entities.PaymentTarjeta, Amount: 50},
			},
		},
		{
			ID: "t-3", Kind: entities.KindVenta, Status: entities.StatusCancelada,
			Total: 999, DocumentDate: day2, CancelReason: "duplicado",
			Lines: []entities.TransactionLine{
				{ID: "l-3", ProductID: "P1", Quantity: 1, Delivered: 0, Subtotal: 999},
			},
		},
	}
}

func TestReportingUseCase_Stats(t *testing.T) {
	t.Run("cancelled transactions do not contribute", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockITransactionStore(ctrl)
		store.EXPECT().List(gomock.Any(), gomock.Any()).Return(statsFixture(), "", nil)

		report, err := NewReportingUseCase(store).Stats(context.Background(), StatsFilters{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.TransactionCount != 2 || report.Revenue != 250 {
			t.Fatalf("expected 2 transactions / 250 revenue, got %d/%v", report.TransactionCount, report.Revenue)
		}
		if len(report.ByDay) != 2 || report.ByDay[0].Day != "2026-03-01" || report.ByDay[1].Revenue != 50 {
			t.Fatalf("unexpected by-day breakdown: %+v", report.ByDay)
		}
		if len(report.ByPaymentType) != 2 {
			t.Fatalf("expected efectivo and tarjeta buckets, got %+v", report.ByPaymentType)
		}
		if len(report.TopProducts) != 2 || report.TopProducts[0].ProductID != "P1" {
			t.Fatalf("expected P1 on top, got %+v", report.TopProducts)
		}
		if len(report.ByClient) != 1 || report.ByClient[0].ClientID != "c-a" || report.ByClient[0].Revenue != 200 {
			t.Fatalf("unexpected by-client breakdown: %+v", report.ByClient)
		}
	})

	t.Run("include cancelled flips the view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockITransactionStore(ctrl)
		store.EXPECT().List(gomock.Any(), gomock.Any()).Return(statsFixture(), "", nil)

		report, err := NewReportingUseCase(store).Stats(context.Background(), StatsFilters{IncludeCancelled: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.TransactionCount != 1 || report.Revenue != 999 {
			t.Fatalf("expected only the cancelled transaction, got %d/%v", report.TransactionCount, report.Revenue)
		}
	})

	t.Run("follows the pagination cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockITransactionStore(ctrl)
		all := statsFixture()
		store.EXPECT().List(gomock.Any(), interfaces.ListFilters{}).Return(all[:1], "page2", nil)
		store.EXPECT().List(gomock.Any(), interfaces.ListFilters{Cursor: "page2"}).Return(all[1:], "", nil)

		report, err := NewReportingUseCase(store).Stats(context.Background(), StatsFilters{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.TransactionCount != 2 || report.Revenue != 250 {
			t.Fatalf("expected both pages aggregated, got %d/%v", report.TransactionCount, report.Revenue)
		}
	})

	t.Run("kind and client filters pass through to the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockITransactionStore(ctrl)
		store.EXPECT().List(gomock.Any(), interfaces.ListFilters{Kind: entities.KindVenta, ClientID: "c-a"}).
			Return(nil, "", nil)

		_, err := NewReportingUseCase(store).Stats(context.Background(), StatsFilters{
			Kind: entities.KindVenta, ClientID: "c-a",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("transactions without payments still count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockITransactionStore(ctrl)
		store.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.Transaction{
			{ID: "t-1", Status: entities.StatusPendiente, Total: 30, DocumentDate: time.Now().UTC()},
		}, "", nil)

		report, err := NewReportingUseCase(store).Stats(context.Background(), StatsFilters{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.TransactionCount != 1 || len(report.ByPaymentType) != 0 {
			t.Fatalf("expected bare transaction to count, got %+v", report)
		}
	})

	t.Run("store failure surfaces as a persistence error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockITransactionStore(ctrl)
		store.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, "", errors.New("dynamo down"))

		_, err := NewReportingUseCase(store).Stats(context.Background(), StatsFilters{})
		var cerr *CollaboratorError
		if !errors.As(err, &cerr) || cerr.Op != OpPersistence {
			t.Fatalf("expected PersistenceFailed, got %v", err)
		}
	})
}
