package usecase

import (
	"context"
	"sort"

	"partsdesk/internal/domain/entities"
	"partsdesk/internal/usecase/interfaces"
)

// StatsFilters narrows the reporting projection. IncludeCancelled switches
// the report into a cancellation view; by default cancelled transactions do
// not contribute to revenue.
type StatsFilters struct {
	Kind             entities.TransactionKind
	ClientID         string
	IncludeCancelled bool
}

type DayTotal struct {
	Day     string  `json:"day"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type PaymentTypeTotal struct {
	Type   entities.PaymentType `json:"type"`
	Count  int                  `json:"count"`
	Amount float64              `json:"amount"`
}

type ProductTotal struct {
	ProductID string  `json:"product_id"`
	Delivered int     `json:"delivered"`
	Revenue   float64 `json:"revenue"`
}

type ClientTotal struct {
	ClientID string  `json:"client_id"`
	Count    int     `json:"count"`
	Revenue  float64 `json:"revenue"`
}

// StatsReport is the display-ready aggregate over committed transactions.
type StatsReport struct {
	TransactionCount int                `json:"transaction_count"`
	Revenue          float64            `json:"revenue"`
	ByDay            []DayTotal         `json:"by_day"`
	ByPaymentType    []PaymentTypeTotal `json:"by_payment_type"`
	TopProducts      []ProductTotal     `json:"top_products"`
	ByClient         []ClientTotal      `json:"by_client"`
}

// topProductsLimit caps the product ranking in the stats response.
const topProductsLimit = 10

// IReportingUseCase derives read-side aggregates from committed
// transactions. Pure projection; it never mutates anything.
type IReportingUseCase interface {
	Stats(ctx context.Context, f StatsFilters) (StatsReport, error)
}

type ReportingUseCase struct {
	store interfaces.ITransactionStore
}

var _ IReportingUseCase = (*ReportingUseCase)(nil)

func NewReportingUseCase(store interfaces.ITransactionStore) *ReportingUseCase {
	return &ReportingUseCase{store: store}
}

// Stats aggregates revenue by day, payment type, product and client.
// Transactions with missing payment or line sub-resources are aggregated as
// far as their data allows instead of failing the whole report.
func (u *ReportingUseCase) Stats(ctx context.Context, f StatsFilters) (StatsReport, error) {
	report := StatsReport{}
	byDay := map[string]*DayTotal{}
	byType := map[entities.PaymentType]*PaymentTypeTotal{}
	byProduct := map[string]*ProductTotal{}
	byClient := map[string]*ClientTotal{}

	cursor := ""
	for {
		items, next, err := u.store.List(ctx, interfaces.ListFilters{
			Kind:     f.Kind,
			ClientID: f.ClientID,
			Cursor:   cursor,
		})
		if err != nil {
			return StatsReport{}, &CollaboratorError{Op: OpPersistence, Cause: err}
		}

		for _, t := range items {
			cancelled := t.Status == entities.StatusCancelada
			if cancelled != f.IncludeCancelled {
				continue
			}

			report.TransactionCount++
			report.Revenue = round2(report.Revenue + t.Total)

			day := t.DocumentDate.UTC().Format("2006-01-02")
			d, ok := byDay[day]
			if !ok {
				d = &DayTotal{Day: day}
				byDay[day] = d
			}
			d.Count++
			d.Revenue = round2(d.Revenue + t.Total)

			for _, p := range t.Payments {
				pt, ok := byType[p.Type]
				if !ok {
					pt = &PaymentTypeTotal{Type: p.Type}
					byType[p.Type] = pt
				}
				pt.Count++
				pt.Amount = round2(pt.Amount + p.Amount)
			}

			for _, l := range t.Lines {
				prod, ok := byProduct[l.ProductID]
				if !ok {
					prod = &ProductTotal{ProductID: l.ProductID}
					byProduct[l.ProductID] = prod
				}
				prod.Delivered += l.Delivered
				prod.Revenue = round2(prod.Revenue + l.Subtotal)
			}

			if t.ClientID != nil {
				c, ok := byClient[*t.ClientID]
				if !ok {
					c = &ClientTotal{ClientID: *t.ClientID}
					byClient[*t.ClientID] = c
				}
				c.Count++
				c.Revenue = round2(c.Revenue + t.Total)
			}
		}

		if next == "" {
			break
		}
		cursor = next
	}

	for _, d := range byDay {
		report.ByDay = append(report.ByDay, *d)
	}
	sort.Slice(report.ByDay, func(i, j int) bool { return report.ByDay[i].Day < report.ByDay[j].Day })

	for _, pt := range byType {
		report.ByPaymentType = append(report.ByPaymentType, *pt)
	}
	sort.Slice(report.ByPaymentType, func(i, j int) bool {
		return report.ByPaymentType[i].Type < report.ByPaymentType[j].Type
	})

	for _, p := range byProduct {
		report.TopProducts = append(report.TopProducts, *p)
	}
	sort.Slice(report.TopProducts, func(i, j int) bool {
		if report.TopProducts[i].Revenue != report.TopProducts[j].Revenue {
			return report.TopProducts[i].Revenue > report.TopProducts[j].Revenue
		}
		return report.TopProducts[i].ProductID < report.TopProducts[j].ProductID
	})
	if len(report.TopProducts) > topProductsLimit {
		report.TopProducts = report.TopProducts[:topProductsLimit]
	}

	for _, c := range byClient {
		report.ByClient = append(report.ByClient, *c)
	}
	sort.Slice(report.ByClient, func(i, j int) bool {
		if report.ByClient[i].Revenue != report.ByClient[j].Revenue {
			return report.ByClient[i].Revenue > report.ByClient[j].Revenue
		}
		return report.ByClient[i].ClientID < report.ByClient[j].ClientID
	})

	return report, nil
}
