package usecase

import (
	"testing"

	"partsdesk/internal/domain/entities"
)

func TestCanSellOnCredit(t *testing.T) {
	limit := func(v float64) *float64 { return &v }

	t.Run("no credit account fails closed", func(t *testing.T) {
		d := CanSellOnCredit(entities.ClientCreditProfile{}, 100)
		if d.Authorized || d.Reason != CreditNoAccount {
			t.Fatalf("expected NoCreditAccount refusal, got %+v", d)
		}
	})

	t.Run("nil limit always authorizes", func(t *testing.T) {
		d := CanSellOnCredit(entities.ClientCreditProfile{HasCreditAccount: true, Balance: 1e9}, 1e9)
		if !d.Authorized || d.Reason != CreditUnlimited {
			t.Fatalf("expected UnlimitedCredit, got %+v", d)
		}
	})

	t.Run("within limit", func(t *testing.T) {
		p := entities.ClientCreditProfile{HasCreditAccount: true, Balance: 400, CreditLimit: limit(500)}
		d := CanSellOnCredit(p, 100)
		if !d.Authorized || d.Reason != CreditWithinLimit {
			t.Fatalf("expected WithinLimit, got %+v", d)
		}
	})

	t.Run("limit exceeded reports the shortfall", func(t *testing.T) {
		p := entities.ClientCreditProfile{HasCreditAccount: true, Balance: 400, CreditLimit: limit(500)}
		d := CanSellOnCredit(p, 150)
		if d.Authorized || d.Reason != CreditLimitExceeded {
			t.Fatalf("expected CreditLimitExceeded, got %+v", d)
		}
		if d.Shortfall != 100 {
			t.Fatalf("expected shortfall 100, got %v", d.Shortfall)
		}
	})
}

func TestAvailableCredit(t *testing.T) {
	limit := func(v float64) *float64 { return &v }

	t.Run("unlimited never returns a finite amount", func(t *testing.T) {
		amount, unlimited := AvailableCredit(entities.ClientCreditProfile{HasCreditAccount: true})
		if !unlimited || amount != 0 {
			t.Fatalf("expected unlimited, got amount=%v unlimited=%v", amount, unlimited)
		}
	})

	t.Run("finite limit", func(t *testing.T) {
		amount, unlimited := AvailableCredit(entities.ClientCreditProfile{
			HasCreditAccount: true, Balance: 400, CreditLimit: limit(500),
		})
		if unlimited || amount != 100 {
			t.Fatalf("expected 100, got amount=%v unlimited=%v", amount, unlimited)
		}
	})
}
