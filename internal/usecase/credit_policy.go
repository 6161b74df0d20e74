package usecase

import "partsdesk/internal/domain/entities"

// CreditReason explains a credit decision.
type CreditReason string

const (
	CreditNoAccount     CreditReason = "NO_CREDIT_ACCOUNT"
	CreditUnlimited     CreditReason = "UNLIMITED_CREDIT"
	CreditWithinLimit   CreditReason = "WITHIN_LIMIT"
	CreditLimitExceeded CreditReason = "CREDIT_LIMIT_EXCEEDED"
)

// CreditDecision is the outcome of CanSellOnCredit. Shortfall is only set
// when the reason is CreditLimitExceeded and carries the credit still
// available (creditLimit - currentBalance) so the UI can show the client how
// much they could actually charge.
type CreditDecision struct {
	Authorized bool
	Reason     CreditReason
	Shortfall  float64
}

// CanSellOnCredit authorizes an on-account payment against a client's credit
// profile. Fails closed: no credit account means no authorization. A nil
// credit limit means unlimited credit.
func CanSellOnCredit(profile entities.ClientCreditProfile, requestedAmount float64) CreditDecision {
	if !profile.HasCreditAccount {
		return CreditDecision{Authorized: false, Reason: CreditNoAccount}
	}
	if profile.CreditLimit == nil {
		return CreditDecision{Authorized: true, Reason: CreditUnlimited}
	}
	available := *profile.CreditLimit - profile.Balance
	if requestedAmount > available {
		return CreditDecision{
			Authorized: false,
			Reason:     CreditLimitExceeded,
			Shortfall:  available,
		}
	}
	return CreditDecision{Authorized: true, Reason: CreditWithinLimit}
}

// AvailableCredit returns the remaining credit for a profile. When the limit
// is nil the credit is unlimited and no finite amount is returned (unlimited
// is true, amount is 0) so callers cannot accidentally compare against it.
func AvailableCredit(profile entities.ClientCreditProfile) (amount float64, unlimited bool) {
	if profile.CreditLimit == nil {
		return 0, true
	}
	return *profile.CreditLimit - profile.Balance, false
}
