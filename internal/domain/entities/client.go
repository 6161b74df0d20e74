package entities

// ClientCreditProfile is a read view of a client's account-receivable state,
// consumed (not owned) by the transaction engine.
//
// CreditLimit == nil means unlimited credit.
type ClientCreditProfile struct {
	ClientID         string   `json:"client_id"`
	HasCreditAccount bool     `json:"has_credit_account"`
	Balance          float64  `json:"balance"`
	CreditLimit      *float64 `json:"credit_limit,omitempty"`
}

// LedgerMovement is one recorded change to a client's credit balance, linked
// to the originating transaction for audit. Reversals post an opposite
// movement; the original is never deleted.
type LedgerMovement struct {
	ID            string  `json:"id"`
	ClientID      string  `json:"client_id"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transaction_id,omitempty"`
	ReversalOf    string  `json:"reversal_of,omitempty"`
	Reversed      bool    `json:"reversed"`
}
