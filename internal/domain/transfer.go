package domain

// TransferProvider is the external payment rail used by payout execution.
// The core only needs an opaque reference back; failures must leave the
// ledger untouched.
type TransferProvider interface {
	SendTransfer(request TransferRequest) (*TransferResult, error)
}

type TransferRequest struct {
	Destination    string
	Amount         float64
	Currency       string
	IdempotencyKey string
}

type TransferResult struct {
	Reference string
}
