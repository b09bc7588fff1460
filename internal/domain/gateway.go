package domain

import "context"

// ChargeResult is the gateway's verdict plus its opaque response payload,
// stored on the payment verbatim.
type ChargeResult struct {
	Success  bool
	Metadata map[string]any
}

// PaymentGateway is the external charging collaborator. Charge may block on
// I/O for a bounded interval; callers bound it with a context deadline and
// treat expiry as a failed charge.
type PaymentGateway interface {
	Charge(ctx context.Context, method PaymentMethod, amount float64) (*ChargeResult, error)
}
