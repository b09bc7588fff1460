package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
)

type PaymentMethod string

const (
	MethodCreditCard     PaymentMethod = "CREDIT_CARD"
	MethodBankTransfer   PaymentMethod = "BANK_TRANSFER"
	MethodWallet         PaymentMethod = "WALLET"
	MethodCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
)

func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodCreditCard, MethodBankTransfer, MethodWallet, MethodCashOnDelivery:
		return true
	}
	return false
}

// Payment records one settlement attempt against an order. At most one
// payment per order ever reaches COMPLETED.
type Payment struct {
	ID            string
	TransactionID string
	OrderID       string
	Status        PaymentStatus
	Method        PaymentMethod
	Amount        float64
	Notes         string
	Metadata      map[string]any
	Order         *Order
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
