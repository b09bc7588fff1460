package kafka

// PaymentEvent is published when a payment settles or fails.
type PaymentEvent struct {
	PaymentID     string  `json:"payment_id"`
	TransactionID string  `json:"transaction_id"`
	OrderID       string  `json:"order_id"`
	Status        string  `json:"status"`
	Method        string  `json:"method"`
	Amount        float64 `json:"amount"`
}
