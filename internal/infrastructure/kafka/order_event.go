package kafka

// OrderEvent is published on order lifecycle changes.
type OrderEvent struct {
	OrderID     string  `json:"order_id"`
	OrderNumber string  `json:"order_number"`
	CustomerID  string  `json:"customer_id"`
	StoreID     string  `json:"store_id"`
	Status      string  `json:"status"`
	Total       float64 `json:"total"`
}
