package domain

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderConfirmed  OrderStatus = "CONFIRMED"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// orderTransitions is the forward-only lifecycle table. CANCELLED is reachable
// from every non-terminal state; DELIVERED and CANCELLED are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderConfirmed, OrderCancelled},
	OrderConfirmed:  {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered, OrderCancelled},
	OrderDelivered:  {},
	OrderCancelled:  {},
}

// ValidOrderStatus reports whether s is a known lifecycle state.
func ValidOrderStatus(s OrderStatus) bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition reports whether the lifecycle table allows from -> to.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is possible from s.
func (s OrderStatus) Terminal() bool {
	return len(orderTransitions[s]) == 0
}

type Order struct {
	ID                string
	OrderNumber       string
	Status            OrderStatus
	Subtotal          float64
	ShippingCost      float64
	Discount          float64
	Commission        float64
	Total             float64
	Notes             string
	CustomerID        string
	StoreID           string
	ShippingAddressID *string
	Items             []OrderItem
	Payments          []Payment
	Store             *Store
	ShippingAddress   *Address
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OrderItem snapshots the product pricing at order time. Price is the unit
// price before discount, so Total = Price*Quantity - Discount always holds.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	Price     float64
	Discount  float64
	Total     float64
	CreatedAt time.Time
}
