package orderdto

type OrderItemInput struct {
	ProductID string
	Quantity  int
}

type CreateOrderInput struct {
	CustomerID        string
	StoreID           string
	ShippingAddressID string
	Items             []OrderItemInput
	Notes             string
}
