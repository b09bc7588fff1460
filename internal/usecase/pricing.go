package usecase

import "github.com/sellora/order-service/internal/domain"

// Flat shipping fee applied to every order and the tolerance within which a
// payment amount is accepted against the order total.
const (
	ShippingCost    = 10.00
	AmountTolerance = 0.01
)

// PricingLine is one cart line as priced at reservation time.
type PricingLine struct {
	UnitPrice     float64
	DiscountPrice *float64
	Quantity      int
}

// Quote aggregates the money amounts of an order.
type Quote struct {
	Subtotal   float64
	Discount   float64
	Commission float64
	Shipping   float64
	Total      float64
}

// LineAmounts returns the line total and the line discount. The total is the
// effective (possibly discounted) unit price times quantity; the discount is
// what the buyer saved against the undiscounted unit price.
func LineAmounts(line PricingLine) (total, discount float64) {
	price := line.UnitPrice
	if line.DiscountPrice != nil {
		price = *line.DiscountPrice
		discount = (line.UnitPrice - *line.DiscountPrice) * float64(line.Quantity)
	}
	return price * float64(line.Quantity), discount
}

// QuoteLines computes subtotal, discount, commission and total for a cart.
// Commission is the platform's percentage cut of the subtotal. Inputs are
// validated upstream; the function itself has no failure modes.
func QuoteLines(lines []PricingLine, commissionRate float64) Quote {
	q := Quote{Shipping: ShippingCost}
	for _, line := range lines {
		total, discount := LineAmounts(line)
		q.Subtotal += total
		q.Discount += discount
	}
	q.Commission = q.Subtotal * commissionRate / 100
	q.Total = q.Subtotal + q.Shipping - q.Discount
	return q
}

// LineFromProduct snapshots a product's pricing into a line.
func LineFromProduct(p *domain.Product, quantity int) PricingLine {
	return PricingLine{
		UnitPrice:     p.Price,
		DiscountPrice: p.DiscountPrice,
		Quantity:      quantity,
	}
}
