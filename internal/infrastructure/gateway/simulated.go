package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/sellora/order-service/internal/domain"
)

// SimulatedGateway stands in for a real payment processor. It sleeps for a
// configured interval, then approves any positive amount. Callers bound the
// call with a context deadline; a canceled context aborts the sleep.
type SimulatedGateway struct {
	latency time.Duration
}

func NewSimulatedGateway(latency time.Duration) *SimulatedGateway {
	return &SimulatedGateway{latency: latency}
}

func (g *SimulatedGateway) Charge(ctx context.Context, method domain.PaymentMethod, amount float64) (*domain.ChargeResult, error) {
	timer := time.NewTimer(g.latency)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	now := time.Now().UTC()
	return &domain.ChargeResult{
		Success: amount > 0,
		Metadata: map[string]any{
			"gateway":        string(method),
			"processedAt":    now.Format(time.RFC3339),
			"transactionRef": fmt.Sprintf("REF-%d", now.UnixMilli()),
		},
	}, nil
}
