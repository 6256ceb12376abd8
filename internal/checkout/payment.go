package checkout

import (
	"context"
	"strings"
	"time"
)

// PaymentDetails is what the payment form captures. All four fields are
// required; nothing is ever charged against them.
type PaymentDetails struct {
	CardNumber string `json:"card_number"`
	CardHolder string `json:"card_holder"`
	Expiry     string `json:"expiry"`
	CVC        string `json:"cvc"`
}

func (p PaymentDetails) complete() bool {
	return strings.TrimSpace(p.CardNumber) != "" &&
		strings.TrimSpace(p.CardHolder) != "" &&
		strings.TrimSpace(p.Expiry) != "" &&
		strings.TrimSpace(p.CVC) != ""
}

// PaymentProcessor charges the checkout total. The production wiring uses the
// simulator below; there is no gateway integration.
type PaymentProcessor interface {
	Charge(ctx context.Context, amount float64, details PaymentDetails) error
}

// SimulatedProcessor waits a fixed delay and always succeeds.
type SimulatedProcessor struct {
	Delay time.Duration
}

func (s SimulatedProcessor) Charge(ctx context.Context, _ float64, _ PaymentDetails) error {
	if s.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
