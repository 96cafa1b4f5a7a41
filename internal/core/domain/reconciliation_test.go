package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
)

func TestReconciliation_ComputeTotals(t *testing.T) {
	tests := []struct {
		name             string
		pix              string
		onlinePix        string
		debit            string
		credit           string
		cash             string
		wantTotalIncome  string
		wantAmountToSend string
	}{
		{
			name: "all zero",
			pix:  "0", onlinePix: "0", debit: "0", credit: "0", cash: "0",
			wantTotalIncome:  "0",
			wantAmountToSend: "0",
		},
		{
			name: "round total",
			pix:  "200", onlinePix: "150.50", debit: "100", credit: "300.25", cash: "249.25",
			wantTotalIncome:  "1000",
			wantAmountToSend: "150",
		},
		{
			name: "half-up rounding at the third decimal",
			pix:  "0", onlinePix: "0", debit: "0", credit: "0", cash: "333.33",
			// 333.33 * 0.15 = 49.9995
			wantTotalIncome:  "333.33",
			wantAmountToSend: "50",
		},
		{
			name: "cents precision preserved",
			pix:  "10.01", onlinePix: "20.02", debit: "30.03", credit: "0", cash: "0",
			// 60.06 * 0.15 = 9.009
			wantTotalIncome:  "60.06",
			wantAmountToSend: "9.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.Reconciliation{
				PixAmount:       decimal.RequireFromString(tt.pix),
				OnlinePixAmount: decimal.RequireFromString(tt.onlinePix),
				DebitAmount:     decimal.RequireFromString(tt.debit),
				CreditAmount:    decimal.RequireFromString(tt.credit),
				CashAmount:      decimal.RequireFromString(tt.cash),
			}
			r.ComputeTotals()

			assert.True(t, r.TotalIncome.Equal(decimal.RequireFromString(tt.wantTotalIncome)),
				"total income: want %s, got %s", tt.wantTotalIncome, r.TotalIncome)
			assert.True(t, r.AmountToSend.Equal(decimal.RequireFromString(tt.wantAmountToSend)),
				"amount to send: want %s, got %s", tt.wantAmountToSend, r.AmountToSend)
		})
	}
}

func TestReconciliation_ComputeTotalsIsIdempotent(t *testing.T) {
	r := domain.Reconciliation{
		PixAmount:  decimal.RequireFromString("123.45"),
		CashAmount: decimal.RequireFromString("678.90"),
	}
	r.ComputeTotals()
	first := r.AmountToSend
	r.ComputeTotals()

	assert.True(t, first.Equal(r.AmountToSend))
}

func TestNormalizeMonth(t *testing.T) {
	in := time.Date(2025, 6, 18, 14, 30, 45, 123, time.FixedZone("BRT", -3*3600))
	got := domain.NormalizeMonth(in)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), got)
}
