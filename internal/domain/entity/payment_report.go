package entity

import (
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// PaymentReport holds the aggregate statistics of a report window
type PaymentReport struct {
	Summary     ReportSummary `json:"summary"`
	DailyTotals []DailyTotal  `json:"dailyTotals"`
}

// ReportSummary contains the totals over the whole window
type ReportSummary struct {
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	TotalCount      int             `json:"totalCount"`
	MethodBreakdown MethodBreakdown `json:"methodBreakdown"`
}

// MethodBreakdown is the amount collected per payment method
type MethodBreakdown struct {
	Cash   decimal.Decimal `json:"cash"`
	Card   decimal.Decimal `json:"card"`
	UPI    decimal.Decimal `json:"upi"`
	Wallet decimal.Decimal `json:"wallet"`
}

// DailyTotal is one row of the daily breakdown
type DailyTotal struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// For returns the amount collected with the given method
func (b MethodBreakdown) For(method enum.PaymentMethod) decimal.Decimal {
	switch method {
	case enum.PaymentMethodCash:
		return b.Cash
	case enum.PaymentMethodCard:
		return b.Card
	case enum.PaymentMethodUPI:
		return b.UPI
	case enum.PaymentMethodWallet:
		return b.Wallet
	default:
		return decimal.Zero
	}
}

// DailyAmount sums the amounts of the daily breakdown
func (r *PaymentReport) DailyAmount() decimal.Decimal {
	sum := decimal.Zero
	for _, d := range r.DailyTotals {
		sum = sum.Add(d.Amount)
	}
	return sum
}

// DailyCount sums the payment counts of the daily breakdown
func (r *PaymentReport) DailyCount() int {
	count := 0
	for _, d := range r.DailyTotals {
		count += d.Count
	}
	return count
}

// Reconciles reports whether the daily breakdown adds up to the summary.
// The backend guarantees it; callers only use it for diagnostics.
func (r *PaymentReport) Reconciles() bool {
	return r.DailyAmount().Equal(r.Summary.TotalAmount)
}
