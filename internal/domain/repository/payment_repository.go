package repository

import (
	"context"

	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/entity"
)

// PaymentRepository is the access layer to the remote payments API.
// Every call is a single request: no retries, no caching.
type PaymentRepository interface {
	// RecordCashPayment confirms a cash payment for an order
	RecordCashPayment(ctx context.Context, orderID string) (*entity.Payment, error)
	// GetOrderPayments lists the payments of an order in backend order
	GetOrderPayments(ctx context.Context, orderID string) ([]entity.Payment, error)
	// GetPaymentReports fetches the report of a window. Dates are YYYY-MM-DD;
	// an empty paymentMethod means all methods.
	GetPaymentReports(ctx context.Context, startDate, endDate, paymentMethod string) (*entity.PaymentReport, error)
	// GetPayment fetches a single payment
	GetPayment(ctx context.Context, id string) (*entity.Payment, error)
}
