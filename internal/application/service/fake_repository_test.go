package service

import (
	"context"

	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/entity"
)

// fakePayments is an in-memory PaymentRepository recording its calls
type fakePayments struct {
	recordCash    func(ctx context.Context, orderID string) (*entity.Payment, error)
	orderPayments func(ctx context.Context, orderID string) ([]entity.Payment, error)
	reports       func(ctx context.Context, start, end, method string) (*entity.PaymentReport, error)
	payment       func(ctx context.Context, id string) (*entity.Payment, error)

	calls []string
}

func (f *fakePayments) RecordCashPayment(ctx context.Context, orderID string) (*entity.Payment, error) {
	f.calls = append(f.calls, "RecordCashPayment:"+orderID)
	return f.recordCash(ctx, orderID)
}

func (f *fakePayments) GetOrderPayments(ctx context.Context, orderID string) ([]entity.Payment, error) {
	f.calls = append(f.calls, "GetOrderPayments:"+orderID)
	return f.orderPayments(ctx, orderID)
}

func (f *fakePayments) GetPaymentReports(ctx context.Context, start, end, method string) (*entity.PaymentReport, error) {
	f.calls = append(f.calls, "GetPaymentReports:"+start+":"+end+":"+method)
	return f.reports(ctx, start, end, method)
}

func (f *fakePayments) GetPayment(ctx context.Context, id string) (*entity.Payment, error) {
	f.calls = append(f.calls, "GetPayment:"+id)
	return f.payment(ctx, id)
}
