package service

import (
	"context"

	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/entity"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/enum"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/repository"
	"github.com/rajatvats23/swizzleFENg19-sub001/pkg/apperror"
)

const (
	// OrderIDParam is the navigation parameter holding the order id
	OrderIDParam = "orderId"

	MsgPaymentsLoadFailed = "Failed to load payments"
)

// RouteParams is the navigation context a view is opened with.
// *gin.Context satisfies it.
type RouteParams interface {
	Param(key string) string
}

// Params is a RouteParams backed by a map
type Params map[string]string

func (p Params) Param(key string) string {
	return p[key]
}

// PaymentLister loads and holds the payments of one order
type PaymentLister struct {
	payments repository.PaymentRepository
	notifier Notifier

	OrderID  string
	Payments []entity.Payment
	Loading  bool
}

// NewPaymentLister creates a lister in its loading state
func NewPaymentLister(payments repository.PaymentRepository, notifier Notifier) *PaymentLister {
	return &PaymentLister{
		payments: payments,
		notifier: notifier,
		Payments: []entity.Payment{},
		Loading:  true,
	}
}

// Init reads the order id from params and loads its payments. A missing
// order id leaves the list empty.
func (l *PaymentLister) Init(ctx context.Context, params RouteParams) error {
	l.OrderID = params.Param(OrderIDParam)
	if l.OrderID == "" {
		l.Loading = false
		return nil
	}
	return l.load(ctx)
}

// Reload fetches the payments of the current order again
func (l *PaymentLister) Reload(ctx context.Context) error {
	if l.OrderID == "" {
		return nil
	}
	l.Loading = true
	return l.load(ctx)
}

func (l *PaymentLister) load(ctx context.Context) error {
	defer func() { l.Loading = false }()

	payments, err := l.payments.GetOrderPayments(ctx, l.OrderID)
	if err != nil {
		l.Payments = []entity.Payment{}
		l.notifier.Error(apperror.UserMessage(err, MsgPaymentsLoadFailed))
		return err
	}

	l.Payments = payments
	return nil
}

// StatusColor maps a payment status to its display color. Every input,
// known or not, yields a value.
func StatusColor(status string) enum.StatusColor {
	return enum.PaymentStatus(status).Color()
}
