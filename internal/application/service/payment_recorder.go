package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/entity"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/repository"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/infrastructure/paymentapi"
	"github.com/rajatvats23/swizzleFENg19-sub001/pkg/apperror"
	"github.com/shopspring/decimal"
)

const (
	MsgCashPaymentRecorded = "Cash payment recorded successfully"
	MsgCashPaymentFailed   = "Failed to record cash payment"
)

var (
	// ErrPaymentInProgress is returned when Confirm is called while a
	// submission of the same dialog is still in flight
	ErrPaymentInProgress = errors.New("cash payment submission already in progress")
	// ErrDialogClosed is returned when Confirm is called after the dialog closed
	ErrDialogClosed = errors.New("cash payment dialog is closed")
)

// CashPaymentRequest is the data the cash payment dialog is opened with
type CashPaymentRequest struct {
	OrderID  string
	Amount   decimal.Decimal
	Currency string
	// IdempotencyKey identifies the submission; generated when empty
	IdempotencyKey string
}

// DialogResult is delivered once when the dialog closes. Payment is nil when
// the dialog was dismissed.
type DialogResult struct {
	Payment *entity.Payment
}

// Confirmed reports whether the dialog closed with a recorded payment
func (r DialogResult) Confirmed() bool {
	return r.Payment != nil
}

// CashPaymentDialog is the modal confirming a cash payment for one order
type CashPaymentDialog struct {
	payments repository.PaymentRepository
	notifier Notifier
	request  CashPaymentRequest

	mu           sync.Mutex
	isProcessing bool
	closed       bool
	result       chan DialogResult
}

// OpenCashPaymentDialog opens the dialog for the given request
func OpenCashPaymentDialog(payments repository.PaymentRepository, notifier Notifier, req CashPaymentRequest) *CashPaymentDialog {
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = uuid.New().String()
	}
	return &CashPaymentDialog{
		payments: payments,
		notifier: notifier,
		request:  req,
		result:   make(chan DialogResult, 1),
	}
}

// Request returns the data the dialog was opened with
func (d *CashPaymentDialog) Request() CashPaymentRequest {
	return d.request
}

// IsProcessing reports whether a submission is in flight
func (d *CashPaymentDialog) IsProcessing() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.isProcessing
}

// IsClosed reports whether the dialog has delivered its result
func (d *CashPaymentDialog) IsClosed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// Result delivers exactly one DialogResult when the dialog closes
func (d *CashPaymentDialog) Result() <-chan DialogResult {
	return d.result
}

// Confirm submits the cash payment. On success the dialog closes with the
// recorded payment; on failure it stays open so the user can try again.
func (d *CashPaymentDialog) Confirm(ctx context.Context) (*entity.Payment, error) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil, ErrDialogClosed
	}
	if d.isProcessing {
		d.mu.Unlock()
		return nil, ErrPaymentInProgress
	}
	d.isProcessing = true
	d.mu.Unlock()

	ctx = paymentapi.WithIdempotencyKey(ctx, d.request.IdempotencyKey)
	payment, err := d.payments.RecordCashPayment(ctx, d.request.OrderID)

	d.mu.Lock()
	d.isProcessing = false
	if err == nil {
		d.closeLocked(DialogResult{Payment: payment})
	}
	d.mu.Unlock()

	if err != nil {
		d.notifier.Error(apperror.UserMessage(err, MsgCashPaymentFailed))
		return nil, err
	}

	d.notifier.Success(MsgCashPaymentRecorded)
	return payment, nil
}

// Cancel dismisses the dialog without recording anything. It has no effect
// while a submission is in flight or after the dialog closed.
func (d *CashPaymentDialog) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.isProcessing {
		return false
	}
	return d.closeLocked(DialogResult{})
}

func (d *CashPaymentDialog) closeLocked(res DialogResult) bool {
	if d.closed {
		return false
	}
	d.closed = true
	d.result <- res
	close(d.result)
	return true
}
