package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/application/service"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/repository"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/infrastructure/paymentapi"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/presentation/http/dto/request"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/presentation/http/dto/response"
	"github.com/rajatvats23/swizzleFENg19-sub001/pkg/apperror"
	"github.com/sirupsen/logrus"
)

const msgPaymentLoadFailed = "Failed to load payment"

// PaymentHandler serves the cash payment dialog, the order payments list and
// single payments. Every request gets its own controller.
type PaymentHandler struct {
	payments repository.PaymentRepository
	notifier service.Notifier
	log      *logrus.Entry
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(payments repository.PaymentRepository, log *logrus.Entry) *PaymentHandler {
	log = log.WithField("handler", "payment")
	return &PaymentHandler{
		payments: payments,
		notifier: service.NewLogNotifier(log),
		log:      log,
	}
}

// RecordCashPayment confirms a cash payment for the order in the path
func (h *PaymentHandler) RecordCashPayment(c *gin.Context) {
	var uri request.CashPaymentURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}
	if errs := validateStruct(uri); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	notes := &service.NotificationBuffer{}
	notifier := service.MultiNotifier{notes, h.notifier}
	dialog := service.OpenCashPaymentDialog(h.payments, notifier, service.CashPaymentRequest{
		OrderID:        uri.OrderID,
		IdempotencyKey: c.GetHeader(paymentapi.IdempotencyKeyHeader),
	})

	payment, err := dialog.Confirm(backendContext(c))
	note, _ := notes.Last()
	if err != nil {
		h.log.WithFields(logrus.Fields{
			"order_id":   uri.OrderID,
			"request_id": response.RequestID(c),
		}).WithError(err).Warn("cash payment failed")
		response.ErrorWithCode(c, errorCode(err), note.Message)
		return
	}

	h.log.WithFields(logrus.Fields{
		"order_id":   uri.OrderID,
		"payment_id": payment.ID,
	}).Info("cash payment recorded")

	response.Created(c, note.Message, response.CashPaymentView{
		Payment:      response.NewPaymentView(payment),
		IsProcessing: dialog.IsProcessing(),
	})
}

// ListOrderPayments returns the payments of the order in the path
func (h *PaymentHandler) ListOrderPayments(c *gin.Context) {
	notes := &service.NotificationBuffer{}
	notifier := service.MultiNotifier{notes, h.notifier}
	lister := service.NewPaymentLister(h.payments, notifier)

	if err := lister.Init(backendContext(c), c); err != nil {
		note, _ := notes.Last()
		response.ErrorWithData(c, errorCode(err), note.Message,
			response.NewPaymentListView(lister.OrderID, lister.Payments, lister.Loading))
		return
	}

	response.OK(c, "Payments retrieved successfully",
		response.NewPaymentListView(lister.OrderID, lister.Payments, lister.Loading))
}

// GetPayment returns a single payment
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	var uri request.PaymentURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}
	if errs := validateStruct(uri); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	payment, err := h.payments.GetPayment(backendContext(c), uri.ID)
	if err != nil {
		response.ErrorWithCode(c, errorCode(err), apperror.UserMessage(err, msgPaymentLoadFailed))
		return
	}

	response.OK(c, "Payment retrieved successfully", response.NewPaymentView(payment))
}
