package response

import (
	"encoding/json"
	"time"

	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/entity"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/enum"
	"github.com/rajatvats23/swizzleFENg19-sub001/pkg/format"
	"github.com/shopspring/decimal"
)

// PaymentView is a payment as rendered by the payment views
type PaymentView struct {
	ID              string             `json:"id"`
	OrderID         string             `json:"orderId"`
	Order           json.RawMessage    `json:"order,omitempty"`
	Amount          decimal.Decimal    `json:"amount"`
	AmountDisplay   string             `json:"amountDisplay"`
	Currency        string             `json:"currency"`
	Status          enum.PaymentStatus `json:"status"`
	StatusColor     enum.StatusColor   `json:"statusColor"`
	PaymentMethod   enum.PaymentMethod `json:"paymentMethod"`
	MethodLabel     string             `json:"methodLabel"`
	PaymentIntentID string             `json:"paymentIntentId,omitempty"`
	HasReceipt      bool               `json:"hasReceipt"`
	ReceiptURL      string             `json:"receiptUrl,omitempty"`
	Metadata        json.RawMessage    `json:"metadata,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	CreatedDisplay  string             `json:"createdDisplay"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// NewPaymentView builds the view of a payment
func NewPaymentView(p *entity.Payment) PaymentView {
	return PaymentView{
		ID:              p.ID,
		OrderID:         p.Order.ID,
		Order:           p.Order.Embedded,
		Amount:          p.Amount,
		AmountDisplay:   format.Currency(p.Amount, p.Currency),
		Currency:        p.Currency,
		Status:          p.Status,
		StatusColor:     p.Status.Color(),
		PaymentMethod:   p.PaymentMethod,
		MethodLabel:     p.PaymentMethod.PaymentLabel(),
		PaymentIntentID: p.PaymentIntentID,
		HasReceipt:      p.HasReceipt(),
		ReceiptURL:      p.ReceiptURL,
		Metadata:        p.Metadata,
		CreatedAt:       p.CreatedAt,
		CreatedDisplay:  format.DateTime(p.CreatedAt),
		UpdatedAt:       p.UpdatedAt,
	}
}

// PaymentListView is the payments of one order
type PaymentListView struct {
	OrderID  string        `json:"orderId"`
	Payments []PaymentView `json:"payments"`
	Loading  bool          `json:"loading"`
}

// NewPaymentListView builds the order payments view
func NewPaymentListView(orderID string, payments []entity.Payment, loading bool) PaymentListView {
	views := make([]PaymentView, 0, len(payments))
	for i := range payments {
		views = append(views, NewPaymentView(&payments[i]))
	}
	return PaymentListView{OrderID: orderID, Payments: views, Loading: loading}
}

// CashPaymentView is the outcome of a cash payment confirmation
type CashPaymentView struct {
	Payment      PaymentView `json:"payment"`
	IsProcessing bool        `json:"isProcessing"`
}

// ReportView is the report form together with the generated report
type ReportView struct {
	StartDate     string                `json:"startDate"`
	EndDate       string                `json:"endDate"`
	PaymentMethod enum.PaymentMethod    `json:"paymentMethod"`
	Report        *entity.PaymentReport `json:"report"`
	Reconciles    bool                  `json:"reconciles"`
}
