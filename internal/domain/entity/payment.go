package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/enum"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Payment represents a payment recorded against an order
type Payment struct {
	ID              string             `json:"id"`
	Order           OrderRef           `json:"order"`
	Amount          decimal.Decimal    `json:"amount"`
	Currency        string             `json:"currency"`
	Status          enum.PaymentStatus `json:"status"`
	PaymentMethod   enum.PaymentMethod `json:"paymentMethod"`
	PaymentIntentID string             `json:"paymentIntentId,omitempty"`
	ReceiptURL      string             `json:"receiptUrl,omitempty"`
	Metadata        json.RawMessage    `json:"metadata,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// HasReceipt reports whether a receipt link can be offered for the payment
func (p *Payment) HasReceipt() bool {
	return p.ReceiptURL != ""
}

// HasKnownValues reports whether status and method both belong to their closed
// sets. The backend may add values or omit the fields; such payments are still
// shown, with the default status color and an "Unknown" method.
func (p *Payment) HasKnownValues() bool {
	return p.Status.IsValid() && p.PaymentMethod.IsValid()
}

// OrderRef references the order a payment belongs to. The backend sends
// either the order id as a string or the populated order document.
type OrderRef struct {
	ID       string
	Embedded json.RawMessage
}

// orderDocument holds the identifying fields of a populated order
type orderDocument struct {
	ID       string `json:"id"`
	ObjectID string `json:"_id"`
}

// IsEmbedded reports whether the backend populated the whole order
func (o OrderRef) IsEmbedded() bool {
	return len(o.Embedded) > 0
}

func (o OrderRef) MarshalJSON() ([]byte, error) {
	if o.IsEmbedded() {
		return o.Embedded, nil
	}
	return json.Marshal(o.ID)
}

func (o *OrderRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*o = OrderRef{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*o = OrderRef{ID: id}
		return nil
	}

	var doc orderDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("order reference: %w", err)
	}
	id := doc.ID
	if id == "" {
		id = doc.ObjectID
	}
	*o = OrderRef{
		ID:       id,
		Embedded: append(json.RawMessage(nil), data...),
	}
	return nil
}
