package entity

// Envelope statuses used by the payments backend
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the envelope every payments backend reply is wrapped in
type APIResponse[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// PaymentPayload is the data of a single-payment reply
type PaymentPayload struct {
	Payment *Payment `json:"payment"`
}

// PaymentListPayload is the data of an order payments reply
type PaymentListPayload struct {
	Payments []Payment `json:"payments"`
}

// CashPaymentRequest is the body of a cash payment submission
type CashPaymentRequest struct {
	OrderID string `json:"orderId"`
}
