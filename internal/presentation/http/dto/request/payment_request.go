package request

// ReportQuery is the query of the report endpoints. Dates default to the last
// 30 days when omitted.
type ReportQuery struct {
	StartDate     string `form:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate       string `form:"endDate" validate:"omitempty,datetime=2006-01-02"`
	PaymentMethod string `form:"paymentMethod" validate:"omitempty,oneof=cash card upi wallet"`
}

// CashPaymentURI binds the order of a cash payment confirmation
type CashPaymentURI struct {
	OrderID string `uri:"orderId" validate:"required,max=128"`
}

// PaymentURI binds a payment id
type PaymentURI struct {
	ID string `uri:"id" validate:"required,max=128"`
}
