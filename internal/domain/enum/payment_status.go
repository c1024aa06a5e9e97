package enum

// PaymentStatus is the lifecycle label the payments backend assigns to a payment
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusSuccessful PaymentStatus = "successful"
	PaymentStatusFailed     PaymentStatus = "failed"
)

// StatusColor is the display palette entry used to render a payment status
type StatusColor string

const (
	StatusColorPrimary StatusColor = "primary"
	StatusColorAccent  StatusColor = "accent"
	StatusColorWarn    StatusColor = "warn"
	StatusColorDefault StatusColor = ""
)

func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid reports whether s belongs to the closed set of statuses
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusProcessing, PaymentStatusSuccessful, PaymentStatusFailed:
		return true
	}
	return false
}

// Color maps a status to its display color. Unknown values get the default.
func (s PaymentStatus) Color() StatusColor {
	switch s {
	case PaymentStatusSuccessful:
		return StatusColorPrimary
	case PaymentStatusPending, PaymentStatusProcessing:
		return StatusColorAccent
	case PaymentStatusFailed:
		return StatusColorWarn
	default:
		return StatusColorDefault
	}
}
