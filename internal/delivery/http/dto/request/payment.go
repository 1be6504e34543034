package request

type CreateOrderRequest struct {
	PackageID string `json:"package_id" binding:"required"`
}

// ConfirmPaymentRequest carries the three values the checkout widget hands
// back after a successful payment.
type ConfirmPaymentRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}
