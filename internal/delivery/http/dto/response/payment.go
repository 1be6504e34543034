package response

import "github.com/shopspring/decimal"

type CreateOrderResponse struct {
	OrderID     string          `json:"order_id"`
	KeyID       string          `json:"key_id"`
	Amount      decimal.Decimal `json:"amount"`
	AmountMinor int64           `json:"amount_minor"`
	Currency    string          `json:"currency"`
	Receipt     string          `json:"receipt"`
	PackageName string          `json:"package_name"`
}

type ConfirmPaymentResponse struct {
	Grant       GrantResponse      `json:"grant"`
	Commissions []ReferralResponse `json:"commissions"`
}
