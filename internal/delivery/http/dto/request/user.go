package request

type RegisterRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	ReferralCode string `json:"referral_code"`
}
