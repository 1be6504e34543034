package userdto

type RegisterVendorInput struct {
	Name         string `validate:"required,max=100"`
	Email        string `validate:"required,email"`
	ReferralCode string `validate:"omitempty,alphanum,max=16"`
}
