package domain

import "errors"

var (
	ErrQuotaExhausted         = errors.New("package required: quota exhausted")
	ErrTaskNotAvailable       = errors.New("task not available")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrPackageInUse           = errors.New("package is referenced by an active grant")
	ErrValidation             = errors.New("validation failed")
	ErrNotFound               = errors.New("not found")
	ErrInvalidSignature       = errors.New("invalid payment signature")
	ErrForbidden              = errors.New("forbidden")
	ErrBelowMinimumWithdrawal = errors.New("amount is below the minimum withdrawal")
	ErrPaymentProcessed       = errors.New("payment already processed")
	ErrWithdrawalProcessed    = errors.New("withdrawal already processed")
)
