package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// AmountPlaces is the scale of every money column.
const AmountPlaces = 2

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates v against its `validate` tags. Failures wrap
// domain.ErrValidation.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(fields, "; "))
	}
	return fmt.Errorf("%w: %v", domain.ErrValidation, err)
}

func Errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrValidation, fmt.Sprintf(format, args...))
}

// Scale rejects values with more than places fractional digits. Trailing
// zeros do not count.
func Scale(field string, d decimal.Decimal, places int32) error {
	if !d.Equal(d.Round(places)) {
		return Errorf("%s %s has more than %d decimal places", field, d.String(), places)
	}
	return nil
}

func Amount(field string, d decimal.Decimal) error {
	return Scale(field, d, AmountPlaces)
}
