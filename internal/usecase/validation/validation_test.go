package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/shopspring/decimal"
)

type sample struct {
	Name string `validate:"required"`
	URL  string `validate:"omitempty,url"`
	N    int    `validate:"gte=1"`
}

func TestStruct(t *testing.T) {
	if err := Struct(sample{Name: "x", N: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := Struct(sample{URL: "not a url", N: 0})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	for _, field := range []string{"Name", "URL", "N"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"100", true},
		{"100.5", true},
		{"100.50", true},
		{"100.500", true},
		{"100.005", false},
		{"0.001", false},
	}
	for _, tt := range tests {
		err := Amount("amount", decimal.RequireFromString(tt.in))
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tt.in, err)
		}
		if !tt.ok && !errors.Is(err, domain.ErrValidation) {
			t.Errorf("%s: err = %v, want ErrValidation", tt.in, err)
		}
	}
}
