package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCommission(t *testing.T) {
	price := decimal.NewFromInt(10000)
	want := []string{"1000", "500", "400", "300", "200"}
	for level := 1; level <= MaxReferralLevel; level++ {
		got := Commission(price, level)
		if !got.Equal(decimal.RequireFromString(want[level-1])) {
			t.Errorf("level %d: got %s, want %s", level, got, want[level-1])
		}
	}
	if !Commission(price, 0).IsZero() || !Commission(price, 6).IsZero() {
		t.Error("levels outside 1..5 should earn nothing")
	}
}

func TestCommissionRounding(t *testing.T) {
	got := Commission(decimal.RequireFromString("999.99"), 3)
	if !got.Equal(decimal.RequireFromString("40")) {
		t.Errorf("got %s, want 40", got)
	}
}
