package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestCheckID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want error
	}{
		{"uuid", uuid.NewString(), nil},
		{"garbage", "abc", domain.ErrNotFound},
		{"empty", "", domain.ErrNotFound},
		{"truncated", uuid.NewString()[:30], domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkID(tt.id, "task")
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCheckRefID(t *testing.T) {
	if err := checkRefID("", "assignee"); err != nil {
		t.Fatalf("empty reference should pass: %v", err)
	}
	if err := checkRefID(uuid.NewString(), "assignee"); err != nil {
		t.Fatalf("uuid reference should pass: %v", err)
	}
	if err := checkRefID("not-a-user", "assignee"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTranslateError(t *testing.T) {
	castErr := &pgconn.PgError{Code: "22P02", Message: `invalid input syntax for type uuid: "abc"`}
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"not found", gorm.ErrRecordNotFound, domain.ErrNotFound},
		{"duplicate", gorm.ErrDuplicatedKey, domain.ErrValidation},
		{"foreign key", gorm.ErrForeignKeyViolated, domain.ErrValidation},
		{"bad uuid", fmt.Errorf("select: %w", castErr), domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translateError(tt.err, "task"); !errors.Is(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}

	other := &pgconn.PgError{Code: "40001"}
	if got := translateError(other, "task"); got != error(other) {
		t.Fatalf("unmapped error should pass through, got %v", got)
	}
	if translateError(nil, "task") != nil {
		t.Fatal("nil should stay nil")
	}
}
