package repository

import (
	"errors"
	"fmt"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// invalidTextRepresentation is raised when a malformed value reaches a typed column.
const invalidTextRepresentation = "22P02"

// translateError maps gorm errors onto domain sentinels.
func translateError(err error, what string) error {
	var pgErr *pgconn.PgError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %s already exists", domain.ErrValidation, what)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %s references a missing row", domain.ErrValidation, what)
	case errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation:
		return fmt.Errorf("%w: %s: %s", domain.ErrValidation, what, pgErr.Message)
	}
	return err
}

// checkID rejects ids that can never match a uuid primary key. Such a row
// simply does not exist, so the caller sees not found rather than a cast error.
func checkID(id, what string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%s %q: %w", what, id, domain.ErrNotFound)
	}
	return nil
}

// checkRefID is checkID for ids supplied as references or filters, where a
// malformed value is a bad request.
func checkRefID(id, what string) error {
	if id == "" {
		return nil
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s %q is not a valid id", domain.ErrValidation, what, id)
	}
	return nil
}

func pageOffset(page, limit int) (int, int) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit, limit
}
