package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/go-ddd-blog/internal/domain/repository"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// uniqueFields maps unique constraint names to the form field they guard.
var uniqueFields = map[string]string{
	"users_email_key":    "email",
	"users_username_key": "username",
	"category_title_key": "title",
	"article_title_key":  "title",
}

// mapWriteError translates insert/update failures into repository errors.
func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			field, ok := uniqueFields[pgErr.ConstraintName]
			if !ok {
				field = pgErr.ColumnName
			}
			return &repository.DuplicateError{Field: field}
		case codeForeignKeyViolation:
			return repository.ErrMissingReference
		}
	}
	return err
}

// mapDeleteError translates delete failures; a foreign key hit means rows
// still point at the record.
func mapDeleteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
		return repository.ErrReferenced
	}
	return err
}

func mapReadError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}
