package repository

import (
	"errors"

	"stayhub/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes that map to repository error kinds.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeExclusionViolation  = "23P01"
)

// wrapWriteErr classifies constraint violations so the usecase layer can
// translate them without knowing Postgres error codes.
func wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeExclusionViolation:
			return infra.WrapRepoErr(msg, err, infra.KindConflict)
		case codeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case codeForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
