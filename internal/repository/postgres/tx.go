package postgres

import (
	"context"
	"errors"
	"fmt"

	"agri-auction/internal/biddingerrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type txKey struct{}

func withTx(ctx context.Context, pool *pgxpool.Pool, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}

	// no-op once committed; also covers a panicking fn
	defer func() { _ = tx.Rollback(ctx) }()

	txCtx := context.WithValue(ctx, txKey{}, tx)
	if err := fn(txCtx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return translate("commit", err, nil)
	}
	return nil
}

func txFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey{}).(pgx.Tx)
	return tx
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool { return pgCode(err) == "23505" }

func isForeignKeyViolation(err error) bool { return pgCode(err) == "23503" }

func isInvalidUUID(err error) bool { return pgCode(err) == "22P02" }

// serialization failure, deadlock, lock not available
func isRetryable(err error) bool {
	switch pgCode(err) {
	case "40001", "40P01", "55P03":
		return true
	}
	return false
}

// translate maps driver errors onto the shared sentinels. notFound is used for
// pgx.ErrNoRows and may be nil when the query cannot come back empty.
func translate(op string, err error, notFound error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows) && notFound != nil:
		return fmt.Errorf("%s: %w", op, notFound)
	case isInvalidUUID(err):
		return fmt.Errorf("%s: %w", op, biddingerrors.ErrInvalidID)
	case isRetryable(err):
		return fmt.Errorf("%s: %w - %v", op, biddingerrors.ErrConflict, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
