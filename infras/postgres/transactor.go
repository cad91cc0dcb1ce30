package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"tudu/infras/otel"
)

const otelTxScopeName = "transaction"

type txKey struct{}

// Transactor runs a unit of work inside a single database transaction.
// Repositories pick the transaction up from the context handed to fn.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type transactor struct {
	db   *Connection
	otel otel.Otel
}

func NewTransactor(db *Connection, otel otel.Otel) Transactor {
	return &transactor{
		db:   db,
		otel: otel,
	}
}

// WithinTx commits when fn returns nil and rolls back on error or panic.
// A context that already carries a transaction is reused as is.
func (t *transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := TxFromContext(ctx); ok {
		return fn(ctx)
	}

	ctx, scope := t.otel.NewScope(ctx, otelTxScopeName, otelTxScopeName+".WithinTx")
	defer scope.End()

	tx, err := t.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(WithTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, context.Canceled) {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// WithTx returns a copy of ctx carrying tx.
func WithTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext returns the transaction opened by WithinTx, if any.
func TxFromContext(ctx context.Context) (*sqlx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)

	return tx, ok && tx != nil
}
