package mocks

import (
	"context"

	"tudu/infras/postgres"
)

type transactorImpl struct {
	calls int
}

// WithinTx implements postgres.Transactor without a database.
func (t *transactorImpl) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++

	return fn(ctx)
}

// Calls reports how many units of work were run.
func (t *transactorImpl) Calls() int {
	return t.calls
}

func NewTransactor() interface {
	postgres.Transactor
	Calls() int
} {
	return &transactorImpl{}
}
