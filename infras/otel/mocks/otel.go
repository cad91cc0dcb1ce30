package mocks

import (
	"context"

	"tudu/infras/otel"
)

type otelImpl struct{}

// NewOtel returns an otel.Otel whose scopes record nothing but traced errors.
func NewOtel() otel.Otel {
	return &otelImpl{}
}

func (o *otelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

func (o *otelImpl) Shutdown(_ context.Context) error {
	return nil
}
