package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"

	"github.com/lib/pq"

	"tudu/infras/otel"
	"tudu/infras/postgres"
	"tudu/internal/domains/user/model"
	"tudu/shared/constant"
	gDto "tudu/shared/dto"
	"tudu/shared/failure"
	gRepo "tudu/shared/repository"
)

const duplicateUserMessage = "username already exists"

type User interface {
	Insert(ctx context.Context, model model.User) (model.User, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// Insert stores a new account. A username taken by a concurrent sign-up surfaces as a conflict.
func (r *repositoryImpl) Insert(ctx context.Context, user model.User) (model.User, error) {
	inserted, err := r.Repository.Insert(ctx, user)
	if IsUniqueViolation(err) {
		return inserted, failure.Conflict(duplicateUserMessage) // nolint:wrapcheck
	}

	return inserted, err
}

func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == constant.PqErrorCodeUniqueViolation
	}

	return false
}
