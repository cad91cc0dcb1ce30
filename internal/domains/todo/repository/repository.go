package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"tudu/infras/otel"
	"tudu/infras/postgres"
	"tudu/internal/domains/todo/model"
	gDto "tudu/shared/dto"
	gRepo "tudu/shared/repository"
)

type Todo interface {
	Insert(ctx context.Context, model model.Todo) (model.Todo, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Todo, error)
	GetAll(ctx context.Context, filter gDto.FilterGroup) ([]model.Todo, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Todo]
}

func New(db *postgres.Connection, otel otel.Otel) Todo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Todo](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
