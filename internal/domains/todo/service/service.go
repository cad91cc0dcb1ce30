package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"tudu/infras/otel"
	"tudu/infras/postgres"
	"tudu/internal/domains/todo/model"
	"tudu/internal/domains/todo/model/dto"
	"tudu/internal/domains/todo/repository"
	"tudu/shared"
	"tudu/shared/constant"
	gDto "tudu/shared/dto"
	"tudu/shared/failure"
)

const todoNotFoundMessage = "ToDo Not Found"

type Todo interface {
	Create(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	GetAll(ctx context.Context, order string) (dto.GetTodosResponse, error)
	Get(ctx context.Context, id int64) (dto.TodoResponse, error)
	Update(ctx context.Context, req dto.UpdateTodoRequest, id int64) (dto.TodoResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo       repository.Todo
	transactor postgres.Transactor
	otel       otel.Otel
}

func New(repo repository.Todo, transactor postgres.Transactor, otel otel.Otel) Todo {
	return &serviceImpl{
		repo:       repo,
		transactor: transactor,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		todo, err := s.repo.Insert(ctx, req.ToModel())
		if err != nil {
			log.Error().Err(err).Msg("failed to create todo")

			return fmt.Errorf("failed to create todo: %w", err)
		}

		res.FromModel(todo)

		return nil
	})

	return res, err
}

// GetAll lists every item in creation order; order "desc" reverses that listing.
func (s *serviceImpl) GetAll(ctx context.Context, order string) (res dto.GetTodosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.RequestParamOrder, order)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		models, err := s.repo.GetAll(ctx, gDto.FilterGroup{})
		if err != nil {
			log.Error().Err(err).Msg("failed to get todos")

			return fmt.Errorf("failed to get todos: %w", err)
		}

		if order == constant.OrderDesc {
			slices.Reverse(models)
		}

		res.FromModels(models)

		return nil
	})

	return res, err
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		res, err = s.get(ctx, id)

		return err
	})

	return res, err
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTodoRequest, id int64) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsDone == nil {
		return res, failure.UnprocessableFromString("is_done is required") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		exist, err := s.repo.Exist(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to check if todo exists")

			return fmt.Errorf("failed to check if todo exists: %w", err)
		}

		if !exist {
			return failure.NotFound(todoNotFoundMessage) // nolint:wrapcheck
		}

		if err = s.repo.Update(ctx, shared.TransformFields(req), filter); err != nil {
			log.Error().Err(err).Msg("failed to update todo")

			return fmt.Errorf("failed to update todo: %w", err)
		}

		res, err = s.get(ctx, id)

		return err
	})

	return res, err
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	return s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		exist, err := s.repo.Exist(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to check if todo exists")

			return fmt.Errorf("failed to check if todo exists: %w", err)
		}

		if !exist {
			return failure.NotFound(todoNotFoundMessage) // nolint:wrapcheck
		}

		if err = s.repo.Delete(ctx, filter); err != nil {
			log.Error().Err(err).Msg("failed to delete todo")

			return fmt.Errorf("failed to delete todo: %w", err)
		}

		return nil
	})
}

func (s *serviceImpl) get(ctx context.Context, id int64) (res dto.TodoResponse, err error) {
	todo, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == 0 {
		return res, failure.NotFound(todoNotFoundMessage) // nolint:wrapcheck
	}

	res.FromModel(todo)

	return res, nil
}
