package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tudu/infras/otel/mocks"
	txMocks "tudu/infras/postgres/mocks"
	todoMocks "tudu/internal/domains/todo/mocks"
	"tudu/internal/domains/todo/model"
	"tudu/internal/domains/todo/model/dto"
	"tudu/internal/domains/todo/service"
	"tudu/shared/failure"
)

func boolPtr(v bool) *bool {
	return &v
}

func TestTodoService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateTodoRequest
		setupMock func(mockRepo *todoMocks.MockTodo)
		want      dto.TodoResponse
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  dto.CreateTodoRequest{Content: "buy milk"},
			setupMock: func(mockRepo *todoMocks.MockTodo) {
				mockRepo.EXPECT().
					Insert(gomock.Any(), model.Todo{Content: "buy milk"}).
					Return(model.Todo{ID: 1, Content: "buy milk"}, nil)
			},
			want: dto.TodoResponse{ID: 1, Content: "buy milk", IsDone: false},
		},
		{
			name: "repository error",
			req:  dto.CreateTodoRequest{Content: "buy milk"},
			setupMock: func(mockRepo *todoMocks.MockTodo) {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(model.Todo{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := todoMocks.NewMockTodo(ctrl)
			transactor := txMocks.NewTransactor()
			svc := service.New(mockRepo, transactor, mocks.NewOtel())

			tt.setupMock(mockRepo)

			got, err := svc.Create(context.Background(), tt.req)

			assert.Equal(t, 1, transactor.Calls())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTodoService_GetAll(t *testing.T) {
	stored := []model.Todo{
		{ID: 1, Content: "first"},
		{ID: 2, Content: "second", IsDone: true},
		{ID: 5, Content: "third"},
	}

	natural := []dto.TodoResponse{
		{ID: 1, Content: "first"},
		{ID: 2, Content: "second", IsDone: true},
		{ID: 5, Content: "third"},
	}

	reversed := []dto.TodoResponse{
		{ID: 5, Content: "third"},
		{ID: 2, Content: "second", IsDone: true},
		{ID: 1, Content: "first"},
	}

	tests := []struct {
		name    string
		order   string
		stored  []model.Todo
		repoErr error
		want    []dto.TodoResponse
		wantErr bool
	}{
		{name: "no order keeps store order", order: "", stored: stored, want: natural},
		{name: "asc keeps store order", order: "asc", stored: stored, want: natural},
		{name: "unknown order keeps store order", order: "sideways", stored: stored, want: natural},
		{name: "desc reverses store order", order: "desc", stored: stored, want: reversed},
		{name: "empty store", order: "desc", stored: []model.Todo{}, want: []dto.TodoResponse{}},
		{name: "repository error", repoErr: errors.New("database error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := todoMocks.NewMockTodo(ctrl)
			svc := service.New(mockRepo, txMocks.NewTransactor(), mocks.NewOtel())

			// the repository hands back a fresh slice per call
			rows := append([]model.Todo(nil), tt.stored...)

			mockRepo.EXPECT().
				GetAll(gomock.Any(), gomock.Any()).
				Return(rows, tt.repoErr)

			got, err := svc.GetAll(context.Background(), tt.order)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Todos)
		})
	}
}

func TestTodoService_Get(t *testing.T) {
	tests := []struct {
		name     string
		id       int64
		stored   model.Todo
		repoErr  error
		want     dto.TodoResponse
		wantCode int
	}{
		{
			name:   "found",
			id:     3,
			stored: model.Todo{ID: 3, Content: "buy milk", IsDone: true},
			want:   dto.TodoResponse{ID: 3, Content: "buy milk", IsDone: true},
		},
		{
			name:     "not found",
			id:       99,
			stored:   model.Todo{},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "zero id",
			id:       0,
			stored:   model.Todo{},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "repository error",
			id:       3,
			repoErr:  errors.New("database error"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := todoMocks.NewMockTodo(ctrl)
			svc := service.New(mockRepo, txMocks.NewTransactor(), mocks.NewOtel())

			mockRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(tt.stored, tt.repoErr)

			got, err := svc.Get(context.Background(), tt.id)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTodoService_Get_NotFoundMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, txMocks.NewTransactor(), mocks.NewOtel())

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Todo{}, nil)

	_, err := svc.Get(context.Background(), 1)

	assert.EqualError(t, err, "ToDo Not Found")
}

func TestTodoService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateTodoRequest
		setupMock func(mockRepo *todoMocks.MockTodo)
		want      dto.TodoResponse
		wantCode  int
	}{
		{
			name: "mark done",
			req:  dto.UpdateTodoRequest{IsDone: boolPtr(true)},
			setupMock: func(mockRepo *todoMocks.MockTodo) {
				gomock.InOrder(
					mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil),
					mockRepo.EXPECT().
						Update(gomock.Any(), map[string]any{model.FieldIsDone: true}, gomock.Any()).
						Return(nil),
					mockRepo.EXPECT().
						Get(gomock.Any(), gomock.Any()).
						Return(model.Todo{ID: 4, Content: "buy milk", IsDone: true}, nil),
				)
			},
			want: dto.TodoResponse{ID: 4, Content: "buy milk", IsDone: true},
		},
		{
			name: "mark not done writes false",
			req:  dto.UpdateTodoRequest{IsDone: boolPtr(false)},
			setupMock: func(mockRepo *todoMocks.MockTodo) {
				gomock.InOrder(
					mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil),
					mockRepo.EXPECT().
						Update(gomock.Any(), map[string]any{model.FieldIsDone: false}, gomock.Any()).
						Return(nil),
					mockRepo.EXPECT().
						Get(gomock.Any(), gomock.Any()).
						Return(model.Todo{ID: 4, Content: "buy milk"}, nil),
				)
			},
			want: dto.TodoResponse{ID: 4, Content: "buy milk", IsDone: false},
		},
		{
			name:      "missing is_done",
			req:       dto.UpdateTodoRequest{},
			setupMock: func(_ *todoMocks.MockTodo) {},
			wantCode:  http.StatusUnprocessableEntity,
		},
		{
			name: "not found",
			req:  dto.UpdateTodoRequest{IsDone: boolPtr(true)},
			setupMock: func(mockRepo *todoMocks.MockTodo) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "exist check error",
			req:  dto.UpdateTodoRequest{IsDone: boolPtr(true)},
			setupMock: func(mockRepo *todoMocks.MockTodo) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "update error",
			req:  dto.UpdateTodoRequest{IsDone: boolPtr(true)},
			setupMock: func(mockRepo *todoMocks.MockTodo) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := todoMocks.NewMockTodo(ctrl)
			svc := service.New(mockRepo, txMocks.NewTransactor(), mocks.NewOtel())

			tt.setupMock(mockRepo)

			got, err := svc.Update(context.Background(), tt.req, 4)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTodoService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mockRepo *todoMocks.MockTodo)
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func(mockRepo *todoMocks.MockTodo) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "not found",
			setupMock: func(mockRepo *todoMocks.MockTodo) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "delete error",
			setupMock: func(mockRepo *todoMocks.MockTodo) {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRepo := todoMocks.NewMockTodo(ctrl)
			transactor := txMocks.NewTransactor()
			svc := service.New(mockRepo, transactor, mocks.NewOtel())

			tt.setupMock(mockRepo)

			err := svc.Delete(context.Background(), 4)

			assert.Equal(t, 1, transactor.Calls())

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
