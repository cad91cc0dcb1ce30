package todo_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tudu/infras/otel/mocks"
	"tudu/internal/domains/todo/model/dto"
	todoMocks "tudu/internal/domains/todo/service/mocks"
	"tudu/internal/handlers/todo"
	"tudu/shared/failure"
)

func newRouter(t *testing.T) (*chi.Mux, *todoMocks.MockTodo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := todoMocks.NewMockTodo(ctrl)

	router := chi.NewRouter()
	handler := todo.New(svc, mocks.NewOtel())
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestHandler_CreateTodo(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setupMock    func(svc *todoMocks.MockTodo)
		expectedCode int
		expectedBody string
	}{
		{
			name: "created",
			body: `{"content":"buy milk"}`,
			setupMock: func(svc *todoMocks.MockTodo) {
				svc.EXPECT().
					Create(gomock.Any(), dto.CreateTodoRequest{Content: "buy milk"}).
					Return(dto.TodoResponse{ID: 1, Content: "buy milk"}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":1,"content":"buy milk","is_done":false}`,
		},
		{
			name:         "missing content",
			body:         `{}`,
			setupMock:    func(_ *todoMocks.MockTodo) {},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"detail":"content is required"}`,
		},
		{
			name:         "malformed body",
			body:         `{"content":`,
			setupMock:    func(_ *todoMocks.MockTodo) {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "service error",
			body: `{"content":"buy milk"}`,
			setupMock: func(svc *todoMocks.MockTodo) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.TodoResponse{}, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"detail":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			recorder := serve(router, http.MethodPost, "/todos", tt.body)

			assert.Equal(t, tt.expectedCode, recorder.Code)

			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, recorder.Body.String())
			}
		})
	}
}

func TestHandler_GetTodos(t *testing.T) {
	tests := []struct {
		name          string
		target        string
		expectedOrder string
	}{
		{name: "without order", target: "/todos", expectedOrder: ""},
		{name: "trailing slash", target: "/todos/", expectedOrder: ""},
		{name: "desc", target: "/todos?order=desc", expectedOrder: "desc"},
		{name: "unknown order passed through", target: "/todos?order=random", expectedOrder: "random"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)

			svc.EXPECT().
				GetAll(gomock.Any(), tt.expectedOrder).
				Return(dto.GetTodosResponse{Todos: []dto.TodoResponse{{ID: 1, Content: "buy milk"}}}, nil)

			recorder := serve(router, http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.JSONEq(t, `{"todos":[{"id":1,"content":"buy milk","is_done":false}]}`, recorder.Body.String())
		})
	}
}

func TestHandler_GetTodoByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Get(gomock.Any(), int64(3)).Return(dto.TodoResponse{ID: 3, Content: "buy milk", IsDone: true}, nil)

		recorder := serve(router, http.MethodGet, "/todos/3", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"id":3,"content":"buy milk","is_done":true}`, recorder.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Get(gomock.Any(), int64(99)).Return(dto.TodoResponse{}, failure.NotFound("ToDo Not Found"))

		recorder := serve(router, http.MethodGet, "/todos/99", "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.JSONEq(t, `{"detail":"ToDo Not Found"}`, recorder.Body.String())
	})

	t.Run("non integer id", func(t *testing.T) {
		router, _ := newRouter(t)

		recorder := serve(router, http.MethodGet, "/todos/abc", "")

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		assert.JSONEq(t, `{"detail":"id must be an integer"}`, recorder.Body.String())
	})

	for _, id := range []int64{0, -3} {
		t.Run(fmt.Sprintf("non positive id %d is looked up", id), func(t *testing.T) {
			router, svc := newRouter(t)
			svc.EXPECT().Get(gomock.Any(), id).Return(dto.TodoResponse{}, failure.NotFound("ToDo Not Found"))

			recorder := serve(router, http.MethodGet, fmt.Sprintf("/todos/%d", id), "")

			assert.Equal(t, http.StatusNotFound, recorder.Code)
			assert.JSONEq(t, `{"detail":"ToDo Not Found"}`, recorder.Body.String())
		})
	}
}

func TestHandler_UpdateTodo(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		body         string
		setupMock    func(svc *todoMocks.MockTodo)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "updated",
			target: "/todos/4",
			body:   `{"is_done":true}`,
			setupMock: func(svc *todoMocks.MockTodo) {
				svc.EXPECT().
					Update(gomock.Any(), gomock.Any(), int64(4)).
					DoAndReturn(func(_ any, req dto.UpdateTodoRequest, _ int64) (dto.TodoResponse, error) {
						assert.True(t, *req.IsDone)

						return dto.TodoResponse{ID: 4, Content: "buy milk", IsDone: true}, nil
					})
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":4,"content":"buy milk","is_done":true}`,
		},
		{
			name:         "missing is_done is rejected before the lookup",
			target:       "/todos/404",
			body:         `{}`,
			setupMock:    func(_ *todoMocks.MockTodo) {},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: `{"detail":"is_done is required"}`,
		},
		{
			name:         "non boolean is_done",
			target:       "/todos/4",
			body:         `{"is_done":"yes"}`,
			setupMock:    func(_ *todoMocks.MockTodo) {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:   "not found",
			target: "/todos/404",
			body:   `{"is_done":false}`,
			setupMock: func(svc *todoMocks.MockTodo) {
				svc.EXPECT().
					Update(gomock.Any(), gomock.Any(), int64(404)).
					Return(dto.TodoResponse{}, failure.NotFound("ToDo Not Found"))
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"detail":"ToDo Not Found"}`,
		},
		{
			name:   "zero id is looked up",
			target: "/todos/0",
			body:   `{"is_done":true}`,
			setupMock: func(svc *todoMocks.MockTodo) {
				svc.EXPECT().
					Update(gomock.Any(), gomock.Any(), int64(0)).
					Return(dto.TodoResponse{}, failure.NotFound("ToDo Not Found"))
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"detail":"ToDo Not Found"}`,
		},
		{
			name:         "non integer id",
			target:       "/todos/four",
			body:         `{"is_done":true}`,
			setupMock:    func(_ *todoMocks.MockTodo) {},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			recorder := serve(router, http.MethodPatch, tt.target, tt.body)

			assert.Equal(t, tt.expectedCode, recorder.Code)

			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, recorder.Body.String())
			}
		})
	}
}

func TestHandler_DeleteTodo(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)

		recorder := serve(router, http.MethodDelete, "/todos/4", "")

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.String())
	})

	t.Run("zero id", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Delete(gomock.Any(), int64(0)).Return(failure.NotFound("ToDo Not Found"))

		recorder := serve(router, http.MethodDelete, "/todos/0", "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("already deleted", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Delete(gomock.Any(), int64(4)).Return(failure.NotFound("ToDo Not Found"))

		recorder := serve(router, http.MethodDelete, "/todos/4", "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.JSONEq(t, `{"detail":"ToDo Not Found"}`, recorder.Body.String())
	})
}
