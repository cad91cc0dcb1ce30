package dto

import (
	"tudu/internal/domains/todo/model"
)

type CreateTodoRequest struct {
	Content string `json:"content" validate:"required,notblank,max=256"`
}

// ToModel builds a new item; the store assigns its id.
func (c *CreateTodoRequest) ToModel() model.Todo {
	return model.Todo{
		Content: c.Content,
		IsDone:  false,
	}
}

type UpdateTodoRequest struct {
	IsDone *bool `db:"is_done" json:"is_done" validate:"required"`
}

type TodoResponse struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
	IsDone  bool   `json:"is_done"`
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.Content = model.Content
	r.IsDone = model.IsDone
}

type GetTodosResponse struct {
	Todos []TodoResponse `json:"todos"`
}

func (r *GetTodosResponse) FromModels(models []model.Todo) {
	r.Todos = make([]TodoResponse, len(models))
	for i, mod := range models {
		r.Todos[i].FromModel(mod)
	}
}
